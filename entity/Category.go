package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	MinItems       int    `json:"minItems"`
	MaxItems       int    `json:"maxItems"`
	DisplayOrder   int    `json:"displayOrder"`
	IsActive       int    `gorm:"default:1" json:"isActive"`
	DefaultPrinter string `json:"defaultPrinter"`
}
