package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `gorm:"type:decimal(10,2)" json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Available   int    `gorm:"default:1" json:"available"` // 1 = available, 0 = hidden from ordering
	ProductionPrinter string `json:"productionPrinter,omitempty"`

	OrderItems []OrderItem  `json:"-"`
	Reviews    []ItemReview `json:"-"`
	Promotions []Promotion  `json:"-"`
}
