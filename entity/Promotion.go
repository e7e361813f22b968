package entity

import (
	"time"

	"gorm.io/gorm"
)

// Promotion is a time-boxed price override for a single menu item.
type Promotion struct {
	gorm.Model
	OriginalPrice    Money     `gorm:"type:decimal(10,2)" json:"originalPrice"`
	PromotionalPrice Money     `gorm:"type:decimal(10,2)" json:"promotionalPrice"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	IsActive         int       `gorm:"default:1" json:"isActive"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
