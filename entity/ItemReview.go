package entity

import (
	"gorm.io/gorm"
)

// ItemReview is write-once: reviews are never updated or deleted.
type ItemReview struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Rating        int    `json:"rating"` // 1-5 stars
	Comment       string `json:"comment,omitempty"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
