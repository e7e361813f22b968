package entity

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Code          string    `gorm:"size:50;uniqueIndex" json:"code"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discountType"` // 'percentage' or 'fixed'
	DiscountValue Money     `gorm:"type:decimal(10,2)" json:"discountValue"`
	MinOrderValue Money     `gorm:"type:decimal(10,2)" json:"minOrderValue"`
	MaxUses       int       `json:"maxUses"` // 0 = unlimited
	CurrentUses   int       `json:"currentUses"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      int       `gorm:"default:1" json:"isActive"`
}
