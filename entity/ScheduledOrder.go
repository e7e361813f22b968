package entity

import (
	"time"

	"gorm.io/gorm"
)

type ScheduledOrder struct {
	gorm.Model
	ScheduledDateTime time.Time `json:"scheduledDateTime"`
	ScheduledType     string    `json:"scheduledType"` // 'delivery' or 'pickup'
	Notes             string    `json:"notes,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
