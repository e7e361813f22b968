package entity

import (
	"gorm.io/gorm"
)

// StoreSettings is a singleton row; exactly one record exists after seeding.
type StoreSettings struct {
	gorm.Model
	StoreName    string `json:"storeName"`
	StorePhone   string `json:"storePhone"`
	StoreEmail   string `json:"storeEmail"`
	StoreAddress string `json:"storeAddress"`
	IsOpen       int    `json:"isOpen"` // 1 = open, 0 = closed
	OpeningTime  string `json:"openingTime"` // HH:MM
	ClosingTime  string `json:"closingTime"` // HH:MM

	AllowPickup       int `json:"allowPickup"`
	AllowCheckout     int `json:"allowCheckout"` // 0 = browse only
	AllowScheduling   int `json:"allowScheduling"`
	AllowReviews      int `json:"allowReviews"`
	AllowOrderHistory int `json:"allowOrderHistory"`

	DeliveryTime   string `json:"deliveryTime"`
	PickupTime     string `json:"pickupTime"`
	DeliveryFee    Money  `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	PaymentMethods string `json:"paymentMethods"` // comma separated
}
