package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber   string `gorm:"uniqueIndex" json:"orderNumber"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	DeliveryType  string `json:"deliveryType"` // 'delivery' or 'pickup'
	Address       string `json:"address,omitempty"`
	AddressNumber string `json:"addressNumber,omitempty"`
	Complement    string `json:"complement,omitempty"`
	PaymentMethod string `json:"paymentMethod"` // 'card', 'pix' or 'cash'
	Subtotal      Money  `gorm:"type:decimal(10,2)" json:"subtotal"`
	DeliveryFee   Money  `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total         Money  `gorm:"type:decimal(10,2)" json:"total"`
	Status        string `json:"status"`

	OrderItems []OrderItem `json:"-"`
}
