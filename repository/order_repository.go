package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// Writes take the transaction handle so order + items commit as one unit.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) SetOrderNumber(tx *gorm.DB, o *entity.Order, number string) error {
	if err := tx.Model(o).Update("order_number", number).Error; err != nil {
		return err
	}
	o.OrderNumber = number
	return nil
}

func (r *OrderRepository) FindByNumber(orderNumber string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_number = ?", orderNumber).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// ---------------- Helpers ----------------

// GetMenuItemBasics resolves the current price row for a cart line.
func (r *OrderRepository) GetMenuItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price").First(&m, id).Error
	return m, err
}
