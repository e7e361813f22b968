package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type ScheduledOrderRepository struct {
	DB *gorm.DB
}

func NewScheduledOrderRepository(db *gorm.DB) *ScheduledOrderRepository {
	return &ScheduledOrderRepository{DB: db}
}

func (r *ScheduledOrderRepository) Create(so *entity.ScheduledOrder) error {
	return r.DB.Create(so).Error
}

func (r *ScheduledOrderRepository) List() ([]entity.ScheduledOrder, error) {
	var out []entity.ScheduledOrder
	err := r.DB.Find(&out).Error
	return out, err
}
