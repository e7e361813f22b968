package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

// ListByCategory is a linear filter; fine at single-restaurant scale.
func (r *MenuItemRepository) ListByCategory(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// Delete reports whether a row was actually removed.
func (r *MenuItemRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected > 0, res.Error
}
