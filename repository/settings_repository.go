package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row.
func (r *SettingsRepository) Get() (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	if err := r.DB.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *entity.StoreSettings) error {
	return r.DB.Save(s).Error
}
