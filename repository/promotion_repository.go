package repository

import (
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) List() ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.DB.Find(&promos).Error
	return promos, err
}

// ListActive returns promotions whose window contains now.
func (r *PromotionRepository) ListActive(now time.Time) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.DB.
		Where("is_active = 1 AND start_date <= ? AND end_date >= ?", now, now).
		Find(&promos).Error
	return promos, err
}

func (r *PromotionRepository) FindByID(id uint) (*entity.Promotion, error) {
	var promo entity.Promotion
	if err := r.DB.First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PromotionRepository) Create(promo *entity.Promotion) error {
	return r.DB.Create(promo).Error
}

func (r *PromotionRepository) Save(promo *entity.Promotion) error {
	return r.DB.Save(promo).Error
}

func (r *PromotionRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Promotion{}, id)
	return res.RowsAffected > 0, res.Error
}
