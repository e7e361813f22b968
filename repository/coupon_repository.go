package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	if err := r.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) Create(coupon *entity.Coupon) error {
	return r.DB.Create(coupon).Error
}
