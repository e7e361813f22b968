package services

import (
	"fmt"
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/shopspring/decimal"
)

type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: repo}
}

// CouponRejectedError explains why a known coupon cannot be applied.
type CouponRejectedError struct {
	Reason string
}

func (e *CouponRejectedError) Error() string {
	return e.Reason
}

// ----- DTOs -----

type CouponIn struct {
	Code          string       `json:"code" binding:"required"`
	Description   string       `json:"description" binding:"required"`
	DiscountType  string       `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue entity.Money `json:"discountValue" binding:"required"`
	MinOrderValue entity.Money `json:"minOrderValue"`
	MaxUses       int          `json:"maxUses" binding:"omitempty,min=0"`
	StartDate     time.Time    `json:"startDate" binding:"required"`
	EndDate       time.Time    `json:"endDate" binding:"required,gtfield=StartDate"`
	IsActive      *int         `json:"isActive" binding:"omitempty,oneof=0 1"`
}

type ValidateCouponReq struct {
	Code       string       `json:"code" binding:"required"`
	OrderValue entity.Money `json:"orderValue" binding:"required"`
}

type ValidateCouponRes struct {
	Code     string       `json:"code"`
	Discount entity.Money `json:"discount"`
	Total    entity.Money `json:"total"`
}

// ----- Operations -----

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.Repo.List()
}

func (s *CouponService) Create(in *CouponIn) (*entity.Coupon, error) {
	coupon := entity.Coupon{
		Code:          in.Code,
		Description:   in.Description,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		MinOrderValue: in.MinOrderValue,
		MaxUses:       in.MaxUses,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsActive:      1,
	}
	if in.IsActive != nil {
		coupon.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(&coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Validate checks a coupon against an order value and computes the
// discount it would grant. It does not consume a use.
func (s *CouponService) Validate(req *ValidateCouponReq) (*ValidateCouponRes, error) {
	coupon, err := s.Repo.FindByCode(req.Code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch {
	case coupon.IsActive != 1:
		return nil, &CouponRejectedError{Reason: "coupon is inactive"}
	case now.Before(coupon.StartDate) || now.After(coupon.EndDate):
		return nil, &CouponRejectedError{Reason: "coupon is outside its validity window"}
	case coupon.MaxUses > 0 && coupon.CurrentUses >= coupon.MaxUses:
		return nil, &CouponRejectedError{Reason: "coupon usage limit reached"}
	case req.OrderValue.LessThan(coupon.MinOrderValue.Decimal):
		return nil, &CouponRejectedError{
			Reason: fmt.Sprintf("order value below minimum of %s", coupon.MinOrderValue.StringFixed(2)),
		}
	}

	var discount entity.Money
	if coupon.DiscountType == "percentage" {
		pct := coupon.DiscountValue.Div(decimal.NewFromInt(100))
		discount = entity.NewMoney(req.OrderValue.Mul(pct))
	} else {
		discount = coupon.DiscountValue
	}
	// A fixed discount never exceeds the order value.
	if discount.GreaterThan(req.OrderValue.Decimal) {
		discount = req.OrderValue
	}

	total := entity.Money{Decimal: req.OrderValue.Sub(discount.Decimal)}
	return &ValidateCouponRes{Code: coupon.Code, Discount: discount, Total: total}, nil
}
