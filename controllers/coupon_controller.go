package controllers

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponController struct {
	Service *services.CouponService
}

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Service: s}
}

// GET /api/coupons
func (cc *CouponController) List(c *gin.Context) {
	coupons, err := cc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// POST /api/admin/coupons
func (cc *CouponController) Create(c *gin.Context) {
	var in services.CouponIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	coupon, err := cc.Service.Create(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, coupon)
}

// POST /api/coupons/validate
func (cc *CouponController) Validate(c *gin.Context) {
	var req services.ValidateCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	out, err := cc.Service.Validate(&req)
	if err != nil {
		var rejected *services.CouponRejectedError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "coupon not found")
		case errors.As(err, &rejected):
			resp.BadRequest(c, rejected.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}
