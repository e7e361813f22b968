package controllers

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	out, err := oc.Service.Checkout(&req)
	if err != nil {
		var unknown *services.UnknownMenuItemError
		if errors.As(err, &unknown) {
			resp.BadRequest(c, unknown.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders/:orderNumber
func (oc *OrderController) Detail(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	out, err := oc.Service.DetailByNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
