package controllers

import (
	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
)

type ScheduledOrderController struct {
	Service *services.ScheduledOrderService
}

func NewScheduledOrderController(s *services.ScheduledOrderService) *ScheduledOrderController {
	return &ScheduledOrderController{Service: s}
}

// POST /api/scheduled-orders
func (sc *ScheduledOrderController) Create(c *gin.Context) {
	var in services.ScheduledOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	so, err := sc.Service.Create(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, so)
}

// GET /api/scheduled-orders
func (sc *ScheduledOrderController) List(c *gin.Context) {
	out, err := sc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
