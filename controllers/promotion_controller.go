package controllers

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Service: s}
}

// GET /api/promotions
func (pc *PromotionController) List(c *gin.Context) {
	promos, err := pc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

// GET /api/promotions/active
func (pc *PromotionController) ListActive(c *gin.Context) {
	promos, err := pc.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

// POST /api/promotions
func (pc *PromotionController) Create(c *gin.Context) {
	var in services.PromotionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	promo, err := pc.Service.Create(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, promo)
}

// PUT /api/admin/promotions/:id
func (pc *PromotionController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.PromotionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BindError(c, err)
		return
	}

	promo, err := pc.Service.Update(id, &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "promotion not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promo)
}

// DELETE /api/admin/promotions/:id
func (pc *PromotionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := pc.Service.Delete(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !deleted {
		resp.NotFound(c, "promotion not found")
		return
	}
	resp.OK(c, gin.H{"message": "promotion removed"})
}
