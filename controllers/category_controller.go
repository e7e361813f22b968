package controllers

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	cat, err := cc.Service.Create(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /api/admin/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BindError(c, err)
		return
	}

	cat, err := cc.Service.Update(id, &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/admin/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := cc.Service.Delete(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !deleted {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"message": "category removed"})
}
