package controllers

import (
	"errors"
	"strconv"

	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// GET /api/menu-items
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/category/:category
func (mc *MenuController) ListByCategory(c *gin.Context) {
	items, err := mc.Service.ListByCategory(c.Param("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := mc.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/admin/menu-items
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	item, err := mc.Service.Create(&in)
	if err != nil {
		if errors.Is(err, services.ErrNegativePrice) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/admin/menu-items/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BindError(c, err)
		return
	}

	item, err := mc.Service.Update(id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		case errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// DELETE /api/admin/menu-items/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := mc.Service.Delete(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !deleted {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"message": "menu item removed"})
}
