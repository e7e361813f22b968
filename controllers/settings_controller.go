package controllers

import (
	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(s *services.SettingsService) *SettingsController {
	return &SettingsController{Service: s}
}

// GET /api/store-settings
func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.Service.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /api/store-settings
func (sc *SettingsController) Update(c *gin.Context) {
	var patch services.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BindError(c, err)
		return
	}

	settings, err := sc.Service.Update(&patch)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}
