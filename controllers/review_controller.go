package controllers

import (
	"github.com/alessander-dutra/DigitalMenuPro/pkg/resp"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// POST /api/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BindError(c, err)
		return
	}

	review, err := rc.Service.Create(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/reviews/:menuItemId
func (rc *ReviewController) ListByMenuItem(c *gin.Context) {
	menuItemID, ok := parseID(c, "menuItemId")
	if !ok {
		return
	}

	reviews, err := rc.Service.ListByMenuItem(menuItemID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /api/top-rated-items
func (rc *ReviewController) TopRated(c *gin.Context) {
	items, err := rc.Service.TopRated()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
