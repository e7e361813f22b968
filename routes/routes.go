package routes

import (
	"github.com/alessander-dutra/DigitalMenuPro/controllers"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/alessander-dutra/DigitalMenuPro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	scheduledRepo := repository.NewScheduledOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, settingsRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	promotionSvc := services.NewPromotionService(promotionRepo)
	scheduledSvc := services.NewScheduledOrderService(scheduledRepo)
	reviewSvc := services.NewReviewService(reviewRepo, menuRepo)
	couponSvc := services.NewCouponService(couponRepo)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	promotionCtrl := controllers.NewPromotionController(promotionSvc)
	scheduledCtrl := controllers.NewScheduledOrderController(scheduledSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)

	api := r.Group("/api")
	{
		// Menu (public)
		api.GET("/menu-items", menuCtrl.List)
		api.GET("/menu-items/category/:category", menuCtrl.ListByCategory)
		api.GET("/menu-items/:id", menuCtrl.Detail)

		// Checkout
		api.POST("/orders", orderCtrl.Checkout)
		api.GET("/orders/:orderNumber", orderCtrl.Detail)

		// Store settings
		api.GET("/store-settings", settingsCtrl.Get)
		api.PUT("/store-settings", settingsCtrl.Update)

		// Categories
		api.GET("/categories", categoryCtrl.List)
		api.POST("/categories", categoryCtrl.Create)

		// Reviews
		api.POST("/reviews", reviewCtrl.Create)
		api.GET("/reviews/:menuItemId", reviewCtrl.ListByMenuItem)
		api.GET("/top-rated-items", reviewCtrl.TopRated)

		// Promotions
		api.GET("/promotions", promotionCtrl.List)
		api.GET("/promotions/active", promotionCtrl.ListActive)
		api.POST("/promotions", promotionCtrl.Create)

		// Scheduled orders
		api.POST("/scheduled-orders", scheduledCtrl.Create)
		api.GET("/scheduled-orders", scheduledCtrl.List)

		// Coupons
		api.GET("/coupons", couponCtrl.List)
		api.POST("/coupons/validate", couponCtrl.Validate)
	}

	// Admin surface; gating happens client-side in the storefront UI.
	admin := api.Group("/admin")
	{
		admin.POST("/menu-items", menuCtrl.Create)
		admin.PUT("/menu-items/:id", menuCtrl.Update)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)

		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.PUT("/promotions/:id", promotionCtrl.Update)
		admin.DELETE("/promotions/:id", promotionCtrl.Delete)

		admin.POST("/coupons", couponCtrl.Create)
	}
}
