package main

import (
	"fmt"
	"log"

	"github.com/alessander-dutra/DigitalMenuPro/configs"
	"github.com/alessander-dutra/DigitalMenuPro/middlewares"
	"github.com/alessander-dutra/DigitalMenuPro/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// seed defaults
	if err := configs.SeedStoreSettings(); err != nil {
		log.Fatalf("seed store settings failed: %v", err)
	}
	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}
	if err := configs.SeedMenuItems(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
