package configs

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.StoreSettings{},
		&entity.Category{},
		&entity.Promotion{},
		&entity.ScheduledOrder{},
		&entity.ItemReview{},
		&entity.Coupon{},
	)
}
