package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh named in-memory database per test. The shared
// cache keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicestest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.StoreSettings{},
		&entity.Category{},
		&entity.Promotion{},
		&entity.ScheduledOrder{},
		&entity.ItemReview{},
		&entity.Coupon{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedTestSettings(t *testing.T, db *gorm.DB) *entity.StoreSettings {
	t.Helper()

	settings := entity.StoreSettings{
		StoreName:      "Sabor Digital",
		IsOpen:         1,
		OpeningTime:    "08:00",
		ClosingTime:    "22:00",
		AllowPickup:    1,
		AllowCheckout:  1,
		DeliveryTime:   "30-45 min",
		PickupTime:     "15-20 min",
		DeliveryFee:    entity.MustMoney("5.00"),
		PaymentMethods: "card,pix,cash",
	}
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	return &settings
}

func seedTestItem(t *testing.T, db *gorm.DB, name, price, category string) *entity.MenuItem {
	t.Helper()

	item := entity.MenuItem{
		Name:        name,
		Description: name,
		Price:       entity.MustMoney(price),
		Category:    category,
		ImageURL:    "https://example.com/" + category + ".jpg",
		Available:   1,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return &item
}
