package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.MenuItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createItem(t *testing.T, db *gorm.DB, name, price, category string) *entity.MenuItem {
	t.Helper()

	item := entity.MenuItem{
		Name:        name,
		Description: name,
		Price:       entity.MustMoney(price),
		Category:    category,
		ImageURL:    "https://example.com/" + name + ".jpg",
		Available:   1,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return &item
}

func TestListByCategoryFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	createItem(t, db, "Bruschetta", "18.90", "entradas")
	createItem(t, db, "Carbonara", "28.90", "massas")
	createItem(t, db, "Tiramisu", "16.90", "sobremesas")
	createItem(t, db, "Lasanha", "32.90", "massas")

	items, err := repo.ListByCategory("massas")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "massas", item.Category)
	}

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeleteMissingItemLeavesTableUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	createItem(t, db, "Bruschetta", "18.90", "entradas")

	deleted, err := repo.Delete(999)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteExistingItem(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	item := createItem(t, db, "Bruschetta", "18.90", "entradas")

	deleted, err := repo.Delete(item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}
