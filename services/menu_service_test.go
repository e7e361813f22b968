package services

import (
	"testing"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMenuItemPatchRetainsAbsentFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuItemRepository(db))
	item := seedTestItem(t, db, "Carbonara", "28.90", "massas")

	price := entity.MustMoney("31.90")
	updated, err := svc.Update(item.ID, &MenuItemPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "31.90", updated.Price.StringFixed(2))
	assert.Equal(t, item.Name, updated.Name)
	assert.Equal(t, item.Category, updated.Category)
	assert.Equal(t, item.Available, updated.Available)
}

func TestMenuItemUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuItemRepository(db))

	name := "Ghost"
	_, err := svc.Update(12345, &MenuItemPatch{Name: &name})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuItemCreateRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuItemRepository(db))

	_, err := svc.Create(&MenuItemIn{
		Name:        "Broken",
		Description: "negative price",
		Price:       entity.MustMoney("-1.00"),
		Category:    "entradas",
		ImageURL:    "https://example.com/broken.jpg",
	})
	require.ErrorIs(t, err, ErrNegativePrice)
}
