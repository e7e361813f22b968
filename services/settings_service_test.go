package services

import (
	"testing"
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	seedTestSettings(t, db)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	before, err := svc.Get()
	require.NoError(t, err)
	require.Equal(t, 1, before.IsOpen)

	time.Sleep(10 * time.Millisecond)

	closed := 0
	updated, err := svc.Update(&SettingsPatch{IsOpen: &closed})
	require.NoError(t, err)

	// Only the named field changes.
	assert.Equal(t, 0, updated.IsOpen)
	assert.Equal(t, before.StoreName, updated.StoreName)
	assert.Equal(t, before.OpeningTime, updated.OpeningTime)
	assert.Equal(t, before.ClosingTime, updated.ClosingTime)
	assert.Equal(t, before.DeliveryTime, updated.DeliveryTime)
	assert.Equal(t, before.PickupTime, updated.PickupTime)
	assert.Equal(t, before.DeliveryFee.StringFixed(2), updated.DeliveryFee.StringFixed(2))
	assert.Equal(t, before.PaymentMethods, updated.PaymentMethods)

	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestSettingsUpdateSeveralFields(t *testing.T) {
	db := newTestDB(t)
	seedTestSettings(t, db)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	name := "Sabor Digital 2"
	fee := entity.MustMoney("7.50")
	updated, err := svc.Update(&SettingsPatch{StoreName: &name, DeliveryFee: &fee})
	require.NoError(t, err)

	assert.Equal(t, "Sabor Digital 2", updated.StoreName)
	assert.Equal(t, "7.50", updated.DeliveryFee.StringFixed(2))
	assert.Equal(t, 1, updated.IsOpen)
}
