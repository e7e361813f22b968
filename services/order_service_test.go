package services

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedTestSettings(t, db)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewSettingsRepository(db)), db
}

func checkoutReq(items []CheckoutItemIn, deliveryType string) *CheckoutReq {
	req := &CheckoutReq{
		CustomerName:  "Maria Silva",
		CustomerEmail: "maria@example.com",
		CustomerPhone: "(11) 98888-7777",
		DeliveryType:  deliveryType,
		PaymentMethod: "pix",
		Items:         items,
	}
	if deliveryType == "delivery" {
		req.Address = "Rua das Flores"
		req.AddressNumber = "123"
	}
	return req
}

func TestCheckoutPickup(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedTestItem(t, db, "Bruschetta", "18.90", "entradas")

	res, err := svc.Checkout(checkoutReq([]CheckoutItemIn{{MenuItemID: item.ID, Quantity: 2}}, "pickup"))
	require.NoError(t, err)

	assert.Equal(t, "37.80", res.Total.StringFixed(2))
	assert.Equal(t, "15-20 min", res.EstimatedTime)
	assert.Equal(t, "preparing", res.Status)
	assert.True(t, strings.HasPrefix(res.OrderNumber, fmt.Sprintf("SD%d", time.Now().Year())))

	detail, err := svc.DetailByNumber(res.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "37.80", detail.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", detail.DeliveryFee.StringFixed(2))
	assert.Equal(t, "37.80", detail.Total.StringFixed(2))
	require.Len(t, detail.Items, 1)
	assert.Equal(t, item.ID, detail.Items[0].MenuItemID)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.Equal(t, "18.90", detail.Items[0].Price.StringFixed(2))
}

func TestCheckoutDeliveryAddsConfiguredFee(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedTestItem(t, db, "Bruschetta", "18.90", "entradas")

	res, err := svc.Checkout(checkoutReq([]CheckoutItemIn{{MenuItemID: item.ID, Quantity: 2}}, "delivery"))
	require.NoError(t, err)

	assert.Equal(t, "42.80", res.Total.StringFixed(2))
	assert.Equal(t, "30-45 min", res.EstimatedTime)

	detail, err := svc.DetailByNumber(res.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "5.00", detail.DeliveryFee.StringFixed(2))
}

func TestCheckoutUnknownItemWritesNothing(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedTestItem(t, db, "Tiramisu", "14.90", "sobremesas")

	_, err := svc.Checkout(checkoutReq([]CheckoutItemIn{
		{MenuItemID: item.ID, Quantity: 1},
		{MenuItemID: 9999, Quantity: 1},
	}, "pickup"))

	var unknown *UnknownMenuItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint(9999), unknown.MenuItemID)

	var orders, orderItems int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&orderItems).Error)
	assert.Zero(t, orders)
	assert.Zero(t, orderItems)
}

func TestCheckoutOrderNumbersIncrease(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedTestItem(t, db, "Carbonara", "28.90", "massas")

	yearPrefix := fmt.Sprintf("SD%d", time.Now().Year())
	seen := map[string]bool{}
	prev := -1
	for i := 0; i < 3; i++ {
		res, err := svc.Checkout(checkoutReq([]CheckoutItemIn{{MenuItemID: item.ID, Quantity: 1}}, "pickup"))
		require.NoError(t, err)

		assert.False(t, seen[res.OrderNumber], "order number %s repeated", res.OrderNumber)
		seen[res.OrderNumber] = true

		seq, err := strconv.Atoi(strings.TrimPrefix(res.OrderNumber, yearPrefix))
		require.NoError(t, err)
		assert.Greater(t, seq, prev)
		prev = seq
	}
}

func TestCheckoutSnapshotsUnitPrice(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedTestItem(t, db, "Petit Gateau", "16.90", "sobremesas")

	res, err := svc.Checkout(checkoutReq([]CheckoutItemIn{{MenuItemID: item.ID, Quantity: 1}}, "pickup"))
	require.NoError(t, err)

	// A later price edit must not reach into the past order.
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", entity.MustMoney("99.00")).Error)

	detail, err := svc.DetailByNumber(res.OrderNumber)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "16.90", detail.Items[0].Price.StringFixed(2))
	assert.Equal(t, "16.90", detail.Total.StringFixed(2))
}

func TestDetailByNumberMissing(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.DetailByNumber("SD2026999")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
