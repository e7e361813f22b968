package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"gorm.io/gorm"
)

const orderNumberPrefix = "SD"

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	SettingsRepo *repository.SettingsRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, settingsRepo *repository.SettingsRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, SettingsRepo: settingsRepo}
}

// UnknownMenuItemError aborts a checkout whose cart references an item
// that does not exist. Nothing is persisted in that case.
type UnknownMenuItemError struct {
	MenuItemID uint
}

func (e *UnknownMenuItemError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.MenuItemID)
}

// ----- DTOs -----

type CheckoutItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutReq struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	DeliveryType  string `json:"deliveryType" binding:"required,oneof=delivery pickup"`
	Address       string `json:"address" binding:"required_if=DeliveryType delivery"`
	AddressNumber string `json:"addressNumber"`
	Complement    string `json:"complement"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card pix cash"`

	Items []CheckoutItemIn `json:"items" binding:"required,min=1,dive"`
}

type CheckoutRes struct {
	OrderNumber   string       `json:"orderNumber"`
	Total         entity.Money `json:"total"`
	EstimatedTime string       `json:"estimatedTime"`
	Status        string       `json:"status"`
}

// ----- Checkout -----

// Checkout resolves every cart line against the current menu, prices the
// order and persists it with its items atomically. Unit prices are
// snapshots: later menu edits do not touch past orders.
func (s *OrderService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}

	var subtotal entity.Money
	lines := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		m, err := s.Repo.GetMenuItemBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &UnknownMenuItemError{MenuItemID: it.MenuItemID}
			}
			return nil, err
		}
		subtotal = subtotal.Add(m.Price.MulInt(it.Quantity))
		lines = append(lines, entity.OrderItem{
			MenuItemID: m.ID,
			Quantity:   it.Quantity,
			Price:      m.Price,
		})
	}

	var deliveryFee entity.Money
	estimated := settings.PickupTime
	if req.DeliveryType == "delivery" {
		deliveryFee = settings.DeliveryFee
		estimated = settings.DeliveryTime
	}
	total := subtotal.Add(deliveryFee)

	order := entity.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		DeliveryType:  req.DeliveryType,
		Address:       req.Address,
		AddressNumber: req.AddressNumber,
		Complement:    req.Complement,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         total,
		Status:        "preparing",
	}

	// One transaction covers id allocation, order-number assignment and
	// the item inserts; a failure anywhere rolls the whole order back.
	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		number := fmt.Sprintf("%s%d%03d", orderNumberPrefix, time.Now().Year(), order.ID)
		if err := s.Repo.SetOrderNumber(tx, &order, number); err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &lines[i]); err != nil {
				return err
			}
		}

		out = CheckoutRes{
			OrderNumber:   order.OrderNumber,
			Total:         order.Total,
			EstimatedTime: estimated,
			Status:        order.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Detail -----

type OrderDetail struct {
	entity.Order
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailByNumber(orderNumber string) (*OrderDetail, error) {
	o, err := s.Repo.FindByNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
