package services

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// SettingsPatch is a partial merge over the singleton row: a present field
// replaces the stored value, an absent field retains it. Saving refreshes
// the UpdatedAt timestamp.
type SettingsPatch struct {
	StoreName    *string `json:"storeName"`
	StorePhone   *string `json:"storePhone"`
	StoreEmail   *string `json:"storeEmail" binding:"omitempty,email"`
	StoreAddress *string `json:"storeAddress"`
	IsOpen       *int    `json:"isOpen" binding:"omitempty,oneof=0 1"`
	OpeningTime  *string `json:"openingTime"`
	ClosingTime  *string `json:"closingTime"`

	AllowPickup       *int `json:"allowPickup" binding:"omitempty,oneof=0 1"`
	AllowCheckout     *int `json:"allowCheckout" binding:"omitempty,oneof=0 1"`
	AllowScheduling   *int `json:"allowScheduling" binding:"omitempty,oneof=0 1"`
	AllowReviews      *int `json:"allowReviews" binding:"omitempty,oneof=0 1"`
	AllowOrderHistory *int `json:"allowOrderHistory" binding:"omitempty,oneof=0 1"`

	DeliveryTime   *string       `json:"deliveryTime"`
	PickupTime     *string       `json:"pickupTime"`
	DeliveryFee    *entity.Money `json:"deliveryFee"`
	PaymentMethods *string       `json:"paymentMethods"`
}

func (s *SettingsService) Get() (*entity.StoreSettings, error) {
	return s.Repo.Get()
}

func (s *SettingsService) Update(patch *SettingsPatch) (*entity.StoreSettings, error) {
	settings, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}

	if patch.StoreName != nil {
		settings.StoreName = *patch.StoreName
	}
	if patch.StorePhone != nil {
		settings.StorePhone = *patch.StorePhone
	}
	if patch.StoreEmail != nil {
		settings.StoreEmail = *patch.StoreEmail
	}
	if patch.StoreAddress != nil {
		settings.StoreAddress = *patch.StoreAddress
	}
	if patch.IsOpen != nil {
		settings.IsOpen = *patch.IsOpen
	}
	if patch.OpeningTime != nil {
		settings.OpeningTime = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		settings.ClosingTime = *patch.ClosingTime
	}
	if patch.AllowPickup != nil {
		settings.AllowPickup = *patch.AllowPickup
	}
	if patch.AllowCheckout != nil {
		settings.AllowCheckout = *patch.AllowCheckout
	}
	if patch.AllowScheduling != nil {
		settings.AllowScheduling = *patch.AllowScheduling
	}
	if patch.AllowReviews != nil {
		settings.AllowReviews = *patch.AllowReviews
	}
	if patch.AllowOrderHistory != nil {
		settings.AllowOrderHistory = *patch.AllowOrderHistory
	}
	if patch.DeliveryTime != nil {
		settings.DeliveryTime = *patch.DeliveryTime
	}
	if patch.PickupTime != nil {
		settings.PickupTime = *patch.PickupTime
	}
	if patch.DeliveryFee != nil {
		settings.DeliveryFee = *patch.DeliveryFee
	}
	if patch.PaymentMethods != nil {
		settings.PaymentMethods = *patch.PaymentMethods
	}

	if err := s.Repo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
