package services

import (
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

// ----- DTOs -----

type PromotionIn struct {
	MenuItemID       uint         `json:"menuItemId" binding:"required"`
	OriginalPrice    entity.Money `json:"originalPrice" binding:"required"`
	PromotionalPrice entity.Money `json:"promotionalPrice" binding:"required"`
	StartDate        time.Time    `json:"startDate" binding:"required"`
	EndDate          time.Time    `json:"endDate" binding:"required,gtfield=StartDate"`
	IsActive         *int         `json:"isActive" binding:"omitempty,oneof=0 1"`
}

type PromotionPatch struct {
	MenuItemID       *uint         `json:"menuItemId"`
	OriginalPrice    *entity.Money `json:"originalPrice"`
	PromotionalPrice *entity.Money `json:"promotionalPrice"`
	StartDate        *time.Time    `json:"startDate"`
	EndDate          *time.Time    `json:"endDate"`
	IsActive         *int          `json:"isActive" binding:"omitempty,oneof=0 1"`
}

// ----- Operations -----

func (s *PromotionService) List() ([]entity.Promotion, error) {
	return s.Repo.List()
}

func (s *PromotionService) ListActive() ([]entity.Promotion, error) {
	return s.Repo.ListActive(time.Now())
}

func (s *PromotionService) Create(in *PromotionIn) (*entity.Promotion, error) {
	promo := entity.Promotion{
		MenuItemID:       in.MenuItemID,
		OriginalPrice:    in.OriginalPrice,
		PromotionalPrice: in.PromotionalPrice,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		IsActive:         1,
	}
	if in.IsActive != nil {
		promo.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(&promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *PromotionService) Update(id uint, patch *PromotionPatch) (*entity.Promotion, error) {
	promo, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.MenuItemID != nil {
		promo.MenuItemID = *patch.MenuItemID
	}
	if patch.OriginalPrice != nil {
		promo.OriginalPrice = *patch.OriginalPrice
	}
	if patch.PromotionalPrice != nil {
		promo.PromotionalPrice = *patch.PromotionalPrice
	}
	if patch.StartDate != nil {
		promo.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		promo.EndDate = *patch.EndDate
	}
	if patch.IsActive != nil {
		promo.IsActive = *patch.IsActive
	}

	if err := s.Repo.Save(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *PromotionService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
