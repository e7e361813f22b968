package services

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
)

var ErrNegativePrice = errors.New("price must be non-negative")

type MenuService struct {
	Repo *repository.MenuItemRepository
}

func NewMenuService(repo *repository.MenuItemRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- DTOs -----

type MenuItemIn struct {
	Name              string       `json:"name" binding:"required"`
	Description       string       `json:"description" binding:"required"`
	Price             entity.Money `json:"price" binding:"required"`
	Category          string       `json:"category" binding:"required"`
	ImageURL          string       `json:"imageUrl" binding:"required"`
	Available         *int         `json:"available" binding:"omitempty,oneof=0 1"`
	ProductionPrinter string       `json:"productionPrinter"`
}

// MenuItemPatch is a partial update: a present field replaces the stored
// value, an absent field retains it.
type MenuItemPatch struct {
	Name              *string       `json:"name"`
	Description       *string       `json:"description"`
	Price             *entity.Money `json:"price"`
	Category          *string       `json:"category"`
	ImageURL          *string       `json:"imageUrl"`
	Available         *int          `json:"available" binding:"omitempty,oneof=0 1"`
	ProductionPrinter *string       `json:"productionPrinter"`
}

// ----- Operations -----

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) ListByCategory(category string) ([]entity.MenuItem, error) {
	return s.Repo.ListByCategory(category)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	available := 1
	if in.Available != nil {
		available = *in.Available
	}
	item := entity.MenuItem{
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		Category:          in.Category,
		ImageURL:          in.ImageURL,
		Available:         available,
		ProductionPrinter: in.ProductionPrinter,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Update(id uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.ProductionPrinter != nil {
		item.ProductionPrinter = *patch.ProductionPrinter
	}

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
