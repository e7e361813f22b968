package services

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

// ----- DTOs -----

type CategoryIn struct {
	Name           string `json:"name" binding:"required"`
	Icon           string `json:"icon"`
	MinItems       int    `json:"minItems" binding:"omitempty,min=0"`
	MaxItems       int    `json:"maxItems" binding:"omitempty,min=0"`
	DisplayOrder   int    `json:"displayOrder"`
	IsActive       *int   `json:"isActive" binding:"omitempty,oneof=0 1"`
	DefaultPrinter string `json:"defaultPrinter"`
}

type CategoryPatch struct {
	Name           *string `json:"name"`
	Icon           *string `json:"icon"`
	MinItems       *int    `json:"minItems" binding:"omitempty,min=0"`
	MaxItems       *int    `json:"maxItems" binding:"omitempty,min=0"`
	DisplayOrder   *int    `json:"displayOrder"`
	IsActive       *int    `json:"isActive" binding:"omitempty,oneof=0 1"`
	DefaultPrinter *string `json:"defaultPrinter"`
}

// ----- Operations -----

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	cat := entity.Category{
		Name:           in.Name,
		Icon:           in.Icon,
		MinItems:       in.MinItems,
		MaxItems:       in.MaxItems,
		DisplayOrder:   in.DisplayOrder,
		IsActive:       1,
		DefaultPrinter: in.DefaultPrinter,
	}
	if cat.Icon == "" {
		cat.Icon = "Utensils"
	}
	if cat.MaxItems == 0 {
		cat.MaxItems = 100
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if cat.DefaultPrinter == "" {
		cat.DefaultPrinter = "none"
	}
	if err := s.Repo.Create(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Update(id uint, patch *CategoryPatch) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Icon != nil {
		cat.Icon = *patch.Icon
	}
	if patch.MinItems != nil {
		cat.MinItems = *patch.MinItems
	}
	if patch.MaxItems != nil {
		cat.MaxItems = *patch.MaxItems
	}
	if patch.DisplayOrder != nil {
		cat.DisplayOrder = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		cat.IsActive = *patch.IsActive
	}
	if patch.DefaultPrinter != nil {
		cat.DefaultPrinter = *patch.DefaultPrinter
	}

	if err := s.Repo.Save(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
