package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("display_order ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Save(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Category{}, id)
	return res.RowsAffected > 0, res.Error
}
