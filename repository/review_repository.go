package repository

import (
	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.ItemReview) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ListByMenuItem(menuItemID uint) ([]entity.ItemReview, error) {
	var reviews []entity.ItemReview
	err := r.DB.Where("menu_item_id = ?", menuItemID).Find(&reviews).Error
	return reviews, err
}

// ItemRatingRow is one aggregate row of the top-rated query.
type ItemRatingRow struct {
	MenuItemID    uint    `json:"menuItemId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// AggregateByMenuItem groups reviews per item, mean rating descending.
// Items with no reviews never produce a row.
func (r *ReviewRepository) AggregateByMenuItem(limit int) ([]ItemRatingRow, error) {
	var rows []ItemRatingRow
	err := r.DB.Table("item_reviews").
		Select("menu_item_id, AVG(rating) AS average_rating, COUNT(*) AS review_count").
		Where("deleted_at IS NULL").
		Group("menu_item_id").
		Order("average_rating DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
