package services

import (
	"errors"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"gorm.io/gorm"
)

const topRatedLimit = 10

type ReviewService struct {
	Repo     *repository.ReviewRepository
	MenuRepo *repository.MenuItemRepository
}

func NewReviewService(repo *repository.ReviewRepository, menuRepo *repository.MenuItemRepository) *ReviewService {
	return &ReviewService{Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs -----

type ReviewIn struct {
	MenuItemID    uint   `json:"menuItemId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

type TopRatedItem struct {
	entity.MenuItem
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// ----- Operations -----

func (s *ReviewService) Create(in *ReviewIn) (*entity.ItemReview, error) {
	review := entity.ItemReview{
		MenuItemID:    in.MenuItemID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	if err := s.Repo.Create(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListByMenuItem(menuItemID uint) ([]entity.ItemReview, error) {
	return s.Repo.ListByMenuItem(menuItemID)
}

// TopRated recomputes the ranking on every call; reviews may arrive
// between calls and there is no invalidation to lean on.
func (s *ReviewService) TopRated() ([]TopRatedItem, error) {
	rows, err := s.Repo.AggregateByMenuItem(topRatedLimit)
	if err != nil {
		return nil, err
	}

	out := make([]TopRatedItem, 0, len(rows))
	for _, row := range rows {
		item, err := s.MenuRepo.FindByID(row.MenuItemID)
		if err != nil {
			// Reviews can outlive a deleted menu item; skip those.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, TopRatedItem{
			MenuItem:      *item,
			AverageRating: row.AverageRating,
			ReviewCount:   row.ReviewCount,
		})
	}
	return out, nil
}
