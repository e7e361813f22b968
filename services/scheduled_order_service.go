package services

import (
	"time"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
	"github.com/alessander-dutra/DigitalMenuPro/repository"
)

type ScheduledOrderService struct {
	Repo *repository.ScheduledOrderRepository
}

func NewScheduledOrderService(repo *repository.ScheduledOrderRepository) *ScheduledOrderService {
	return &ScheduledOrderService{Repo: repo}
}

type ScheduledOrderIn struct {
	OrderID           uint      `json:"orderId" binding:"required"`
	ScheduledDateTime time.Time `json:"scheduledDateTime" binding:"required"`
	ScheduledType     string    `json:"scheduledType" binding:"required,oneof=delivery pickup"`
	Notes             string    `json:"notes"`
}

func (s *ScheduledOrderService) Create(in *ScheduledOrderIn) (*entity.ScheduledOrder, error) {
	so := entity.ScheduledOrder{
		OrderID:           in.OrderID,
		ScheduledDateTime: in.ScheduledDateTime,
		ScheduledType:     in.ScheduledType,
		Notes:             in.Notes,
	}
	if err := s.Repo.Create(&so); err != nil {
		return nil, err
	}
	return &so, nil
}

func (s *ScheduledOrderService) List() ([]entity.ScheduledOrder, error) {
	return s.Repo.List()
}
