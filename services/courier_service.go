package services

import (
	"errors"
	"math"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/repository"

	"gorm.io/gorm"
)

type CourierService struct {
	DB        *gorm.DB
	Repo      *repository.CourierRepository
	OrderRepo *repository.OrderRepository
}

func NewCourierService(db *gorm.DB, repo *repository.CourierRepository, orderRepo *repository.OrderRepository) *CourierService {
	return &CourierService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

// ----- CRUD -----

type CreateCourierReq struct {
	ChatID   string `json:"chatId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
}

func (s *CourierService) Create(req *CreateCourierReq) (*entity.Courier, error) {
	courier := &entity.Courier{
		ChatID:   req.ChatID,
		Name:     req.Name,
		Phone:    req.Phone,
		Username: req.Username,
		Status:   entity.CourierActive,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, courier)
	})
	if err != nil {
		return nil, err
	}
	return courier, nil
}

func (s *CourierService) Get(id uint) (*entity.Courier, error) {
	c, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CourierService) GetByChatID(chatID string) (*entity.Courier, error) {
	c, err := s.Repo.GetByChatID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CourierService) List() ([]entity.Courier, error) {
	return s.Repo.List()
}

// UpdateCourierReq distinguishes "absent" from "clear": nil means leave
// the field alone.
type UpdateCourierReq struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Username *string `json:"username"`
	Status   *string `json:"status"`
}

func (s *CourierService) Update(id uint, req *UpdateCourierReq) (*entity.Courier, error) {
	courier, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		courier.Name = *req.Name
	}
	if req.Phone != nil {
		courier.Phone = *req.Phone
	}
	if req.Username != nil {
		courier.Username = *req.Username
	}
	if req.Status != nil {
		courier.Status = *req.Status
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, courier)
	})
	if err != nil {
		return nil, err
	}
	return courier, nil
}

// ----- Statistics -----

type DeliveredEntry struct {
	OrderID     uint       `json:"orderId"`
	Amount      int64      `json:"amount"`
	Rating      *int       `json:"rating,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type CourierStats struct {
	CourierID      uint             `json:"courierId"`
	DeliveredCount int              `json:"deliveredCount"`
	TotalCollected int64            `json:"totalCollected"`
	AverageRating  float64          `json:"averageRating"`
	History        []DeliveredEntry `json:"history"`
}

// Stats sums the courier's delivered orders over [start, end). The
// average counts rated orders only and rounds to one decimal; with no
// ratings it stays 0.0.
func (s *CourierService) Stats(courierID uint, start, end *time.Time) (*CourierStats, error) {
	if _, err := s.Get(courierID); err != nil {
		return nil, err
	}

	orders, err := s.OrderRepo.DeliveredForCourier(courierID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &CourierStats{
		CourierID: courierID,
		History:   make([]DeliveredEntry, 0, len(orders)),
	}
	ratingSum, rated := 0, 0
	for _, o := range orders {
		stats.DeliveredCount++
		stats.TotalCollected += o.FinalTotalAmount
		if o.Rating != nil {
			ratingSum += *o.Rating
			rated++
		}
		stats.History = append(stats.History, DeliveredEntry{
			OrderID:     o.ID,
			Amount:      o.FinalTotalAmount,
			Rating:      o.Rating,
			DeliveredAt: o.DeliveredAt,
		})
	}
	if rated > 0 {
		stats.AverageRating = math.Round(float64(ratingSum)/float64(rated)*10) / 10
	}
	return stats, nil
}
