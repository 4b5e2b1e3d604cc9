package services

import (
	"errors"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/repository"

	"gorm.io/gorm"
)

type UserService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository) *UserService {
	return &UserService{DB: db, Repo: repo}
}

type RegisterUserReq struct {
	ChatID  string `json:"chatId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Register creates the account for a chat id, or returns the existing
// one — the bot re-sends /start freely.
func (s *UserService) Register(req *RegisterUserReq) (*entity.User, error) {
	if existing, err := s.Repo.GetByChatID(req.ChatID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &entity.User{
		ChatID:  req.ChatID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  entity.UserActive,
		Tier:    "regular",
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByChatID(chatID string) (*entity.User, error) {
	u, err := s.Repo.GetByChatID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.List()
}

// UpdateUserReq: nil leaves a field untouched, a pointer to "" clears it.
type UpdateUserReq struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
	Tier    *string `json:"tier"`
}

func (s *UserService) Update(id uint, req *UpdateUserReq) (*entity.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Tier != nil {
		user.Tier = *req.Tier
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetStatus(id uint, status string) (*entity.User, error) {
	return s.Update(id, &UpdateUserReq{Status: &status})
}
