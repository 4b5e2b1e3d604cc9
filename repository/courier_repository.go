package repository

import (
	"github.com/azamatp047/shukrona-backend/entity"
	"gorm.io/gorm"
)

type CourierRepository struct {
	DB *gorm.DB
}

func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{DB: db}
}

func (r *CourierRepository) Create(tx *gorm.DB, c *entity.Courier) error {
	return tx.Create(c).Error
}

func (r *CourierRepository) Get(id uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) GetByChatID(chatID string) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.Where("chat_id = ?", chatID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) List() ([]entity.Courier, error) {
	var couriers []entity.Courier
	err := r.DB.Order("id").Find(&couriers).Error
	return couriers, err
}

func (r *CourierRepository) Save(tx *gorm.DB, c *entity.Courier) error {
	return tx.Save(c).Error
}
