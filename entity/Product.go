package entity

import (
	"gorm.io/gorm"
)

// Products are never hard-deleted: order items keep pointing at them.
const (
	ProductActive  = "active"
	ProductDeleted = "deleted"
)

type Product struct {
	gorm.Model
	Name      string `json:"name"`
	BuyPrice  int64  `json:"buyPrice"`
	SellPrice int64  `json:"sellPrice"`
	Stock     int    `json:"stock"`
	Status    string `gorm:"not null;default:active" json:"status"`
	Image     string `json:"image"`

	OrderItems []OrderItem `json:"-"`
}
