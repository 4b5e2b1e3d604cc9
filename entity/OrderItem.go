package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload only when the name is needed

	Quantity int `json:"quantity"`

	// Price snapshots taken at creation; later catalog edits never touch
	// them. Bonus lines snapshot zero/zero.
	BuyPrice  int64 `json:"buyPrice"`
	SellPrice int64 `json:"sellPrice"`
	IsBonus   bool  `gorm:"not null;default:false" json:"isBonus"`
}
