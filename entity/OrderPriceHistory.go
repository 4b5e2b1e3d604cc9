package entity

import (
	"gorm.io/gorm"
)

// OrderPriceHistory is append-only. Rows exist only for pre-lock
// adjustments; after the lock nothing may be appended.
type OrderPriceHistory struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	CourierID uint    `json:"courierId"`
	Courier   Courier `json:"-"`

	PreviousPrice int64 `json:"previousPrice"`
	NewPrice      int64 `json:"newPrice"`
}
