package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order status moves one way: pending → with_courier → delivered.
// Assignment is not a status of its own — CourierID + AssignedAt get set
// while the order is still pending; the status word changes only when
// the courier accepts.
const (
	OrderPending     = "pending"
	OrderWithCourier = "with_courier"
	OrderDelivered   = "delivered"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload for customer name/chat id

	CourierID *uint    `json:"courierId,omitempty"`
	Courier   *Courier `json:"-"`

	Status       string `gorm:"not null;default:pending" json:"status"`
	DeliveryTime string `json:"deliveryTime"` // free text from the courier, e.g. "30 min"

	// BaseTotalAmount is the creation-time snapshot and never changes.
	// FinalTotalAmount is what the courier may adjust until the lock.
	TotalAmount      int64 `json:"totalAmount"`
	BaseTotalAmount  int64 `json:"baseTotalAmount"`
	FinalTotalAmount int64 `json:"finalTotalAmount"`
	IsPriceLocked    bool  `gorm:"not null;default:false" json:"isPriceLocked"`

	Rating        *int   `json:"rating,omitempty"`
	RatingComment string `json:"ratingComment,omitempty"`

	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	Items        []OrderItem         `json:"items,omitempty"`
	PriceHistory []OrderPriceHistory `json:"-"`
}
