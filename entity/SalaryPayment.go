package entity

import (
	"time"

	"gorm.io/gorm"
)

// SalaryPayment records money actually paid out for a period. The amount
// is whatever the admin entered — it is not re-derived from orders.
type SalaryPayment struct {
	gorm.Model
	CourierID uint    `json:"courierId"`
	Courier   Courier `json:"-"`

	Amount    int64     `json:"amount"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	PaidAt    time.Time `json:"paidAt"`
	Note      string    `json:"note"`
}
