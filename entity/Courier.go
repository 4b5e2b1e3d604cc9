package entity

import (
	"gorm.io/gorm"
)

const (
	CourierActive   = "active"
	CourierInactive = "inactive"
)

type Courier struct {
	gorm.Model
	ChatID   string `gorm:"uniqueIndex;not null" json:"chatId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Status   string `gorm:"not null;default:active" json:"status"`

	Orders         []Order         `json:"-"`
	SalaryPayments []SalaryPayment `json:"-"`
}
