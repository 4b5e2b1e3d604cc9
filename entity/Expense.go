package entity

import (
	"gorm.io/gorm"
)

// Expense is a standalone operating cost: rent, utilities, fuel.
type Expense struct {
	gorm.Model
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}
