package entity

import (
	"gorm.io/gorm"
)

// User account states. A string field, not a flag — blocked is not the
// only non-active state we may need.
const (
	UserActive  = "active"
	UserBlocked = "blocked"
)

type User struct {
	gorm.Model
	ChatID  string `gorm:"uniqueIndex;not null" json:"chatId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `gorm:"not null;default:active" json:"status"`
	Tier    string `gorm:"not null;default:regular" json:"tier"`

	Orders []Order `json:"-"` // preload only for detail endpoints
}
