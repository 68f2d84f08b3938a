package models

import (
	"time"

	"monateg/internal/domain"
)

// User is the balance aggregate root. The primary key is the external
// Telegram id supplied by the client at get-or-create time, so it is
// not auto-incremented.
type User struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TelegramID    uint64     `gorm:"uniqueIndex;not null" json:"telegram_id"`
	FirstName     string     `gorm:"size:128" json:"first_name"`
	LastName      string     `gorm:"size:128" json:"last_name"`
	Username      string     `gorm:"size:64" json:"username"`
	Balance       float64    `gorm:"not null;default:0" json:"balance"`
	Theme         string     `gorm:"size:16;default:'light'" json:"theme"`
	Level         int        `gorm:"default:1" json:"level"`
	Experience    float64    `gorm:"default:0" json:"experience"`
	Language      string     `gorm:"size:8;default:'en'" json:"language"`
	TodayEarnings float64    `gorm:"not null;default:0" json:"today_earnings"`
	LastLoginDate *time.Time `json:"last_login_date"`
	Role          string     `gorm:"size:20;not null;default:'USER'" json:"role"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }
