package models

import "time"

type Withdrawal struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	UserID     uint64     `gorm:"not null;index" json:"user_id"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Method     string     `gorm:"size:64" json:"method"`
	Account    string     `gorm:"size:255" json:"account"`
	Reference  string     `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	Status     string     `gorm:"size:20;not null;index;default:'pending'" json:"status"` // pending, completed, rejected
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Withdrawal) TableName() string { return "withdrawals" }
