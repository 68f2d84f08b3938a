package models

import "time"

// Earning is an append-only ledger row. Every row corresponds to exactly
// one balance credit of the same amount, applied in the same transaction.
type Earning struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"not null;index" json:"user_id"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Source         string    `gorm:"size:255" json:"source"`
	IdempotencyKey *string   `gorm:"uniqueIndex;size:64" json:"-"` // nil for clients that don't send one
	CreatedAt      time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Earning) TableName() string { return "earnings" }
