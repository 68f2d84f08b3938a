package models

import "time"

// Referral links a referee (UserID) to the referrer who invited them.
// The composite unique index is the dedup guard: one reward per pair.
type Referral struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_referrals_pair" json:"user_id"`
	ReferrerID uint64    `gorm:"not null;uniqueIndex:idx_referrals_pair;index" json:"referrer_id"`
	CreatedAt  time.Time `json:"created_at"`

	Referrer User `gorm:"foreignKey:ReferrerID" json:"-"`
}

func (Referral) TableName() string { return "referrals" }
