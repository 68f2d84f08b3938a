package repository

import (
	"monateg/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// ListByReferrerID returns the referrals credited to the given referrer.
func (r *ReferralRepository) ListByReferrerID(referrerID uint64, limit, offset int) ([]models.Referral, error) {
	var list []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
