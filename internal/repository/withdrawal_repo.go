package repository

import (
	"monateg/internal/models"

	"gorm.io/gorm"
)

type WithdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) ListByUserID(userID uint64, limit, offset int) ([]models.Withdrawal, error) {
	var list []models.Withdrawal
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// ListByStatus returns withdrawals for the admin queue, oldest pending first.
func (r *WithdrawalRepository) ListByStatus(status string, limit, offset int) ([]models.Withdrawal, error) {
	q := r.db.Model(&models.Withdrawal{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Withdrawal
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
