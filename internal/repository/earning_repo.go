package repository

import (
	"monateg/internal/models"

	"gorm.io/gorm"
)

type EarningRepository struct {
	db *gorm.DB
}

func NewEarningRepository(db *gorm.DB) *EarningRepository {
	return &EarningRepository{db: db}
}

func (r *EarningRepository) ListByUserID(userID uint64, limit, offset int) ([]models.Earning, error) {
	var list []models.Earning
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
