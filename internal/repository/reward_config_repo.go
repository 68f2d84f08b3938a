package repository

import (
	"monateg/internal/models"

	"gorm.io/gorm"
)

type RewardConfigRepository struct {
	db *gorm.DB
}

func NewRewardConfigRepository(db *gorm.DB) *RewardConfigRepository {
	return &RewardConfigRepository{db: db}
}

// Current returns the latest reward-rate snapshot.
func (r *RewardConfigRepository) Current() (*models.RewardConfig, error) {
	var cfg models.RewardConfig
	err := r.db.Order("id DESC").First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Append stores a new version; history is retained, the new row becomes current.
func (r *RewardConfigRepository) Append(cfg *models.RewardConfig) error {
	return r.db.Create(cfg).Error
}
