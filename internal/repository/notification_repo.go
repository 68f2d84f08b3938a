package repository

import (
	"monateg/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) ListByUserID(userID uint64, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// MarkRead flips is_read and returns the changed-row count (0 for unknown id).
func (r *NotificationRepository) MarkRead(id uint64) (int64, error) {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	return res.RowsAffected, res.Error
}
