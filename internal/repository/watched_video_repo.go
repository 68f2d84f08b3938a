package repository

import (
	"errors"

	"monateg/internal/models"

	"gorm.io/gorm"
)

var ErrVideoAlreadyWatched = errors.New("video already watched")

type WatchedVideoRepository struct {
	db *gorm.DB
}

func NewWatchedVideoRepository(db *gorm.DB) *WatchedVideoRepository {
	return &WatchedVideoRepository{db: db}
}

// Mark inserts the dedup row. A duplicate (user, video) pair is rejected
// by the composite unique index, never stored twice.
func (r *WatchedVideoRepository) Mark(userID, videoID uint64) (*models.WatchedVideo, error) {
	wv := models.WatchedVideo{UserID: userID, VideoID: videoID}
	if err := r.db.Create(&wv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVideoAlreadyWatched
		}
		return nil, err
	}
	return &wv, nil
}

// ListVideoIDs returns the bare video ids a user has watched.
func (r *WatchedVideoRepository) ListVideoIDs(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.WatchedVideo{}).Where("user_id = ?", userID).Pluck("video_id", &ids).Error
	return ids, err
}
