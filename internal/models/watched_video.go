package models

import "time"

// WatchedVideo is a pure dedup guard; the reward for watching goes
// through the earning endpoint separately.
type WatchedVideo struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_watched_pair" json:"user_id"`
	VideoID   uint64    `gorm:"not null;uniqueIndex:idx_watched_pair" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WatchedVideo) TableName() string { return "watched_videos" }
