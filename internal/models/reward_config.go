package models

import "time"

// RewardConfig is an append-only version history of the reward rates.
// The current config is the row with the highest id.
type RewardConfig struct {
	ID                   uint64    `gorm:"primaryKey" json:"id"`
	ReferralReward       float64   `gorm:"not null" json:"referral_reward"`
	BitcoinbotReward     float64   `gorm:"not null" json:"bitcoinbot_reward"`
	RemotetrievalReward  float64   `gorm:"not null" json:"remotetrieval_reward"`
	RewardedInterstitial float64   `gorm:"not null" json:"rewarded_interstitial"`
	RewardedPopup        float64   `gorm:"not null" json:"rewarded_popup"`
	InappInterstitial    float64   `gorm:"not null" json:"inapp_interstitial"`
	CreatedAt            time.Time `json:"updated_at"`
}

func (RewardConfig) TableName() string { return "reward_configs" }
