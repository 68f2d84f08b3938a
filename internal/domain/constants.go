package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
	WithdrawalStatusRejected  = "rejected"
)

// Default reward rates seeded when the reward_configs table is empty.
const (
	DefaultReferralReward       = 0.01
	DefaultBitcoinbotReward     = 0.0005
	DefaultRemotetrievalReward  = 0.0005
	DefaultRewardedInterstitial = 0.0005
	DefaultRewardedPopup        = 0.0015
	DefaultInappInterstitial    = 0.0008
)
