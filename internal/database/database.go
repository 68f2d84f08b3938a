package database

import (
	"monateg/config"
	"monateg/internal/domain"
	"monateg/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true, // duplicate-key violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Earning{},
		&models.Withdrawal{},
		&models.Referral{},
		&models.Notification{},
		&models.WatchedVideo{},
		&models.RewardConfig{},
	)
}

// SeedRewardConfig inserts the default reward rates if no config row exists yet.
func SeedRewardConfig(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RewardConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.RewardConfig{
		ReferralReward:       domain.DefaultReferralReward,
		BitcoinbotReward:     domain.DefaultBitcoinbotReward,
		RemotetrievalReward:  domain.DefaultRemotetrievalReward,
		RewardedInterstitial: domain.DefaultRewardedInterstitial,
		RewardedPopup:        domain.DefaultRewardedPopup,
		InappInterstitial:    domain.DefaultInappInterstitial,
	}).Error
}
