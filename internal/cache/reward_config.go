package cache

import (
	"context"
	"encoding/json"
	"time"

	"monateg/config"
	"monateg/internal/models"

	"github.com/redis/go-redis/v9"
)

const rewardConfigKey = "reward_config:current"

// RewardConfigCache keeps the current reward-rate snapshot in Redis.
// It is optional: NewRewardConfigCache returns nil when no address is
// configured and every caller treats a nil cache as a miss.
type RewardConfigCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRewardConfigCache(cfg *config.RedisConfig) *RewardConfigCache {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RewardConfigCache{client: client, ttl: cfg.TTL}
}

func (c *RewardConfigCache) Get(ctx context.Context) (*models.RewardConfig, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, rewardConfigKey).Bytes()
	if err != nil {
		return nil, false
	}
	var cfg models.RewardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, false
	}
	return &cfg, true
}

func (c *RewardConfigCache) Set(ctx context.Context, cfg *models.RewardConfig) {
	if c == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	c.client.Set(ctx, rewardConfigKey, data, c.ttl)
}

func (c *RewardConfigCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, rewardConfigKey)
}

func (c *RewardConfigCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
