package handler

import (
	"log"
	"net/http"

	"monateg/internal/cache"
	"monateg/internal/models"
	"monateg/internal/repository"

	"github.com/gin-gonic/gin"
)

type RewardConfigHandler struct {
	repo  *repository.RewardConfigRepository
	cache *cache.RewardConfigCache // nil when Redis is not configured
}

func NewRewardConfigHandler(repo *repository.RewardConfigRepository, c *cache.RewardConfigCache) *RewardConfigHandler {
	return &RewardConfigHandler{repo: repo, cache: c}
}

// GetCurrent returns the latest reward-rate snapshot.
// GET /api/reward-config
func (h *RewardConfigHandler) GetCurrent(c *gin.Context) {
	ctx := c.Request.Context()
	if cfg, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, cfg)
		return
	}
	cfg, err := h.repo.Current()
	if err != nil {
		log.Printf("[RewardConfig] read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	h.cache.Set(ctx, cfg)
	c.JSON(http.StatusOK, cfg)
}

// Append stores a new reward-rate version; history is retained and the
// new row becomes current.
// PUT /api/reward-config
func (h *RewardConfigHandler) Append(c *gin.Context) {
	var req struct {
		ReferralReward       *float64 `json:"referral_reward" binding:"required"`
		BitcoinbotReward     *float64 `json:"bitcoinbot_reward" binding:"required"`
		RemotetrievalReward  *float64 `json:"remotetrieval_reward" binding:"required"`
		RewardedInterstitial *float64 `json:"rewarded_interstitial" binding:"required"`
		RewardedPopup        *float64 `json:"rewarded_popup" binding:"required"`
		InappInterstitial    *float64 `json:"inapp_interstitial" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg := &models.RewardConfig{
		ReferralReward:       *req.ReferralReward,
		BitcoinbotReward:     *req.BitcoinbotReward,
		RemotetrievalReward:  *req.RemotetrievalReward,
		RewardedInterstitial: *req.RewardedInterstitial,
		RewardedPopup:        *req.RewardedPopup,
		InappInterstitial:    *req.InappInterstitial,
	}
	if err := h.repo.Append(cfg); err != nil {
		log.Printf("[RewardConfig] append failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	h.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Reward configuration updated successfully", "id": cfg.ID})
}
