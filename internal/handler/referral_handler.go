package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"monateg/internal/repository"
	"monateg/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	ledger       *service.LedgerService
	referralRepo *repository.ReferralRepository
}

func NewReferralHandler(ledger *service.LedgerService, referralRepo *repository.ReferralRepository) *ReferralHandler {
	return &ReferralHandler{ledger: ledger, referralRepo: referralRepo}
}

// Create records the (referee, referrer) pair and pays the referrer the
// current referral reward. Duplicate pairs are rejected with no credit.
// POST /api/referral
func (h *ReferralHandler) Create(c *gin.Context) {
	var req struct {
		UserID     uint64 `json:"userId" binding:"required"`
		ReferrerID uint64 `json:"referrerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ref, reward, err := h.ledger.RecordReferral(c.Request.Context(), req.UserID, req.ReferrerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReferralExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referral already exists"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "referrer not found"})
		default:
			log.Printf("[Referral] create %d->%d failed: %v", req.ReferrerID, req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Referral recorded successfully",
		"id":      ref.ID,
		"reward":  reward,
	})
}

// List returns the referrals credited to the given referrer, newest first.
// GET /api/referrals/:userId
func (h *ReferralHandler) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.referralRepo.ListByReferrerID(userID, limit, offset)
	if err != nil {
		log.Printf("[Referral] list for %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}
