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

type LedgerHandler struct {
	ledger         *service.LedgerService
	earningRepo    *repository.EarningRepository
	withdrawalRepo *repository.WithdrawalRepository
}

func NewLedgerHandler(
	ledger *service.LedgerService,
	earningRepo *repository.EarningRepository,
	withdrawalRepo *repository.WithdrawalRepository,
) *LedgerHandler {
	return &LedgerHandler{
		ledger:         ledger,
		earningRepo:    earningRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// RecordEarning credits a user's balance. The optional idempotency_key
// lets clients safely resubmit the same reward event.
// POST /api/earn
func (h *LedgerHandler) RecordEarning(c *gin.Context) {
	var req struct {
		UserID         uint64  `json:"userId" binding:"required"`
		Amount         float64 `json:"amount" binding:"required,gt=0"`
		Source         string  `json:"source" binding:"required"`
		IdempotencyKey string  `json:"idempotency_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	earning, err := h.ledger.RecordEarning(c.Request.Context(), req.UserID, req.Amount, req.Source, req.IdempotencyKey)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[Ledger] earn for %d failed: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Earning recorded successfully", "id": earning.ID})
}

// RequestWithdrawal debits the balance and opens a pending withdrawal.
// POST /api/withdraw
func (h *LedgerHandler) RequestWithdrawal(c *gin.Context) {
	var req struct {
		UserID  uint64  `json:"userId" binding:"required"`
		Amount  float64 `json:"amount" binding:"required,gt=0"`
		Method  string  `json:"method" binding:"required"`
		Account string  `json:"account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.ledger.RequestWithdrawal(c.Request.Context(), req.UserID, req.Amount, req.Method, req.Account)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		default:
			log.Printf("[Ledger] withdraw for %d failed: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Withdrawal request submitted successfully",
		"id":        w.ID,
		"reference": w.Reference,
	})
}

// ListTransactions returns a user's earnings, newest first.
// GET /api/transactions/:userId
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.earningRepo.ListByUserID(userID, limit, offset)
	if err != nil {
		log.Printf("[Ledger] list earnings for %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListWithdrawals returns a user's withdrawals, newest first.
// GET /api/withdrawals/:userId
func (h *LedgerHandler) ListWithdrawals(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.withdrawalRepo.ListByUserID(userID, limit, offset)
	if err != nil {
		log.Printf("[Ledger] list withdrawals for %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}
