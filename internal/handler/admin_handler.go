package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"monateg/internal/repository"
	"monateg/internal/service"
	"monateg/internal/ws"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminRepo      *repository.AdminRepository
	withdrawalRepo *repository.WithdrawalRepository
	ledger         *service.LedgerService
	hub            *ws.Hub
}

func NewAdminHandler(
	adminRepo *repository.AdminRepository,
	withdrawalRepo *repository.WithdrawalRepository,
	ledger *service.LedgerService,
	hub *ws.Hub,
) *AdminHandler {
	return &AdminHandler{
		adminRepo:      adminRepo,
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		hub:            hub,
	}
}

// ListUsers returns all users, newest first.
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	users, total, err := h.adminRepo.ListUsers(limit, offset)
	if err != nil {
		log.Printf("[Admin] list users failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total})
}

// Stats returns the dashboard counters.
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminRepo.GetDashboardStats()
	if err != nil {
		log.Printf("[Admin] stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	stats.LiveConnections = h.hub.ClientCount()
	c.JSON(http.StatusOK, stats)
}

// ListWithdrawals returns the withdrawal queue, optionally filtered by
// status, oldest first.
// GET /api/admin/withdrawals
func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.withdrawalRepo.ListByStatus(c.Query("status"), limit, offset)
	if err != nil {
		log.Printf("[Admin] list withdrawals failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ResolveWithdrawal completes or rejects a pending withdrawal. A
// rejection refunds the held amount in the same transaction.
// PUT /api/admin/withdrawals/:id/status
func (h *AdminHandler) ResolveWithdrawal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid withdrawal id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=completed rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.ledger.ResolveWithdrawal(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWithdrawalNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "withdrawal not found"})
		case errors.Is(err, service.ErrWithdrawalNotPending):
			c.JSON(http.StatusBadRequest, gin.H{"error": "withdrawal is not pending"})
		default:
			log.Printf("[Admin] resolve withdrawal %d failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, w)
}
