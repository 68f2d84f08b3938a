package handler

import (
	"log"
	"net/http"
	"strconv"

	"monateg/internal/repository"
	"monateg/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	repo  *repository.NotificationRepository
	notif *service.NotificationService
}

func NewNotificationHandler(repo *repository.NotificationRepository, notif *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{repo: repo, notif: notif}
}

// Create stores a notification and pushes it to the recipient's live
// connections.
// POST /api/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req struct {
		UserID  uint64 `json:"userId" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.notif.Create(req.UserID, req.Title, req.Message)
	if err != nil {
		log.Printf("[Notification] create for %d failed: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification added successfully", "id": n.ID})
}

// List returns a user's notifications, newest first.
// GET /api/notifications/:userId
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListByUserID(userID, limit, offset)
	if err != nil {
		log.Printf("[Notification] list for %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkRead flips is_read; the changed-row count is 0 for an unknown id.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	rows, err := h.repo.MarkRead(id)
	if err != nil {
		log.Printf("[Notification] mark read %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read", "changes": rows})
}
