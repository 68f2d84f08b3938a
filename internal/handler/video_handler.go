package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"monateg/internal/repository"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	repo *repository.WatchedVideoRepository
}

func NewVideoHandler(repo *repository.WatchedVideoRepository) *VideoHandler {
	return &VideoHandler{repo: repo}
}

// Mark records that a user watched a video. This is a pure dedup guard;
// the watch reward goes through the earning endpoint separately.
// POST /api/watched-videos
func (h *VideoHandler) Mark(c *gin.Context) {
	var req struct {
		UserID  uint64 `json:"userId" binding:"required"`
		VideoID uint64 `json:"videoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wv, err := h.repo.Mark(req.UserID, req.VideoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoAlreadyWatched) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Video already watched"})
			return
		}
		log.Printf("[Video] mark %d/%d failed: %v", req.UserID, req.VideoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video marked as watched", "id": wv.ID})
}

// List returns the bare video ids a user has watched.
// GET /api/watched-videos/:userId
func (h *VideoHandler) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	ids, err := h.repo.ListVideoIDs(userID)
	if err != nil {
		log.Printf("[Video] list for %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if ids == nil {
		ids = []uint64{}
	}
	c.JSON(http.StatusOK, ids)
}
