package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"monateg/config"
	"monateg/internal/auth"
	"monateg/internal/domain"
	"monateg/internal/middleware"
	"monateg/internal/models"
	"monateg/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewUserHandler(cfg *config.Config, userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{cfg: cfg, userRepo: userRepo}
}

type userWithToken struct {
	models.User
	Token string `json:"token"`
}

// GetOrCreate is the unauthenticated entry point: it is how a client
// obtains its first token. Creation is idempotent; a concurrent create
// for the same id loses the insert race and falls back to the fetch.
// GET /api/user/:id
func (h *UserHandler) GetOrCreate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role := domain.RoleUser
		if h.cfg.Admin.IsAdmin(id) {
			role = domain.RoleAdmin
		}
		u := &models.User{ID: id, TelegramID: id, Role: role}
		if err := h.userRepo.Create(u); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[User] create %d failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		user, err = h.userRepo.GetByID(id)
		if err != nil {
			log.Printf("[User] fetch after create %d failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	} else if err != nil {
		log.Printf("[User] get %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// The admin list is re-checked on every mint, so an id added to
	// ADMIN_TELEGRAM_IDS after the row was created still gets promoted.
	if h.cfg.Admin.IsAdmin(user.TelegramID) && user.Role != domain.RoleAdmin {
		if _, err := h.userRepo.UpdateFields(id, map[string]interface{}{"role": domain.RoleAdmin}); err == nil {
			user.Role = domain.RoleAdmin
		}
	}

	now := time.Now()
	if err := h.userRepo.TouchLastLogin(id, now); err == nil {
		user.LastLoginDate = &now
	}

	token, err := auth.GenerateToken(&h.cfg.JWT, user.ID, user.TelegramID, user.Role)
	if err != nil {
		log.Printf("[User] token mint for %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, userWithToken{User: *user, Token: token})
}

// Update applies a partial profile update with coalesce semantics:
// omitted fields stay untouched. Balance and today_earnings are only
// writable by ADMIN callers; everyone else goes through the ledger.
// PUT /api/user/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req struct {
		FirstName     *string    `json:"first_name"`
		LastName      *string    `json:"last_name"`
		Username      *string    `json:"username"`
		Balance       *float64   `json:"balance"`
		Theme         *string    `json:"theme"`
		Level         *int       `json:"level"`
		Experience    *float64   `json:"experience"`
		Language      *string    `json:"language"`
		TodayEarnings *float64   `json:"today_earnings"`
		LastLoginDate *time.Time `json:"last_login_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.Balance != nil || req.TodayEarnings != nil) && middleware.GetRole(c) != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "balance can only be adjusted by an admin"})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Balance != nil {
		updates["balance"] = *req.Balance
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.Level != nil {
		updates["level"] = *req.Level
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.TodayEarnings != nil {
		updates["today_earnings"] = *req.TodayEarnings
	}
	if req.LastLoginDate != nil {
		updates["last_login_date"] = *req.LastLoginDate
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "changes": 0})
		return
	}

	rows, err := h.userRepo.UpdateFields(id, updates)
	if err != nil {
		log.Printf("[User] update %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "changes": rows})
}
