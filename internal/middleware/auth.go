package middleware

import (
	"net/http"
	"strings"

	"monateg/config"
	"monateg/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets UserID, TelegramID and
// Role in the context. A missing credential is 401, a bad one is 403.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}
		claims, err := auth.ParseToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("telegram_id", claims.TelegramID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// GetUserID returns the authenticated user id from context (after AuthRequired).
func GetUserID(c *gin.Context) uint64 {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint64)
}

// GetRole returns the authenticated role from context (after AuthRequired).
func GetRole(c *gin.Context) string {
	v, _ := c.Get("role")
	if v == nil {
		return ""
	}
	return v.(string)
}
