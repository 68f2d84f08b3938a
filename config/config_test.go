package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ADMIN_TELEGRAM_IDS", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Admin.TelegramIDs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRY", "12h")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")
	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
}

func TestAdminIDParsing(t *testing.T) {
	t.Setenv("ADMIN_TELEGRAM_IDS", " 111, 222 ,,junk, 333 ")
	cfg := Load()
	assert.Equal(t, []uint64{111, 222, 333}, cfg.Admin.TelegramIDs)
	assert.True(t, cfg.Admin.IsAdmin(222))
	assert.False(t, cfg.Admin.IsAdmin(444))
}
