package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// RedisConfig is optional; reward-config caching is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AdminConfig lists the Telegram ids that are granted the ADMIN role.
type AdminConfig struct {
	TelegramIDs []uint64
}

func (a *AdminConfig) IsAdmin(telegramID uint64) bool {
	for _, id := range a.TelegramIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			Env:            getEnv("APP_ENV", "development"),
			ReadTimeout:    getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_DSN", "monateg:monateg@tcp(localhost:3306)/monateg?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
			Expiry: getEnvDuration("JWT_EXPIRY", 24*time.Hour),
			Issuer: getEnv("JWT_ISSUER", "monateg"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		Admin: AdminConfig{
			TelegramIDs: parseIDList(os.Getenv("ADMIN_TELEGRAM_IDS")),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// parseIDList parses a comma-separated list of numeric ids, skipping blanks and junk.
func parseIDList(s string) []uint64 {
	if s == "" {
		return nil
	}
	var ids []uint64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
