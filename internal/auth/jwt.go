package auth

import (
	"errors"
	"time"

	"monateg/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID     uint64 `json:"user_id"`
	TelegramID uint64 `json:"telegram_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a token bound to the user's internal and external ids.
// Validity is fixed (24h by default); there is no refresh flow.
func GenerateToken(cfg *config.JWTConfig, userID, telegramID uint64, role string) (string, error) {
	claims := Claims{
		UserID:     userID,
		TelegramID: telegramID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

var ErrInvalidToken = errors.New("invalid token")

func ParseToken(cfg *config.JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
