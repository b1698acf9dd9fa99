package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session token claims. TelegramID identifies the user;
// IsAdmin is set only by the admin login path.
type Claims struct {
	TelegramID string `json:"telegram_id"`
	IsAdmin    bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens. Tokens are
// short-lived and never revoked server-side; they expire naturally.
type TokenService interface {
	// GenerateToken creates a signed session token for the given identity.
	GenerateToken(telegramID string, isAdmin bool) (string, *Claims, error)

	// ValidateToken parses and validates a session token string.
	ValidateToken(tokenString string) (*Claims, error)
}
