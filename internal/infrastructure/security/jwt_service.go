package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/service"
)

// hmacTokenService implements service.TokenService with HS256.
type hmacTokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewHMACTokenService creates a TokenService signing with the shared secret.
func NewHMACTokenService(secret string, tokenTTL time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must be configured")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &hmacTokenService{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// GenerateToken creates a signed session token for the given identity.
func (s *hmacTokenService) GenerateToken(telegramID string, isAdmin bool) (string, *service.Claims, error) {
	now := time.Now()
	claims := &service.Claims{
		TelegramID: telegramID,
		IsAdmin:    isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, claims, nil
}

// ValidateToken parses and validates a session token string.
func (s *hmacTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainErrors.ErrExpiredToken
		}
		return nil, domainErrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domainErrors.ErrInvalidToken
	}
	return claims, nil
}

var _ service.TokenService = (*hmacTokenService)(nil)
