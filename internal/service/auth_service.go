package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
	"github.com/andrewyazura/birthday-api/internal/domain/repository"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
)

// AdminIdentity is the token identity of the admin login path. Admin
// sessions are not bound to a Telegram account.
const AdminIdentity = "admin"

// AuthService turns an identity proof into a session token. It accepts
// either Telegram login-widget data or the companion bot's encrypted bot
// token, creates the user on first login and issues the signed token.
type AuthService struct {
	logger           *zap.Logger
	users            repository.UserRepository
	telegramVerifier domainService.TelegramVerifier
	botTokenVerifier domainService.BotTokenVerifier
	tokens           domainService.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	logger *zap.Logger,
	users repository.UserRepository,
	telegramVerifier domainService.TelegramVerifier,
	botTokenVerifier domainService.BotTokenVerifier,
	tokens domainService.TokenService,
) *AuthService {
	return &AuthService{
		logger:           logger.Named("auth_service"),
		users:            users,
		telegramVerifier: telegramVerifier,
		botTokenVerifier: botTokenVerifier,
		tokens:           tokens,
	}
}

// LoginWithWidget verifies Telegram login-widget data and issues a session
// token for the account it identifies.
func (s *AuthService) LoginWithWidget(ctx context.Context, data domainService.TelegramAuthData) (string, *models.User, error) {
	if !s.telegramVerifier.VerifyTelegramAuth(data) {
		return "", nil, domainErrors.ErrTelegramAuth
	}

	telegramID := data["id"]
	if telegramID == "" {
		return "", nil, domainErrors.ErrTelegramAuth
	}

	return s.issueUserSession(ctx, telegramID)
}

// LoginWithBotToken verifies the companion bot's encrypted bot token and
// issues a session token for the Telegram account the bot is acting for.
func (s *AuthService) LoginWithBotToken(ctx context.Context, encrypted, telegramID string) (string, *models.User, error) {
	if err := s.botTokenVerifier.VerifyEncryptedBotToken(encrypted); err != nil {
		return "", nil, err
	}
	if telegramID == "" {
		return "", nil, domainErrors.ErrInvalidRequest
	}

	return s.issueUserSession(ctx, telegramID)
}

// AdminLogin verifies the encrypted bot token and issues an elevated
// session token.
func (s *AuthService) AdminLogin(ctx context.Context, encrypted string) (string, error) {
	if err := s.botTokenVerifier.VerifyEncryptedBotToken(encrypted); err != nil {
		return "", err
	}

	token, _, err := s.tokens.GenerateToken(AdminIdentity, true)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin session: %w", err)
	}
	s.logger.Info("admin session issued")
	return token, nil
}

// PublicKeyPEM returns the PEM-encoded public key clients use to encrypt
// the bot token.
func (s *AuthService) PublicKeyPEM() string {
	return s.botTokenVerifier.PublicKeyPEM()
}

func (s *AuthService) issueUserSession(ctx context.Context, telegramID string) (string, *models.User, error) {
	user, created, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return "", nil, err
	}
	if created {
		s.logger.Info("new user created", zap.String("telegram_id", user.TelegramID))
	}

	token, _, err := s.tokens.GenerateToken(user.TelegramID, false)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return token, user, nil
}
