package repository

import (
	"context"

	"github.com/andrewyazura/birthday-api/internal/domain/models"
)

// UserRepository persists Telegram users. Users appear on first login and
// are never deleted.
type UserRepository interface {
	// GetOrCreate returns the user with the given Telegram ID, inserting
	// it first if absent. The boolean reports whether a row was created.
	GetOrCreate(ctx context.Context, telegramID string) (*models.User, bool, error)

	// FindByTelegramID returns the user or ErrUserNotFound.
	FindByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
}
