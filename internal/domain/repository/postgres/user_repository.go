package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
	"github.com/andrewyazura/birthday-api/internal/domain/repository"
)

// UserRepositoryPostgres implements repository.UserRepository using pgx.
type UserRepositoryPostgres struct {
	pool *pgxpool.Pool
}

// NewUserRepositoryPostgres creates a new UserRepositoryPostgres.
func NewUserRepositoryPostgres(pool *pgxpool.Pool) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{pool: pool}
}

// GetOrCreate returns the user with the given Telegram ID, inserting it
// first if absent. The insert is idempotent, so two concurrent first
// logins of the same account both succeed.
func (r *UserRepositoryPostgres) GetOrCreate(ctx context.Context, telegramID string) (*models.User, bool, error) {
	insert := `
		INSERT INTO users (telegram_id, language)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, insert, telegramID, models.DefaultLanguage)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert user: %w", err)
	}
	created := tag.RowsAffected() > 0

	user, err := r.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

// FindByTelegramID returns the user or ErrUserNotFound.
func (r *UserRepositoryPostgres) FindByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	query := `
		SELECT telegram_id, language, created_at
		FROM users
		WHERE telegram_id = $1
	`
	user := &models.User{}
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&user.TelegramID, &user.Language, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by telegram id: %w", err)
	}
	return user, nil
}

var _ repository.UserRepository = (*UserRepositoryPostgres)(nil)
