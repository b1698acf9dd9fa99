package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
	"github.com/andrewyazura/birthday-api/internal/domain/repository"
)

const uniqueViolation = "23505"

// BirthdayRepositoryPostgres implements repository.BirthdayRepository
// using pgx. The (name, creator) uniqueness invariant lives in the
// database constraint, not in application code, so concurrent creates of
// the same name cannot race past a check-then-insert.
type BirthdayRepositoryPostgres struct {
	pool *pgxpool.Pool
}

// NewBirthdayRepositoryPostgres creates a new BirthdayRepositoryPostgres.
func NewBirthdayRepositoryPostgres(pool *pgxpool.Pool) *BirthdayRepositoryPostgres {
	return &BirthdayRepositoryPostgres{pool: pool}
}

// ListByOwner returns all birthdays created by the owner.
func (r *BirthdayRepositoryPostgres) ListByOwner(ctx context.Context, ownerID string) ([]models.Birthday, error) {
	query := `
		SELECT id, name, day, month, year, note, creator, created_at, updated_at
		FROM birthdays
		WHERE creator = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	defer rows.Close()

	var birthdays []models.Birthday
	for rows.Next() {
		var b models.Birthday
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Day, &b.Month, &b.Year, &b.Note, &b.Creator,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}
		birthdays = append(birthdays, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate birthdays: %w", err)
	}
	return birthdays, nil
}

// FindByIDAndOwner returns the birthday with the given id if the owner
// created it, ErrBirthdayNotFound otherwise.
func (r *BirthdayRepositoryPostgres) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (*models.Birthday, error) {
	query := `
		SELECT id, name, day, month, year, note, creator, created_at, updated_at
		FROM birthdays
		WHERE id = $1 AND creator = $2
	`
	b := &models.Birthday{}
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&b.ID, &b.Name, &b.Day, &b.Month, &b.Year, &b.Note, &b.Creator,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrBirthdayNotFound
		}
		return nil, fmt.Errorf("failed to find birthday: %w", err)
	}
	return b, nil
}

// Create inserts a new birthday and fills in its ID and timestamps.
func (r *BirthdayRepositoryPostgres) Create(ctx context.Context, birthday *models.Birthday) error {
	query := `
		INSERT INTO birthdays (name, day, month, year, note, creator)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		birthday.Name, birthday.Day, birthday.Month, birthday.Year, birthday.Note, birthday.Creator,
	).Scan(&birthday.ID, &birthday.CreatedAt, &birthday.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrBirthdayNameExists
		}
		return fmt.Errorf("failed to create birthday: %w", err)
	}
	return nil
}

// Update replaces the five payload fields of the birthday matched by
// (ID, Creator).
func (r *BirthdayRepositoryPostgres) Update(ctx context.Context, birthday *models.Birthday) error {
	query := `
		UPDATE birthdays
		SET name = $1, day = $2, month = $3, year = $4, note = $5, updated_at = NOW()
		WHERE id = $6 AND creator = $7
	`
	result, err := r.pool.Exec(ctx, query,
		birthday.Name, birthday.Day, birthday.Month, birthday.Year, birthday.Note,
		birthday.ID, birthday.Creator,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrBirthdayNameExists
		}
		return fmt.Errorf("failed to update birthday: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrBirthdayNotFound
	}
	return nil
}

// Delete removes the birthday matched by (id, owner).
func (r *BirthdayRepositoryPostgres) Delete(ctx context.Context, id int64, ownerID string) error {
	query := `DELETE FROM birthdays WHERE id = $1 AND creator = $2`
	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete birthday: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrBirthdayNotFound
	}
	return nil
}

// ListAll returns every birthday with its owner's public fields.
func (r *BirthdayRepositoryPostgres) ListAll(ctx context.Context) ([]models.AdminBirthday, error) {
	query := `
		SELECT b.id, b.name, b.day, b.month, b.year, b.note, b.creator,
		       b.created_at, b.updated_at, u.telegram_id, u.language
		FROM birthdays b
		JOIN users u ON u.telegram_id = b.creator
		ORDER BY b.id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all birthdays: %w", err)
	}
	defer rows.Close()
	return scanAdminBirthdays(rows)
}

// ListByDayMonth returns every birthday whose calendar (day, month) match,
// across all users.
func (r *BirthdayRepositoryPostgres) ListByDayMonth(ctx context.Context, day, month int) ([]models.AdminBirthday, error) {
	query := `
		SELECT b.id, b.name, b.day, b.month, b.year, b.note, b.creator,
		       b.created_at, b.updated_at, u.telegram_id, u.language
		FROM birthdays b
		JOIN users u ON u.telegram_id = b.creator
		WHERE b.day = $1 AND b.month = $2
		ORDER BY b.id
	`
	rows, err := r.pool.Query(ctx, query, day, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays by day and month: %w", err)
	}
	defer rows.Close()
	return scanAdminBirthdays(rows)
}

func scanAdminBirthdays(rows pgx.Rows) ([]models.AdminBirthday, error) {
	var birthdays []models.AdminBirthday
	for rows.Next() {
		var b models.AdminBirthday
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Day, &b.Month, &b.Year, &b.Note, &b.Creator,
			&b.CreatedAt, &b.UpdatedAt, &b.Owner.TelegramID, &b.Owner.Language,
		); err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}
		birthdays = append(birthdays, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate birthdays: %w", err)
	}
	return birthdays, nil
}

var _ repository.BirthdayRepository = (*BirthdayRepositoryPostgres)(nil)
