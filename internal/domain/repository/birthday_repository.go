package repository

import (
	"context"

	"github.com/andrewyazura/birthday-api/internal/domain/models"
)

// BirthdayRepository persists birthday records. Every per-user method takes
// the owner's Telegram ID so that an unscoped query cannot be expressed;
// the privileged ListAll and ListByDayMonth are the only exceptions.
type BirthdayRepository interface {
	// ListByOwner returns all birthdays created by the owner.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Birthday, error)

	// FindByIDAndOwner returns the birthday with the given id if the owner
	// created it, ErrBirthdayNotFound otherwise. A record owned by another
	// user is indistinguishable from a missing one.
	FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (*models.Birthday, error)

	// Create inserts a new birthday and fills in its ID. A (name, creator)
	// uniqueness violation yields ErrBirthdayNameExists.
	Create(ctx context.Context, birthday *models.Birthday) error

	// Update replaces the five payload fields of the birthday matched by
	// (ID, Creator). No rows affected yields ErrBirthdayNotFound; a
	// uniqueness violation yields ErrBirthdayNameExists.
	Update(ctx context.Context, birthday *models.Birthday) error

	// Delete removes the birthday matched by (id, owner).
	// No rows affected yields ErrBirthdayNotFound.
	Delete(ctx context.Context, id int64, ownerID string) error

	// ListAll returns every birthday with its owner. Privileged.
	ListAll(ctx context.Context) ([]models.AdminBirthday, error)

	// ListByDayMonth returns every birthday whose calendar day and month
	// match, across all users, with owners. Privileged.
	ListByDayMonth(ctx context.Context, day, month int) ([]models.AdminBirthday, error)
}
