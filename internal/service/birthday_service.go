package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
	"github.com/andrewyazura/birthday-api/internal/domain/repository"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
)

// IncomingOffsets are the scan horizons of the privileged incoming scan:
// today, tomorrow and a week ahead.
var IncomingOffsets = []int{0, 1, 7}

// BirthdayService implements the ownership-scoped CRUD operations and the
// privileged scans. The acting user is always identified by the Telegram
// ID taken from the session token, never from the payload.
type BirthdayService struct {
	logger    *zap.Logger
	users     repository.UserRepository
	birthdays repository.BirthdayRepository
	validator *domainService.BirthdayValidator
	now       func() time.Time
}

// NewBirthdayService creates a new BirthdayService.
func NewBirthdayService(
	logger *zap.Logger,
	users repository.UserRepository,
	birthdays repository.BirthdayRepository,
	validator *domainService.BirthdayValidator,
) *BirthdayService {
	return &BirthdayService{
		logger:    logger.Named("birthday_service"),
		users:     users,
		birthdays: birthdays,
		validator: validator,
		now:       time.Now,
	}
}

// List returns all birthdays of the acting user. An empty result is
// reported as ErrNoBirthdays, which the boundary maps to 404.
func (s *BirthdayService) List(ctx context.Context, telegramID string) ([]models.Birthday, error) {
	user, _, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	birthdays, err := s.birthdays.ListByOwner(ctx, user.TelegramID)
	if err != nil {
		return nil, err
	}
	if len(birthdays) == 0 {
		return nil, domainErrors.ErrNoBirthdays
	}
	return birthdays, nil
}

// Get returns one birthday of the acting user by id.
func (s *BirthdayService) Get(ctx context.Context, telegramID string, id int64) (*models.Birthday, error) {
	user, _, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.birthdays.FindByIDAndOwner(ctx, id, user.TelegramID)
}

// Create validates the payload and inserts a new birthday for the acting
// user.
func (s *BirthdayService) Create(ctx context.Context, telegramID string, req models.BirthdayRequest) (*models.Birthday, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, _, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	birthday := &models.Birthday{
		Name:    req.Name,
		Day:     *req.Day,
		Month:   *req.Month,
		Year:    req.Year,
		Note:    req.Note,
		Creator: user.TelegramID,
	}
	if err := s.birthdays.Create(ctx, birthday); err != nil {
		return nil, err
	}

	s.logger.Info("birthday created",
		zap.Int64("birthday_id", birthday.ID),
		zap.String("telegram_id", user.TelegramID),
	)
	return birthday, nil
}

// Update validates the payload and replaces all five fields of the
// birthday matched by (id, acting user).
func (s *BirthdayService) Update(ctx context.Context, telegramID string, id int64, req models.BirthdayRequest) (*models.Birthday, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, _, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	birthday := &models.Birthday{
		ID:      id,
		Name:    req.Name,
		Day:     *req.Day,
		Month:   *req.Month,
		Year:    req.Year,
		Note:    req.Note,
		Creator: user.TelegramID,
	}
	if err := s.birthdays.Update(ctx, birthday); err != nil {
		return nil, err
	}

	s.logger.Info("birthday updated",
		zap.Int64("birthday_id", id),
		zap.String("telegram_id", user.TelegramID),
	)
	return s.birthdays.FindByIDAndOwner(ctx, id, user.TelegramID)
}

// Delete removes the birthday matched by (id, acting user).
func (s *BirthdayService) Delete(ctx context.Context, telegramID string, id int64) error {
	user, _, err := s.users.GetOrCreate(ctx, telegramID)
	if err != nil {
		return err
	}

	if err := s.birthdays.Delete(ctx, id, user.TelegramID); err != nil {
		return err
	}

	s.logger.Info("birthday deleted",
		zap.Int64("birthday_id", id),
		zap.String("telegram_id", user.TelegramID),
	)
	return nil
}

// Incoming returns, across all users, the birthdays whose (day, month)
// fall on today, tomorrow or a week from today. Each match is annotated
// with the offset that produced it; a birthday matching two offsets
// appears once per match.
func (s *BirthdayService) Incoming(ctx context.Context) ([]models.IncomingBirthday, error) {
	today := s.now()

	incoming := make([]models.IncomingBirthday, 0)
	for _, offset := range IncomingOffsets {
		target := today.AddDate(0, 0, offset)
		matches, err := s.birthdays.ListByDayMonth(ctx, target.Day(), int(target.Month()))
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			incoming = append(incoming, models.IncomingBirthday{
				AdminBirthday:  match,
				IncomingInDays: offset,
			})
		}
	}
	return incoming, nil
}

// All returns every birthday with its owner.
func (s *BirthdayService) All(ctx context.Context) ([]models.AdminBirthday, error) {
	birthdays, err := s.birthdays.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if birthdays == nil {
		birthdays = make([]models.AdminBirthday, 0)
	}
	return birthdays, nil
}
