package service

import (
	"time"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
)

// MaxNameLength bounds the name and note fields, mirroring the column type.
const MaxNameLength = 255

// BirthdayValidator checks the calendar fields of a candidate record.
// A record without a year gets a probe year (last year) so it is never
// rejected as "in the future", while February 29 is still detectable.
type BirthdayValidator struct {
	now func() time.Time
}

// NewBirthdayValidator returns a validator using the wall clock.
func NewBirthdayValidator() *BirthdayValidator {
	return &BirthdayValidator{now: time.Now}
}

// NewBirthdayValidatorWithClock returns a validator with a fixed clock,
// used by tests.
func NewBirthdayValidatorWithClock(now func() time.Time) *BirthdayValidator {
	return &BirthdayValidator{now: now}
}

// Validate applies the validation sequence to req. It returns nil on
// success or a *ValidationError carrying the offending field.
func (v *BirthdayValidator) Validate(req models.BirthdayRequest) error {
	if req.Name == "" {
		return domainErrors.NewValidationError("name", "Name is required")
	}
	if len(req.Name) > MaxNameLength {
		return domainErrors.NewValidationError("name", "Name is longer than 255 characters")
	}
	if req.Note != nil && len(*req.Note) > MaxNameLength {
		return domainErrors.NewValidationError("note", "Note is longer than 255 characters")
	}
	if req.Day == nil || req.Month == nil {
		return domainErrors.NewValidationError("date", "Day and month are required")
	}

	day := *req.Day
	month := *req.Month

	today := v.today()

	// A leap day is only sometimes a real date, and the year is often
	// unknown, so it is rejected categorically.
	if month == 2 && day == 29 {
		return domainErrors.NewValidationError("date", "29th of February is not a valid date")
	}

	year := today.Year() - 1
	if req.Year != nil {
		year = *req.Year
	}

	if !isCalendarDate(year, month, day) {
		return domainErrors.NewValidationError("date", "Invalid date")
	}

	// The probe year is synthetic, so the future check only applies to an
	// explicitly supplied year.
	if req.Year != nil {
		birthday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if birthday.After(today) {
			return domainErrors.NewValidationError("date", "Future dates are forbidden")
		}
	}

	return nil
}

// today returns the current date truncated to midnight UTC.
func (v *BirthdayValidator) today() time.Time {
	now := v.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// isCalendarDate reports whether (year, month, day) names a real calendar
// date. time.Date normalizes out-of-range components instead of failing,
// so the check is a round-trip comparison.
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && d.Month() == time.Month(month) && d.Day() == day
}
