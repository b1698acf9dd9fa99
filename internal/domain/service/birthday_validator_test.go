package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func fixedClock() func() time.Time {
	// A non-leap year in the middle of the year keeps the cases readable.
	return func() time.Time {
		return time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)
	}
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	tests := []struct {
		name string
		req  models.BirthdayRequest
	}{
		{"full record", models.BirthdayRequest{
			Name: "Oleh", Day: intPtr(12), Month: intPtr(4), Year: intPtr(2003), Note: strPtr("school friend"),
		}},
		{"no year", models.BirthdayRequest{Name: "Nazar", Day: intPtr(15), Month: intPtr(3)}},
		{"no note", models.BirthdayRequest{Name: "Iryna", Day: intPtr(1), Month: intPtr(1), Year: intPtr(1999)}},
		{"today", models.BirthdayRequest{Name: "Same day", Day: intPtr(15), Month: intPtr(6), Year: intPtr(2025)}},
		{"feb 28", models.BirthdayRequest{Name: "Feb", Day: intPtr(28), Month: intPtr(2), Year: intPtr(2001)}},
		{"dec 31 without year", models.BirthdayRequest{Name: "NYE", Day: intPtr(31), Month: intPtr(12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(tt.req))
		})
	}
}

func TestValidate_RejectsLeapDayRegardlessOfYear(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	years := []*int{nil, intPtr(2024), intPtr(2000), intPtr(1999)}
	for _, year := range years {
		err := v.Validate(models.BirthdayRequest{Name: "Leap", Day: intPtr(29), Month: intPtr(2), Year: year})
		require.Error(t, err)

		var validationErr *domainErrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "date", validationErr.Field)
		assert.Equal(t, "29th of February is not a valid date", validationErr.Message)
	}
}

func TestValidate_RejectsImpossibleDates(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	tests := []struct {
		name       string
		day, month int
	}{
		{"month 13", 1, 13},
		{"month 0", 1, 0},
		{"day 0", 0, 5},
		{"day 32", 32, 1},
		{"april 31", 31, 4},
		{"negative day", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(models.BirthdayRequest{Name: "X", Day: intPtr(tt.day), Month: intPtr(tt.month)})
			require.Error(t, err)

			var validationErr *domainErrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "date", validationErr.Field)
			assert.Equal(t, "Invalid date", validationErr.Message)
		})
	}
}

func TestValidate_RejectsFutureDates(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	tests := []struct {
		name             string
		day, month, year int
	}{
		{"tomorrow", 16, 6, 2025},
		{"next month", 1, 7, 2025},
		{"next year", 1, 1, 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(models.BirthdayRequest{
				Name: "Future", Day: intPtr(tt.day), Month: intPtr(tt.month), Year: intPtr(tt.year),
			})
			require.Error(t, err)

			var validationErr *domainErrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "date", validationErr.Field)
			assert.Equal(t, "Future dates are forbidden", validationErr.Message)
		})
	}
}

func TestValidate_ProbeYearExemptsFutureCheck(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	// The same calendar date is rejected with an explicit current year but
	// accepted when the year is omitted.
	withYear := models.BirthdayRequest{Name: "Later", Day: intPtr(16), Month: intPtr(6), Year: intPtr(2025)}
	require.Error(t, v.Validate(withYear))

	withoutYear := models.BirthdayRequest{Name: "Later", Day: intPtr(16), Month: intPtr(6)}
	assert.NoError(t, v.Validate(withoutYear))
}

func TestValidate_NameAndNoteRules(t *testing.T) {
	v := NewBirthdayValidatorWithClock(fixedClock())

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(models.BirthdayRequest{Name: "", Day: intPtr(1), Month: intPtr(1)})
		var validationErr *domainErrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("name too long", func(t *testing.T) {
		err := v.Validate(models.BirthdayRequest{
			Name: strings.Repeat("a", 256), Day: intPtr(1), Month: intPtr(1),
		})
		var validationErr *domainErrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("note too long", func(t *testing.T) {
		err := v.Validate(models.BirthdayRequest{
			Name: "ok", Day: intPtr(1), Month: intPtr(1), Note: strPtr(strings.Repeat("b", 256)),
		})
		var validationErr *domainErrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "note", validationErr.Field)
	})

	t.Run("missing day", func(t *testing.T) {
		err := v.Validate(models.BirthdayRequest{Name: "ok", Month: intPtr(1)})
		var validationErr *domainErrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "date", validationErr.Field)
	})
}
