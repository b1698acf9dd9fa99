package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/andrewyazura/birthday-api/internal/domain/models"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, telegramID string) (*models.User, bool, error) {
	args := m.Called(ctx, telegramID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) FindByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	args := m.Called(ctx, telegramID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

type MockBirthdayRepository struct {
	mock.Mock
}

func (m *MockBirthdayRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Birthday, error) {
	args := m.Called(ctx, ownerID)
	var birthdays []models.Birthday
	if args.Get(0) != nil {
		birthdays = args.Get(0).([]models.Birthday)
	}
	return birthdays, args.Error(1)
}

func (m *MockBirthdayRepository) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (*models.Birthday, error) {
	args := m.Called(ctx, id, ownerID)
	var birthday *models.Birthday
	if args.Get(0) != nil {
		birthday = args.Get(0).(*models.Birthday)
	}
	return birthday, args.Error(1)
}

func (m *MockBirthdayRepository) Create(ctx context.Context, birthday *models.Birthday) error {
	args := m.Called(ctx, birthday)
	return args.Error(0)
}

func (m *MockBirthdayRepository) Update(ctx context.Context, birthday *models.Birthday) error {
	args := m.Called(ctx, birthday)
	return args.Error(0)
}

func (m *MockBirthdayRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockBirthdayRepository) ListAll(ctx context.Context) ([]models.AdminBirthday, error) {
	args := m.Called(ctx)
	var birthdays []models.AdminBirthday
	if args.Get(0) != nil {
		birthdays = args.Get(0).([]models.AdminBirthday)
	}
	return birthdays, args.Error(1)
}

func (m *MockBirthdayRepository) ListByDayMonth(ctx context.Context, day, month int) ([]models.AdminBirthday, error) {
	args := m.Called(ctx, day, month)
	var birthdays []models.AdminBirthday
	if args.Get(0) != nil {
		birthdays = args.Get(0).([]models.AdminBirthday)
	}
	return birthdays, args.Error(1)
}

type MockTelegramVerifier struct {
	mock.Mock
}

func (m *MockTelegramVerifier) VerifyTelegramAuth(data domainService.TelegramAuthData) bool {
	args := m.Called(data)
	return args.Bool(0)
}

type MockBotTokenVerifier struct {
	mock.Mock
}

func (m *MockBotTokenVerifier) VerifyEncryptedBotToken(encrypted string) error {
	args := m.Called(encrypted)
	return args.Error(0)
}

func (m *MockBotTokenVerifier) PublicKeyPEM() string {
	args := m.Called()
	return args.String(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(telegramID string, isAdmin bool) (string, *domainService.Claims, error) {
	args := m.Called(telegramID, isAdmin)
	var claims *domainService.Claims
	if args.Get(1) != nil {
		claims = args.Get(1).(*domainService.Claims)
	}
	return args.String(0), claims, args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*domainService.Claims, error) {
	args := m.Called(tokenString)
	var claims *domainService.Claims
	if args.Get(0) != nil {
		claims = args.Get(0).(*domainService.Claims)
	}
	return claims, args.Error(1)
}
