package models

import "time"

// User is a Telegram account known to the service. Users are created on
// first successful login and never deleted.
type User struct {
	TelegramID string    `json:"telegram_id"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"-"`
}

const DefaultLanguage = "en"
