package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/andrewyazura/birthday-api/internal/domain/service"
)

type telegramVerifier struct {
	botToken string
}

// NewTelegramVerifier creates a TelegramVerifier bound to the bot token.
func NewTelegramVerifier(botToken string) service.TelegramVerifier {
	return &telegramVerifier{botToken: botToken}
}

// VerifyTelegramAuth validates login-widget data against the bot token.
// The algorithm is the one documented by Telegram: HMAC-SHA256 over the
// sorted "key=value" lines of every field except hash, keyed with
// SHA256(bot token). The check fails closed on any missing field.
func (v *telegramVerifier) VerifyTelegramAuth(data service.TelegramAuthData) bool {
	if v.botToken == "" || len(data) == 0 {
		return false
	}

	receivedHash, ok := data["hash"]
	if !ok || receivedHash == "" {
		return false
	}

	pairs := make([]string, 0, len(data)-1)
	for key, value := range data {
		if key == "hash" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secretKey := sha256.Sum256([]byte(v.botToken))
	mac := hmac.New(sha256.New, secretKey[:])
	mac.Write([]byte(dataCheckString))
	calculatedHash := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(calculatedHash), []byte(receivedHash))
}

var _ service.TelegramVerifier = (*telegramVerifier)(nil)
