package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewyazura/birthday-api/internal/domain/service"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signWidgetData computes the hash Telegram would attach to the payload.
func signWidgetData(t *testing.T, data service.TelegramAuthData, botToken string) string {
	t.Helper()

	pairs := make([]string, 0, len(data))
	for key, value := range data {
		if key == "hash" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(pairs)

	secretKey := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secretKey[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func validWidgetData(t *testing.T) service.TelegramAuthData {
	data := service.TelegramAuthData{
		"id":         "123456789",
		"first_name": "Oleh",
		"username":   "oleh_k",
		"photo_url":  "https://t.me/i/userpic/320/oleh_k.jpg",
		"auth_date":  "1716801234",
	}
	data["hash"] = signWidgetData(t, data, testBotToken)
	return data
}

func TestVerifyTelegramAuth_ValidSignature(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)
	assert.True(t, verifier.VerifyTelegramAuth(validWidgetData(t)))
}

func TestVerifyTelegramAuth_MinimalPayload(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)

	data := service.TelegramAuthData{"id": "42", "auth_date": "1716801234"}
	data["hash"] = signWidgetData(t, data, testBotToken)

	assert.True(t, verifier.VerifyTelegramAuth(data))
}

func TestVerifyTelegramAuth_TamperedField(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)

	data := validWidgetData(t)
	data["id"] = "999999999"

	assert.False(t, verifier.VerifyTelegramAuth(data))
}

func TestVerifyTelegramAuth_TamperedHash(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)

	data := validWidgetData(t)
	data["hash"] = strings.Repeat("0", 64)

	assert.False(t, verifier.VerifyTelegramAuth(data))
}

func TestVerifyTelegramAuth_ExtraFieldBreaksSignature(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)

	data := validWidgetData(t)
	data["last_name"] = "Kavetskyi"

	assert.False(t, verifier.VerifyTelegramAuth(data))
}

func TestVerifyTelegramAuth_WrongBotToken(t *testing.T) {
	verifier := NewTelegramVerifier("another:token")
	assert.False(t, verifier.VerifyTelegramAuth(validWidgetData(t)))
}

func TestVerifyTelegramAuth_FailsClosed(t *testing.T) {
	verifier := NewTelegramVerifier(testBotToken)

	t.Run("nil data", func(t *testing.T) {
		assert.False(t, verifier.VerifyTelegramAuth(nil))
	})
	t.Run("missing hash", func(t *testing.T) {
		data := validWidgetData(t)
		delete(data, "hash")
		assert.False(t, verifier.VerifyTelegramAuth(data))
	})
	t.Run("empty hash", func(t *testing.T) {
		data := validWidgetData(t)
		data["hash"] = ""
		assert.False(t, verifier.VerifyTelegramAuth(data))
	})
	t.Run("empty bot token", func(t *testing.T) {
		empty := NewTelegramVerifier("")
		assert.False(t, empty.VerifyTelegramAuth(validWidgetData(t)))
	})
}
