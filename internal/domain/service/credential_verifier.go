package service

// TelegramAuthData is the raw key/value mapping received from the Telegram
// login widget, including the "hash" field.
type TelegramAuthData map[string]string

// TelegramVerifier checks the authenticity of login-widget data.
// Implementations must fail closed: any missing field or internal failure
// yields false, never a panic.
type TelegramVerifier interface {
	// VerifyTelegramAuth reports whether data carries a valid signature
	// for the configured bot token.
	VerifyTelegramAuth(data TelegramAuthData) bool
}

// BotTokenVerifier checks the companion bot's identity proof: a ciphertext
// of the bot token encrypted under the server's public key.
type BotTokenVerifier interface {
	// VerifyEncryptedBotToken decrypts the base64 ciphertext and compares
	// the plaintext with the configured bot token. It returns
	// ErrInvalidKeyMaterial when the ciphertext cannot be decrypted and
	// ErrBotTokenMismatch when the plaintext differs.
	VerifyEncryptedBotToken(encrypted string) error

	// PublicKeyPEM returns the PEM encoding of the server's public key,
	// for clients that need to encrypt the bot token.
	PublicKeyPEM() string
}
