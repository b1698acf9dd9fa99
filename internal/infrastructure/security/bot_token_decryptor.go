package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/subtle"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/service"
)

// botTokenDecryptor verifies the companion bot's proof: the bot token
// encrypted with RSA-OAEP (SHA-256 for both hash and MGF1) under the
// server's public key.
type botTokenDecryptor struct {
	privateKey   *rsa.PrivateKey
	publicKeyPEM string
	botToken     string
}

// NewBotTokenDecryptor loads the key pair from the PEM files and returns a
// BotTokenVerifier bound to the bot token.
func NewBotTokenDecryptor(privateKeyPEMFile, publicKeyPEMFile, botToken string) (service.BotTokenVerifier, error) {
	if botToken == "" {
		return nil, errors.New("bot token is required")
	}

	privateKeyBytes, err := os.ReadFile(privateKeyPEMFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key PEM file %q: %w", privateKeyPEMFile, err)
	}
	privateKey, err := parsePrivateKeyPEM(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key from PEM: %w", err)
	}

	publicKeyBytes, err := os.ReadFile(publicKeyPEMFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key PEM file %q: %w", publicKeyPEMFile, err)
	}
	// Parsed once at startup so a malformed file fails fast.
	if _, err := parsePublicKeyPEM(publicKeyBytes); err != nil {
		return nil, fmt.Errorf("failed to parse public key from PEM: %w", err)
	}

	return &botTokenDecryptor{
		privateKey:   privateKey,
		publicKeyPEM: string(publicKeyBytes),
		botToken:     botToken,
	}, nil
}

// VerifyEncryptedBotToken decrypts the base64 ciphertext and compares the
// plaintext byte-for-byte with the configured bot token.
func (d *botTokenDecryptor) VerifyEncryptedBotToken(encrypted string) error {
	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return domainErrors.ErrInvalidKeyMaterial
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, d.privateKey, ciphertext, nil)
	if err != nil {
		return domainErrors.ErrInvalidKeyMaterial
	}

	if subtle.ConstantTimeCompare(plaintext, []byte(d.botToken)) != 1 {
		return domainErrors.ErrBotTokenMismatch
	}
	return nil
}

// PublicKeyPEM returns the PEM encoding of the server's public key.
func (d *botTokenDecryptor) PublicKeyPEM() string {
	return d.publicKeyPEM
}

func parsePrivateKeyPEM(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("PEM block does not contain an RSA private key")
	}
	return key, nil
}

func parsePublicKeyPEM(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("PEM block does not contain an RSA public key")
	}
	return key, nil
}

var _ service.BotTokenVerifier = (*botTokenDecryptor)(nil)
