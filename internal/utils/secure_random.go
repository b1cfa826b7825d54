package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MinSigningSecretBytes is the smallest HS256 key NewSigningSecret will produce.
const MinSigningSecretBytes = 32

// NewSigningSecret returns a hex-encoded random HS256 key of at least
// MinSigningSecretBytes bytes. It backs JWT_SECRET when none is configured.
func NewSigningSecret(size int) (string, error) {
	if size < MinSigningSecretBytes {
		return "", fmt.Errorf("signing secret must be at least %d bytes, got %d", MinSigningSecretBytes, size)
	}
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("read random key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
