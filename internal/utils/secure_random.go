package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// MinSigningSecretBytes is the shortest HS256 secret NewSigningSecret hands out.
const MinSigningSecretBytes = 32

// NewSigningSecret draws size bytes from crypto/rand and returns them
// base64url encoded without padding, ready to use as JWT_SECRET.
func NewSigningSecret(size int) (string, error) {
	if size < MinSigningSecretBytes {
		return "", fmt.Errorf("signing secret needs at least %d bytes, got %d", MinSigningSecretBytes, size)
	}
	secret := make([]byte, size)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("read %d random bytes: %w", size, err)
	}
	return base64.RawURLEncoding.EncodeToString(secret), nil
}
