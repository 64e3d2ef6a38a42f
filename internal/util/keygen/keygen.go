package keygen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// SecretSize is the number of random bytes in a session signing secret.
const SecretSize = 32

// reader is the entropy source. Replaced in tests.
var reader io.Reader = rand.Reader

// GenerateSecret returns size random bytes, standard base64-encoded.
func GenerateSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// SessionSecret generates a SecretSize-byte secret.
func SessionSecret() (string, error) {
	return GenerateSecret(SecretSize)
}
