package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// DevSecretBytes is the entropy used for signing secrets generated outside production.
const DevSecretBytes = 32

var errNonPositiveLength = errors.New("secret length must be positive")

// RandomSecret returns n random bytes from crypto/rand, hex encoded (2n characters).
func RandomSecret(n int) (string, error) {
	if n <= 0 {
		return "", errNonPositiveLength
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
