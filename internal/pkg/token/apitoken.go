package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewAPIToken generates a 64-character hex API token from 32 random bytes.
func NewAPIToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate API token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
