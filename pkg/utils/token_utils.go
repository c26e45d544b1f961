package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenKeyLength is the length of an opaque token key in hex characters.
const TokenKeyLength = 40

// GenerateTokenKey creates a new opaque token key. Keys carry no claims and
// never expire; they are bound to a user in the auth_tokens table.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, TokenKeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
