package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenKey(t *testing.T) {
	key, err := GenerateTokenKey()
	require.NoError(t, err)

	assert.Len(t, key, TokenKeyLength)
	_, err = hex.DecodeString(key)
	assert.NoError(t, err, "key should be hex-encoded")
}

func TestGenerateTokenKeyIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key, err := GenerateTokenKey()
		require.NoError(t, err)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
