package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestNewSigningSecret(t *testing.T) {
	s, err := NewSigningSecret(MinSigningSecretBytes)
	require.NoError(t, err)
	assert.Len(t, s, 2*MinSigningSecretBytes)

	other, err := NewSigningSecret(MinSigningSecretBytes)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	_, err = NewSigningSecret(16)
	assert.Error(t, err)
}
