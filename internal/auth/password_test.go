package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("s3cret")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret")
	require.NoError(t, err)

	// per-hash salt: same input, different outputs, both verifiable
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "s3cret", h1)
	require.NoError(t, VerifyPassword("s3cret", h1))
	require.NoError(t, VerifyPassword("s3cret", h2))
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	h, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.Error(t, VerifyPassword("not-s3cret", h))
	assert.Error(t, VerifyPassword("", h))
}

func TestHashPasswordCost(t *testing.T) {
	h, err := HashPassword("s3cret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, HashCost, cost)
}
