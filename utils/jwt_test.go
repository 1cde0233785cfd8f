package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.com", "user", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "user", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.com", "user", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.com", "user", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}
