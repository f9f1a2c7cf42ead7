package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "secret", time.Hour)
	require.NoError(t, err)

	adminID, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 42, adminID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestExtractBearer(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractBearer("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", ExtractBearer("bearer abc.def.ghi"))
	assert.Empty(t, ExtractBearer("abc.def.ghi"))
	assert.Empty(t, ExtractBearer(""))
	assert.Empty(t, ExtractBearer("Basic dXNlcjpwYXNz"))
}
