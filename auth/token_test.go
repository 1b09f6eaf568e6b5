package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(42, "user@example.com", false)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestTokenAdminClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(1, "admin@example.com", true)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueToken(1, "user@example.com", false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}
