package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightcart/storefront-api/models"
)

var testSecret = []byte("test-secret")

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(testSecret, 42, models.RoleUser, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, string(models.RoleUser), claims.Role)
	assert.NotEmpty(t, claims.ID, "token must carry a jti for revocation")
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, 42, models.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, 42, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenUsable(t *testing.T) {
	valid, err := IssueToken(testSecret, 1, models.RoleUser, time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, 1, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	assert.True(t, TokenUsable(valid))
	assert.False(t, TokenUsable(expired))
	assert.False(t, TokenUsable("garbage"))
	assert.False(t, TokenUsable(""))

	// The gate checks shape and expiry only; a token signed with an
	// unknown key still passes here and is caught by full verification.
	foreign, err := IssueToken([]byte("other-secret"), 1, models.RoleUser, time.Hour)
	require.NoError(t, err)
	assert.True(t, TokenUsable(foreign))
}
