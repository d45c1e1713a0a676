package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Abc12345!", true},
		{"valid with space as special", "Abc 1234", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "abc12345!", false},
		{"no digit", "Abcdefgh!", false},
		{"no special", "Abc12345", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abc12345!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Abc12345!", hash)

	assert.True(t, CheckPassword("Abc12345!", hash))
	assert.False(t, CheckPassword("Abc12345?", hash))
}

func TestCheckPasswordEmptyHash(t *testing.T) {
	// Unknown account: comparison against the dummy hash must fail but
	// not panic or short-circuit.
	assert.False(t, CheckPassword("Abc12345!", ""))
}
