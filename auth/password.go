package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when login hits an unknown email, so the
// handler does the same bcrypt work whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var ErrWeakPassword = errors.New(
	"password must be at least 8 characters and contain at least one digit, one uppercase letter and one special character",
)

// HashPassword hashes password with bcrypt at the given cost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies password against the stored bcrypt hash. An empty
// hash still burns a bcrypt comparison against a fixed dummy hash.
func CheckPassword(password, hash string) bool {
	if hash == "" {
		hash = dummyHash
		_ = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the registration password policy: length >= 8,
// at least one uppercase letter, one digit, and one non-alphanumeric rune.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	if !upper || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
