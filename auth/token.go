package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/brightcart/storefront-api/models"
)

// ErrInvalidCredential covers every way a token can fail verification:
// bad signature, wrong signing method, malformed, or expired.
var ErrInvalidCredential = errors.New("invalid or expired credential")

// TokenClaims is the credential payload: user id in Subject, a uuid token
// id in ID for revocation, and the user's role.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user id encoded in the Subject claim.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidCredential
	}
	return uint(id), nil
}

// IssueToken signs a credential for the given user, valid for ttl.
func IssueToken(secret []byte, userID uint, role models.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the claims.
// It does not consult the database; a deleted or demoted user's token
// stays valid until expiry unless its jti has been revoked.
func ParseToken(secret []byte, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.ExpiresAt == nil {
		// Credentials are time-bounded; a token without an expiry was
		// not issued here.
		return nil, ErrInvalidCredential
	}
	return claims, nil
}

// TokenUsable checks syntactic well-formedness and expiry without
// verifying the signature. The page admission gate uses this as a cheap
// pre-check; protected APIs always run full verification.
func TokenUsable(tokenString string) bool {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.After(time.Now())
}
