package models

import "time"

// RevokedToken denylists a credential's token id until its natural expiry.
// Logout inserts a row; token validation rejects any credential whose jti
// is present. Rows past ExpiresAt are swept by a background pruner.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:36" json:"jti"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
	RevokedAt time.Time `json:"revokedAt"`
}
