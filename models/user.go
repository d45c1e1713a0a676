package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string   `gorm:"not null" json:"firstName"`
	LastName  string   `json:"lastName,omitempty"`
	Username  string   `gorm:"uniqueIndex;not null" json:"username"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Address   string   `json:"address,omitempty"`
	Role      UserRole `gorm:"type:varchar(10);not null;default:USER" json:"role"`

	CartLines []CartLine `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
