package models

import "time"

// CartLine is one (user, product, variant selection) row of a cart.
//
// SelectedColor and SelectedSize use the empty string as the "no selection"
// sentinel rather than NULL: Postgres unique indexes treat NULLs as distinct,
// which would let duplicate no-variant lines slip past the tuple constraint.
type CartLine struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint   `gorm:"not null;uniqueIndex:idx_cart_line_tuple" json:"userId"`
	ProductID     uint   `gorm:"not null;uniqueIndex:idx_cart_line_tuple" json:"productId"`
	SelectedColor string `gorm:"size:255;not null;default:'';uniqueIndex:idx_cart_line_tuple" json:"selectedColor,omitempty"`
	SelectedSize  string `gorm:"size:255;not null;default:'';uniqueIndex:idx_cart_line_tuple" json:"selectedSize,omitempty"`
	Quantity      int    `gorm:"not null;default:1" json:"quantity"`

	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
