package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255;not null" json:"description"`
	Image       string `gorm:"size:255" json:"image,omitempty"`
	ItemCount   int    `gorm:"not null;default:0" json:"itemCount"`
	Color       string `gorm:"size:50" json:"color,omitempty"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
