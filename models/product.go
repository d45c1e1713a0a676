package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ProductColor is one entry of a product's color option set.
type ProductColor struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// StringList stores a JSON array of strings in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// ColorList stores a JSON array of ProductColor in a single column.
type ColorList []ProductColor

func (l ColorList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ColorList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// SpecMap stores a JSON object of specification key/value pairs.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *SpecMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type Product struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"not null;index" json:"categoryId"`
	Category   *Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name          string  `gorm:"size:255;not null" json:"name"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice float64 `gorm:"type:decimal(10,2);not null" json:"originalPrice"`
	Rating        float64 `gorm:"type:decimal(3,1);not null;default:0" json:"rating"`
	ReviewCount   int     `gorm:"not null;default:0" json:"reviewCount"`

	// InStock is a denormalized display cache; stock_quantity is the
	// source of truth and InStock is recomputed on every save.
	InStock       bool `gorm:"not null;default:true" json:"inStock"`
	StockQuantity int  `gorm:"not null;default:0" json:"stockQuantity"`

	Brand          string     `gorm:"size:100;not null" json:"brand"`
	SKU            string     `gorm:"size:50;not null" json:"sku"`
	Images         StringList `gorm:"type:jsonb;not null;default:'[]'" json:"images"`
	Features       StringList `gorm:"type:jsonb;not null;default:'[]'" json:"features"`
	Specifications SpecMap    `gorm:"type:jsonb;not null;default:'{}'" json:"specifications"`
	Colors         ColorList  `gorm:"type:jsonb;not null;default:'[]'" json:"colors"`
	Sizes          StringList `gorm:"type:jsonb;not null;default:'[]'" json:"sizes"`
	Badge          string     `gorm:"size:50" json:"badge,omitempty"`
	BadgeVariant   string     `gorm:"size:50" json:"badgeVariant,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.InStock = p.StockQuantity > 0
	return nil
}

// ColorAvailable reports whether name is in the color set and marked available.
func (p *Product) ColorAvailable(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name && c.Available {
			return true
		}
	}
	return false
}

// HasSize reports whether label is a member of the size set.
func (p *Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}
