package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a single image or video reference. The cover media is stored as
// embedded columns on the product row; the gallery is stored as JSONB.
type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

type MediaList []Media

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(MediaList{})
	}
	return json.Marshal(m)
}

func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported column type for MediaList")
	}
}

type Product struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"not null" json:"name"`
	Description   string      `json:"description"`
	Price         float64     `gorm:"not null" json:"price"`
	OriginalPrice float64     `json:"originalPrice,omitempty"`
	Category      string      `gorm:"index" json:"category"`
	Image         string      `json:"image"`
	CoverMedia    Media       `gorm:"embedded;embeddedPrefix:cover_" json:"coverMedia"`
	Gallery       MediaList   `gorm:"type:jsonb" json:"gallery"`
	Variations    []Variation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations"`
	IsFeatured    bool        `json:"isFeatured"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Variation is a priced/stocked sub-option of a product (size, color, ...).
// Variations live and die with their product.
type Variation struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	ProductID     string  `gorm:"index" json:"-"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Stock         int     `json:"stock"`
}

// EffectivePrice returns the variation price when a variation is selected,
// otherwise the product's base price.
func (p Product) EffectivePrice(v *Variation) float64 {
	if v != nil {
		return v.Price
	}
	return p.Price
}
