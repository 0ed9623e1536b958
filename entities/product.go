package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID  uuid.UUID `json:"store_id"`
	Name     string    `json:"name"`
	SKU      string    `json:"sku,omitempty"`
	Barcode  string    `gorm:"index" json:"barcode,omitempty"`
	Brand    string    `json:"brand,omitempty"`
	Category string    `json:"category,omitempty"`
	Price    float64   `json:"price"`
	Cost     float64   `json:"cost,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	Store *Store `gorm:"foreignKey:StoreID"`
	Timestamp
}
