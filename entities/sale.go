package entities

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID   uuid.UUID `gorm:"index" json:"store_id"`
	ProductID uuid.UUID `gorm:"index" json:"product_id"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
	Date      time.Time `gorm:"index" json:"date"`

	Store   *Store   `gorm:"foreignKey:StoreID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
