package entities

import (
	"github.com/google/uuid"
)

type Store struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Currency string    `json:"currency"`

	User     *User      `gorm:"foreignKey:UserID"`
	Products []*Product `gorm:"foreignKey:StoreID"`
	Timestamp
}
