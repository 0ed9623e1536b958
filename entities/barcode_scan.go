package entities

import (
	"github.com/google/uuid"
)

type BarcodeScan struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	StoreID         *uuid.UUID `json:"store_id,omitempty"`
	Barcode         string     `json:"barcode"`
	MatchedOPF      bool       `json:"matched_opf"`
	MatchedUPCItem  bool       `json:"matched_upcitemdb"`
	SelectedSource  string     `json:"selected_source,omitempty"`
	ResolvedProduct string     `json:"resolved_product,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
