package entities

import (
	"github.com/google/uuid"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID      uuid.UUID `gorm:"index:idx_inventory_store_product,unique" json:"store_id"`
	ProductID    uuid.UUID `gorm:"index:idx_inventory_store_product,unique" json:"product_id"`
	Quantity     int       `json:"quantity"`
	ReorderPoint int       `json:"reorder_point"`

	Store   *Store   `gorm:"foreignKey:StoreID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

type InventoryAdjustment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	Delta           int       `json:"delta"`
	Reason          string    `json:"reason"` // Sale, Restock, Damage, Correction
	Note            string    `json:"note,omitempty"`

	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
	Timestamp
}
