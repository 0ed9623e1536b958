package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetInventory    = "inventory retrieved successfully"
	MessageSuccessAdjustInventory = "inventory adjusted successfully"
	MessageSuccessSetReorderPoint = "reorder point updated successfully"
	MessageSuccessLowStockReport  = "low stock report generated"

	MessageFailedGetInventory    = "failed to retrieve inventory"
	MessageFailedAdjustInventory = "failed to adjust inventory"
	MessageFailedSetReorderPoint = "failed to update reorder point"
	MessageFailedLowStockReport  = "failed to generate low stock report"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrNegativeStock         = errors.New("adjustment would make stock negative")
	ErrInvalidReason         = errors.New("invalid adjustment reason")
)

const (
	AdjustReasonSale       = "Sale"
	AdjustReasonRestock    = "Restock"
	AdjustReasonDamage     = "Damage"
	AdjustReasonCorrection = "Correction"
)

type (
	AdjustInventoryRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Delta     int    `json:"delta" validate:"required"`
		Reason    string `json:"reason" validate:"required,oneof=Sale Restock Damage Correction"`
		Note      string `json:"note" validate:"omitempty,max=200"`
	}

	SetReorderPointRequest struct {
		ProductID    string `json:"product_id" validate:"required,uuid"`
		ReorderPoint int    `json:"reorder_point" validate:"gte=0"`
	}

	InventoryItemResponse struct {
		ID           string    `json:"id"`
		ProductID    string    `json:"product_id"`
		ProductName  string    `json:"product_name"`
		Quantity     int       `json:"quantity"`
		ReorderPoint int       `json:"reorder_point"`
		LowStock     bool      `json:"low_stock"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	LowStockReportResponse struct {
		StoreID string                  `json:"store_id"`
		Items   []InventoryItemResponse `json:"items"`
		Mailed  bool                    `json:"mailed"`
	}
)
