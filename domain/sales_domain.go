package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRecordSale = "sale recorded successfully"
	MessageSuccessGetSales   = "sales retrieved successfully"

	MessageFailedRecordSale = "failed to record sale"
	MessageFailedGetSales   = "failed to retrieve sales"

	ErrInvalidSaleQuantity = errors.New("sale quantity must be positive")
)

type (
	RecordSaleRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`

		// Revenue defaults to quantity times the product's list price.
		Revenue float64 `json:"revenue" validate:"omitempty,gte=0"`

		// Date defaults to the time of recording.
		Date time.Time `json:"date" validate:"omitempty"`
	}

	SaleResponse struct {
		ID          string    `json:"id"`
		ProductID   string    `json:"product_id"`
		ProductName string    `json:"product_name,omitempty"`
		Quantity    int       `json:"quantity"`
		Revenue     float64   `json:"revenue"`
		Date        time.Time `json:"date"`
	}
)
