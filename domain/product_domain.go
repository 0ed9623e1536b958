package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateProduct      = "product created successfully"
	MessageSuccessUpdateProduct      = "product updated successfully"
	MessageSuccessDeleteProduct      = "product deleted successfully"
	MessageSuccessGetProducts        = "products retrieved successfully"
	MessageSuccessUploadProductImage = "product image uploaded successfully"
	MessageSuccessImportFromBarcode  = "product imported from barcode successfully"

	MessageFailedCreateProduct      = "failed to create product"
	MessageFailedUpdateProduct      = "failed to update product"
	MessageFailedDeleteProduct      = "failed to delete product"
	MessageFailedGetProducts        = "failed to retrieve products"
	MessageFailedUploadProductImage = "failed to upload product image"
	MessageFailedImportFromBarcode  = "failed to import product from barcode"

	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	CreateProductRequest struct {
		Name     string  `json:"name" validate:"required"`
		SKU      string  `json:"sku" validate:"omitempty"`
		Barcode  string  `json:"barcode" validate:"omitempty,barcode"`
		Brand    string  `json:"brand" validate:"omitempty"`
		Category string  `json:"category" validate:"omitempty"`
		Price    float64 `json:"price" validate:"required,gte=0"`
		Cost     float64 `json:"cost" validate:"omitempty,gte=0"`
	}

	UpdateProductRequest struct {
		Name     string  `json:"name" validate:"omitempty"`
		SKU      string  `json:"sku" validate:"omitempty"`
		Barcode  string  `json:"barcode" validate:"omitempty,barcode"`
		Brand    string  `json:"brand" validate:"omitempty"`
		Category string  `json:"category" validate:"omitempty"`
		Price    float64 `json:"price" validate:"omitempty,gte=0"`
		Cost     float64 `json:"cost" validate:"omitempty,gte=0"`
	}

	ImportFromBarcodeRequest struct {
		Barcode string  `json:"barcode" validate:"required,barcode"`
		Price   float64 `json:"price" validate:"omitempty,gte=0"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		ID        string    `json:"id"`
		StoreID   string    `json:"store_id"`
		Name      string    `json:"name"`
		SKU       string    `json:"sku,omitempty"`
		Barcode   string    `json:"barcode,omitempty"`
		Brand     string    `json:"brand,omitempty"`
		Category  string    `json:"category,omitempty"`
		Price     float64   `json:"price"`
		Cost      float64   `json:"cost,omitempty"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
