package domain

import (
	"errors"
)

const (
	SourceOpenProductFacts = "OpenProductFacts"
	SourceUPCItemDB        = "UPCItemDB"
)

var (
	MessageSuccessLookupBarcode = "barcode lookup completed"
	MessageFailedLookupBarcode  = "failed to look up barcode"

	ErrInvalidBarcode = errors.New("invalid barcode format")
	ErrNoProductMatch = errors.New("no product match found for barcode")
)

type (
	// ProductInfo is the normalized result of a single lookup source.
	// Optional fields are pointers: nil means the source did not report the
	// field, which is not the same as an empty string.
	ProductInfo struct {
		Source         string  `json:"source"`
		Barcode        string  `json:"barcode"`
		Name           *string `json:"name"`
		Brand          *string `json:"brand"`
		Category       *string `json:"category"`
		Manufacturer   *string `json:"manufacturer,omitempty"`
		OriginCountry  *string `json:"origin_country,omitempty"`
		Ingredients    *string `json:"ingredients,omitempty"`
		Allergens      *string `json:"allergens,omitempty"`
		NutritionGrade *string `json:"nutrition_grade,omitempty"`
		ImageURL       *string `json:"image_url,omitempty"`
	}

	// BarcodeResult pairs at most one ProductInfo per known source.
	BarcodeResult struct {
		OpenProductFacts *ProductInfo `json:"open_product_facts"`
		UPCItemDB        *ProductInfo `json:"upc_item_db"`
	}

	LookupBarcodeResponse struct {
		Barcode string        `json:"barcode"`
		Result  BarcodeResult `json:"result"`
		Best    *ProductInfo  `json:"best"`
	}
)
