package barcode

import (
	"StockPilot-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type openProductFactsClient struct {
	baseURL string
	client  *http.Client
}

type openProductFactsResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductNameEn   string `json:"product_name_en"`
		ProductName     string `json:"product_name"`
		Brands          string `json:"brands"`
		Categories      string `json:"categories"`
		Manufacturer    string `json:"manufacturing_places"`
		Countries       string `json:"countries"`
		IngredientsText string `json:"ingredients_text"`
		Allergens       string `json:"allergens"`
		NutritionGrades string `json:"nutrition_grades"`
		ImageURL        string `json:"image_url"`
	} `json:"product"`
}

// Lookup returns nil when the product is unknown to OpenProductFacts; a nil
// result is "no match", never an error.
func (c *openProductFactsClient) Lookup(ctx context.Context, code string) (*domain.ProductInfo, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data openProductFactsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	if data.Status != 1 {
		return nil, nil
	}

	p := data.Product
	info := &domain.ProductInfo{
		Source:  domain.SourceOpenProductFacts,
		Barcode: code,
	}

	// English name preferred, generic name as fallback.
	if p.ProductNameEn != "" {
		info.Name = strPtr(p.ProductNameEn)
	} else if p.ProductName != "" {
		info.Name = strPtr(p.ProductName)
	}
	info.Brand = optional(p.Brands)
	info.Category = optional(p.Categories)
	info.Manufacturer = optional(p.Manufacturer)
	info.OriginCountry = optional(p.Countries)
	info.Ingredients = optional(p.IngredientsText)
	info.Allergens = optional(p.Allergens)
	info.NutritionGrade = optional(p.NutritionGrades)
	info.ImageURL = optional(p.ImageURL)

	return info, nil
}

func strPtr(s string) *string {
	return &s
}

// optional maps a missing source field to nil rather than an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
