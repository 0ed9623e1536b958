package barcode

import (
	"StockPilot-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type upcItemDBClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type upcItemDBResponse struct {
	Items []struct {
		Title       string   `json:"title"`
		Brand       string   `json:"brand"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Images      []string `json:"images"`
	} `json:"items"`
}

// Lookup returns nil when UPCItemDB has no item for the code.
func (c *upcItemDBClient) Lookup(ctx context.Context, code string) (*domain.ProductInfo, error) {
	endpoint := fmt.Sprintf("%s/prod/trial/lookup?upc=%s", c.baseURL, url.QueryEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("user_key", c.apiKey)
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

	var data upcItemDBResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	if len(data.Items) == 0 {
		return nil, nil
	}

	item := data.Items[0]
	info := &domain.ProductInfo{
		Source:  domain.SourceUPCItemDB,
		Barcode: code,
	}
	info.Name = optional(item.Title)
	info.Brand = optional(item.Brand)
	info.Category = optional(item.Category)
	if len(item.Images) > 0 && item.Images[0] != "" {
		info.ImageURL = optional(item.Images[0])
	}

	return info, nil
}
