package domain

import (
	"errors"
)

var (
	MessageSuccessGetForecast = "forecast generated successfully"
	MessageFailedGetForecast  = "failed to generate forecast"

	ErrNotEnoughSalesData = errors.New("not enough sales data to forecast")
)

type (
	ForecastRequest struct {
		Days int `json:"days" validate:"omitempty,min=1,max=30"`
	}

	ProductForecast struct {
		ProductID        string  `json:"product_id"`
		Product          string  `json:"product"`
		Category         string  `json:"category,omitempty"`
		AvgDailyDemand   float64 `json:"avg_daily_demand"`
		DemandStd        float64 `json:"demand_std"`
		TotalForecast    float64 `json:"total_forecast"`
		CurrentStock     int     `json:"current_stock"`
		SafetyStock      int     `json:"safety_stock"`
		ReorderPoint     int     `json:"reorder_point"`
		RecommendedOrder int     `json:"recommended_order"`
	}

	ForecastResponse struct {
		StoreID              string            `json:"store_id"`
		ForecastPeriod       string            `json:"forecast_period"`
		Products             []ProductForecast `json:"products"`
		TotalRevenueForecast float64           `json:"total_revenue_forecast"`
	}
)
