package forecast

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"StockPilot-Backend/pkg/inventory"
	"StockPilot-Backend/pkg/sales"
	"StockPilot-Backend/pkg/store"
	"context"
	"fmt"
	"math"
	"time"
)

const (
	// historyWindowDays is how far back sales are sampled for the moving average.
	historyWindowDays = 30

	// serviceLevelZ is the z-score for a 0.95 service level.
	serviceLevelZ = 1.65

	// leadTimeDays is the assumed supplier lead time.
	leadTimeDays = 7

	defaultForecastDays = 7
)

type (
	ForecastService interface {
		GetForecast(ctx context.Context, storeID string, days int, userID string) (domain.ForecastResponse, error)
	}

	forecastService struct {
		salesRepository     sales.SaleRepository
		inventoryRepository inventory.InventoryRepository
		storeService        store.StoreService
		now                 func() time.Time
	}
)

func NewForecastService(
	salesRepository sales.SaleRepository,
	inventoryRepository inventory.InventoryRepository,
	storeService store.StoreService,
) ForecastService {
	return &forecastService{
		salesRepository:     salesRepository,
		inventoryRepository: inventoryRepository,
		storeService:        storeService,
		now:                 time.Now,
	}
}

type demandSeries struct {
	productName string
	category    string
	price       float64
	daily       map[string]int // yyyy-mm-dd -> units sold
}

// DailyDemandStats returns the mean and population standard deviation of daily
// demand over windowDays, counting days with no sales as zero.
func DailyDemandStats(daily map[string]int, windowDays int) (mean float64, std float64) {
	if windowDays <= 0 {
		return 0, 0
	}

	var total int
	for _, qty := range daily {
		total += qty
	}
	mean = float64(total) / float64(windowDays)

	var sumSq float64
	for _, qty := range daily {
		diff := float64(qty) - mean
		sumSq += diff * diff
	}
	// Zero-sale days each contribute mean².
	sumSq += float64(windowDays-len(daily)) * mean * mean
	std = math.Sqrt(sumSq / float64(windowDays))
	return mean, std
}

// SafetyStock is z·σ·√lead rounded up.
func SafetyStock(demandStd float64, leadDays int) int {
	return int(math.Ceil(serviceLevelZ * demandStd * math.Sqrt(float64(leadDays))))
}

// ReorderPoint is expected lead-time demand plus safety stock.
func ReorderPoint(avgDailyDemand float64, leadDays int, safetyStock int) int {
	return int(math.Ceil(avgDailyDemand*float64(leadDays))) + safetyStock
}

func (s *forecastService) GetForecast(ctx context.Context, storeID string, days int, userID string) (domain.ForecastResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.ForecastResponse{}, err
	}

	if days <= 0 {
		days = defaultForecastDays
	}

	since := s.now().AddDate(0, 0, -historyWindowDays)
	sales, err := s.salesRepository.GetSalesSince(ctx, storeID, since)
	if err != nil {
		return domain.ForecastResponse{}, err
	}
	if len(sales) == 0 {
		return domain.ForecastResponse{}, domain.ErrNotEnoughSalesData
	}

	items, err := s.inventoryRepository.GetItemsByStoreID(ctx, storeID)
	if err != nil {
		return domain.ForecastResponse{}, err
	}
	stockByProduct := make(map[string]int, len(items))
	for _, item := range items {
		stockByProduct[item.ProductID.String()] = item.Quantity
	}

	series := groupSalesByProduct(sales)

	response := domain.ForecastResponse{
		StoreID:        storeID,
		ForecastPeriod: fmt.Sprintf("%d days", days),
		Products:       make([]domain.ProductForecast, 0, len(series)),
	}

	for productID, sr := range series {
		avg, std := DailyDemandStats(sr.daily, historyWindowDays)
		safety := SafetyStock(std, leadTimeDays)
		reorder := ReorderPoint(avg, leadTimeDays, safety)
		totalForecast := avg * float64(days)
		currentStock := stockByProduct[productID]

		recommended := int(math.Ceil(totalForecast)) + safety - currentStock
		if recommended < 0 {
			recommended = 0
		}

		response.Products = append(response.Products, domain.ProductForecast{
			ProductID:        productID,
			Product:          sr.productName,
			Category:         sr.category,
			AvgDailyDemand:   avg,
			DemandStd:        std,
			TotalForecast:    totalForecast,
			CurrentStock:     currentStock,
			SafetyStock:      safety,
			ReorderPoint:     reorder,
			RecommendedOrder: recommended,
		})
		response.TotalRevenueForecast += totalForecast * sr.price
	}

	return response, nil
}

func groupSalesByProduct(sales []*entities.Sale) map[string]*demandSeries {
	series := make(map[string]*demandSeries)
	for _, sale := range sales {
		productID := sale.ProductID.String()
		sr, ok := series[productID]
		if !ok {
			sr = &demandSeries{daily: make(map[string]int)}
			if sale.Product != nil {
				sr.productName = sale.Product.Name
				sr.category = sale.Product.Category
				sr.price = sale.Product.Price
			}
			series[productID] = sr
		}
		sr.daily[sale.Date.Format("2006-01-02")] += sale.Quantity
	}
	return series
}
