package sales

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"StockPilot-Backend/pkg/inventory"
	"StockPilot-Backend/pkg/product"
	"StockPilot-Backend/pkg/store"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SaleService interface {
		RecordSale(ctx context.Context, storeID string, req domain.RecordSaleRequest, userID string) (domain.SaleResponse, error)
		GetSales(ctx context.Context, storeID string, page, limit int, userID string) ([]domain.SaleResponse, int64, error)
	}

	saleService struct {
		saleRepository    SaleRepository
		productRepository product.ProductRepository
		inventoryService  inventory.InventoryService
		storeService      store.StoreService
		now               func() time.Time
	}
)

func NewSaleService(
	saleRepository SaleRepository,
	productRepository product.ProductRepository,
	inventoryService inventory.InventoryService,
	storeService store.StoreService,
) SaleService {
	return &saleService{
		saleRepository:    saleRepository,
		productRepository: productRepository,
		inventoryService:  inventoryService,
		storeService:      storeService,
		now:               time.Now,
	}
}

func toSaleResponse(sale *entities.Sale) domain.SaleResponse {
	response := domain.SaleResponse{
		ID:        sale.ID.String(),
		ProductID: sale.ProductID.String(),
		Quantity:  sale.Quantity,
		Revenue:   sale.Revenue,
		Date:      sale.Date,
	}
	if sale.Product != nil {
		response.ProductName = sale.Product.Name
	}
	return response
}

// RecordSale writes the sale row the demand forecast reads and moves the
// matching stock out of inventory in the same call.
func (s *saleService) RecordSale(ctx context.Context, storeID string, req domain.RecordSaleRequest, userID string) (domain.SaleResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.SaleResponse{}, err
	}

	if req.Quantity <= 0 {
		return domain.SaleResponse{}, domain.ErrInvalidSaleQuantity
	}

	soldProduct, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SaleResponse{}, domain.ErrProductNotFound
		}
		return domain.SaleResponse{}, err
	}
	if soldProduct.StoreID.String() != storeID {
		return domain.SaleResponse{}, domain.ErrProductNotFound
	}

	if _, err := s.inventoryService.AdjustInventory(ctx, storeID, domain.AdjustInventoryRequest{
		ProductID: req.ProductID,
		Delta:     -req.Quantity,
		Reason:    domain.AdjustReasonSale,
	}, userID); err != nil {
		return domain.SaleResponse{}, err
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return domain.SaleResponse{}, domain.ErrParseUUID
	}

	revenue := req.Revenue
	if revenue == 0 {
		revenue = soldProduct.Price * float64(req.Quantity)
	}
	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	sale := &entities.Sale{
		ID:        uuid.New(),
		StoreID:   storeUUID,
		ProductID: soldProduct.ID,
		Quantity:  req.Quantity,
		Revenue:   revenue,
		Date:      date,
	}
	if err := s.saleRepository.RecordSale(ctx, sale); err != nil {
		return domain.SaleResponse{}, err
	}

	response := toSaleResponse(sale)
	response.ProductName = soldProduct.Name
	return response, nil
}

func (s *saleService) GetSales(ctx context.Context, storeID string, page, limit int, userID string) ([]domain.SaleResponse, int64, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, 0, err
	}

	sales, count, err := s.saleRepository.GetSales(ctx, storeID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		response = append(response, toSaleResponse(sale))
	}
	return response, count, nil
}
