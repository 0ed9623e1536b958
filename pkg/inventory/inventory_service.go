package inventory

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"StockPilot-Backend/internal/utils/mailing"
	"StockPilot-Backend/pkg/store"
	"StockPilot-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		GetInventory(ctx context.Context, storeID string, userID string) ([]domain.InventoryItemResponse, error)
		AdjustInventory(ctx context.Context, storeID string, req domain.AdjustInventoryRequest, userID string) (domain.InventoryItemResponse, error)
		SetReorderPoint(ctx context.Context, storeID string, req domain.SetReorderPointRequest, userID string) error
		LowStockReport(ctx context.Context, storeID string, userID string, mail bool) (domain.LowStockReportResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		storeService        store.StoreService
		userRepository      user.UserRepository
	}
)

func NewInventoryService(
	inventoryRepository InventoryRepository,
	storeService store.StoreService,
	userRepository user.UserRepository,
) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		storeService:        storeService,
		userRepository:      userRepository,
	}
}

func toInventoryItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	response := domain.InventoryItemResponse{
		ID:           item.ID.String(),
		ProductID:    item.ProductID.String(),
		Quantity:     item.Quantity,
		ReorderPoint: item.ReorderPoint,
		LowStock:     item.Quantity <= item.ReorderPoint,
		UpdatedAt:    item.UpdatedAt,
	}
	if item.Product != nil {
		response.ProductName = item.Product.Name
	}
	return response
}

func (s *inventoryService) GetInventory(ctx context.Context, storeID string, userID string) ([]domain.InventoryItemResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	items, err := s.inventoryRepository.GetItemsByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toInventoryItemResponse(item))
	}
	return response, nil
}

func (s *inventoryService) AdjustInventory(ctx context.Context, storeID string, req domain.AdjustInventoryRequest, userID string) (domain.InventoryItemResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	item, err := s.inventoryRepository.GetItemByStoreAndProduct(ctx, storeID, req.ProductID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, err
		}

		storeUUID, parseErr := uuid.Parse(storeID)
		if parseErr != nil {
			return domain.InventoryItemResponse{}, domain.ErrParseUUID
		}
		productUUID, parseErr := uuid.Parse(req.ProductID)
		if parseErr != nil {
			return domain.InventoryItemResponse{}, domain.ErrParseUUID
		}

		item = &entities.InventoryItem{
			ID:        uuid.New(),
			StoreID:   storeUUID,
			ProductID: productUUID,
		}
		if err := s.inventoryRepository.CreateItem(ctx, item); err != nil {
			return domain.InventoryItemResponse{}, err
		}
	}

	if item.Quantity+req.Delta < 0 {
		return domain.InventoryItemResponse{}, domain.ErrNegativeStock
	}

	item.Quantity += req.Delta
	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	adjustment := &entities.InventoryAdjustment{
		ID:              uuid.New(),
		InventoryItemID: item.ID,
		Delta:           req.Delta,
		Reason:          req.Reason,
		Note:            req.Note,
	}
	if err := s.inventoryRepository.RecordAdjustment(ctx, adjustment); err != nil {
		// Stock already moved; the audit row is best effort.
		log.Printf("inventory: failed to record adjustment for item %s: %v", item.ID, err)
	}

	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) SetReorderPoint(ctx context.Context, storeID string, req domain.SetReorderPointRequest, userID string) error {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return err
	}

	item, err := s.inventoryRepository.GetItemByStoreAndProduct(ctx, storeID, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	item.ReorderPoint = req.ReorderPoint
	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) LowStockReport(ctx context.Context, storeID string, userID string, mail bool) (domain.LowStockReportResponse, error) {
	ownedStore, err := s.storeService.VerifyOwnership(ctx, storeID, userID)
	if err != nil {
		return domain.LowStockReportResponse{}, err
	}

	items, err := s.inventoryRepository.GetItemsByStoreID(ctx, storeID)
	if err != nil {
		return domain.LowStockReportResponse{}, err
	}

	report := domain.LowStockReportResponse{StoreID: storeID, Items: []domain.InventoryItemResponse{}}
	for _, item := range items {
		if item.Quantity <= item.ReorderPoint {
			report.Items = append(report.Items, toInventoryItemResponse(item))
		}
	}

	if mail && len(report.Items) > 0 {
		owner, err := s.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			return domain.LowStockReportResponse{}, err
		}

		lines := make([]string, 0, len(report.Items))
		for _, item := range report.Items {
			lines = append(lines, fmt.Sprintf("%s: %d left (reorder at %d)", item.ProductName, item.Quantity, item.ReorderPoint))
		}
		if err := mailing.SendLowStockAlert(owner.Email, ownedStore.Name, lines); err != nil {
			log.Printf("inventory: failed to send low stock alert for store %s: %v", storeID, err)
		} else {
			report.Mailed = true
		}
	}

	return report, nil
}
