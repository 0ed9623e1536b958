package inventory

import (
	"StockPilot-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		GetItemsByStoreID(ctx context.Context, storeID string) ([]*entities.InventoryItem, error)
		GetItemByStoreAndProduct(ctx context.Context, storeID string, productID string) (*entities.InventoryItem, error)
		CreateItem(ctx context.Context, item *entities.InventoryItem) error
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		RecordAdjustment(ctx context.Context, adjustment *entities.InventoryAdjustment) error
		GetAdjustments(ctx context.Context, itemID string, limit int) ([]*entities.InventoryAdjustment, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetItemsByStoreID(ctx context.Context, storeID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Preload("Product").
		Order("updated_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItemByStoreAndProduct(ctx context.Context, storeID string, productID string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Preload("Product").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) RecordAdjustment(ctx context.Context, adjustment *entities.InventoryAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

func (r *inventoryRepository) GetAdjustments(ctx context.Context, itemID string, limit int) ([]*entities.InventoryAdjustment, error) {
	var adjustments []*entities.InventoryAdjustment
	if err := r.db.WithContext(ctx).
		Where("inventory_item_id = ?", itemID).
		Order("created_at desc").
		Limit(limit).
		Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}
