package chat

import (
	"StockPilot-Backend/entities"
	"context"

	"gorm.io/gorm"
)

// Caps keep the assembled prompt below the model's useful context size.
const (
	contextProductLimit   = 50
	contextInventoryLimit = 50
	contextSalesLimit     = 100
)

type (
	// StoreContext is everything the assistant gets to see about a store.
	StoreContext struct {
		Products    []*entities.Product       `json:"products"`
		Inventory   []*entities.InventoryItem `json:"inventory"`
		RecentSales []*entities.Sale          `json:"recent_sales"`
	}

	ContextRepository interface {
		GetStoreContext(ctx context.Context, storeID string) (StoreContext, error)
	}

	contextRepository struct {
		db *gorm.DB
	}
)

func NewContextRepository(db *gorm.DB) ContextRepository {
	return &contextRepository{db: db}
}

func (r *contextRepository) GetStoreContext(ctx context.Context, storeID string) (StoreContext, error) {
	var sc StoreContext

	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Limit(contextProductLimit).
		Find(&sc.Products).Error; err != nil {
		return StoreContext{}, err
	}

	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Preload("Product").
		Limit(contextInventoryLimit).
		Find(&sc.Inventory).Error; err != nil {
		return StoreContext{}, err
	}

	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("date desc").
		Limit(contextSalesLimit).
		Find(&sc.RecentSales).Error; err != nil {
		return StoreContext{}, err
	}

	return sc, nil
}
