package sales

import (
	"StockPilot-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	SaleRepository interface {
		RecordSale(ctx context.Context, sale *entities.Sale) error
		GetSales(ctx context.Context, storeID string, page, limit int) ([]*entities.Sale, int64, error)
		GetSalesSince(ctx context.Context, storeID string, since time.Time) ([]*entities.Sale, error)
	}

	saleRepository struct {
		db *gorm.DB
	}
)

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) RecordSale(ctx context.Context, sale *entities.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetSales(ctx context.Context, storeID string, page, limit int) ([]*entities.Sale, int64, error) {
	var sales []*entities.Sale
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)

	if err := query.Model(&entities.Sale{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Product").Offset(offset).Limit(limit).Order("date desc").Find(&sales).Error; err != nil {
		return nil, 0, err
	}

	return sales, count, nil
}

func (r *saleRepository) GetSalesSince(ctx context.Context, storeID string, since time.Time) ([]*entities.Sale, error) {
	var sales []*entities.Sale
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND date >= ?", storeID, since).
		Preload("Product").
		Order("date asc").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
