package barcode

import (
	"StockPilot-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		RecordScan(ctx context.Context, scan *entities.BarcodeScan) error
		GetScans(ctx context.Context, userID string, page, limit int) ([]*entities.BarcodeScan, int64, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) RecordScan(ctx context.Context, scan *entities.BarcodeScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetScans(ctx context.Context, userID string, page, limit int) ([]*entities.BarcodeScan, int64, error) {
	var scans []*entities.BarcodeScan
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.BarcodeScan{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&scans).Error; err != nil {
		return nil, 0, err
	}

	return scans, count, nil
}
