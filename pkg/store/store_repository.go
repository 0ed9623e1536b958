package store

import (
	"StockPilot-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	StoreRepository interface {
		CreateStore(ctx context.Context, store *entities.Store) error
		GetStoreByID(ctx context.Context, id string) (*entities.Store, error)
		GetStoresByUserID(ctx context.Context, userID string) ([]*entities.Store, error)
		UpdateStore(ctx context.Context, store *entities.Store) error
		DeleteStore(ctx context.Context, id string) error
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) CreateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetStoreByID(ctx context.Context, id string) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetStoresByUserID(ctx context.Context, userID string) ([]*entities.Store, error) {
	var stores []*entities.Store
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) UpdateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) DeleteStore(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Store{}).Error
}
