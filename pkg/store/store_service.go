package store

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StoreService interface {
		CreateStore(ctx context.Context, req domain.CreateStoreRequest, userID string) (domain.StoreResponse, error)
		GetStores(ctx context.Context, userID string) ([]domain.StoreResponse, error)
		GetStoreByID(ctx context.Context, id string, userID string) (domain.StoreResponse, error)
		UpdateStore(ctx context.Context, id string, req domain.UpdateStoreRequest, userID string) error
		DeleteStore(ctx context.Context, id string, userID string) error

		// VerifyOwnership is used by other services before touching
		// store-scoped data.
		VerifyOwnership(ctx context.Context, storeID string, userID string) (*entities.Store, error)
	}

	storeService struct {
		storeRepository StoreRepository
	}
)

func NewStoreService(storeRepository StoreRepository) StoreService {
	return &storeService{storeRepository: storeRepository}
}

func toStoreResponse(store *entities.Store) domain.StoreResponse {
	return domain.StoreResponse{
		ID:        store.ID.String(),
		Name:      store.Name,
		Location:  store.Location,
		Currency:  store.Currency,
		CreatedAt: store.CreatedAt,
	}
}

func (s *storeService) VerifyOwnership(ctx context.Context, storeID string, userID string) (*entities.Store, error) {
	store, err := s.storeRepository.GetStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	if store.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedStoreAccess
	}
	return store, nil
}

func (s *storeService) CreateStore(ctx context.Context, req domain.CreateStoreRequest, userID string) (domain.StoreResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StoreResponse{}, domain.ErrParseUUID
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	store := &entities.Store{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Location: req.Location,
		Currency: currency,
	}
	if err := s.storeRepository.CreateStore(ctx, store); err != nil {
		return domain.StoreResponse{}, err
	}

	return toStoreResponse(store), nil
}

func (s *storeService) GetStores(ctx context.Context, userID string) ([]domain.StoreResponse, error) {
	stores, err := s.storeRepository.GetStoresByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.StoreResponse, 0, len(stores))
	for _, store := range stores {
		response = append(response, toStoreResponse(store))
	}
	return response, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, id string, userID string) (domain.StoreResponse, error) {
	store, err := s.VerifyOwnership(ctx, id, userID)
	if err != nil {
		return domain.StoreResponse{}, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) UpdateStore(ctx context.Context, id string, req domain.UpdateStoreRequest, userID string) error {
	store, err := s.VerifyOwnership(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		store.Name = req.Name
	}
	if req.Location != "" {
		store.Location = req.Location
	}
	if req.Currency != "" {
		store.Currency = req.Currency
	}

	return s.storeRepository.UpdateStore(ctx, store)
}

func (s *storeService) DeleteStore(ctx context.Context, id string, userID string) error {
	if _, err := s.VerifyOwnership(ctx, id, userID); err != nil {
		return err
	}
	return s.storeRepository.DeleteStore(ctx, id)
}
