package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateStore = "store created successfully"
	MessageSuccessUpdateStore = "store updated successfully"
	MessageSuccessDeleteStore = "store deleted successfully"
	MessageSuccessGetStores   = "stores retrieved successfully"

	MessageFailedCreateStore = "failed to create store"
	MessageFailedUpdateStore = "failed to update store"
	MessageFailedDeleteStore = "failed to delete store"
	MessageFailedGetStores   = "failed to retrieve stores"

	ErrStoreNotFound           = errors.New("store not found")
	ErrUnauthorizedStoreAccess = errors.New("unauthorized access to store")
)

type (
	CreateStoreRequest struct {
		Name     string `json:"name" validate:"required"`
		Location string `json:"location" validate:"omitempty"`
		Currency string `json:"currency" validate:"omitempty,len=3"`
	}

	UpdateStoreRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Location string `json:"location" validate:"omitempty"`
		Currency string `json:"currency" validate:"omitempty,len=3"`
	}

	StoreResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Location  string    `json:"location,omitempty"`
		Currency  string    `json:"currency"`
		CreatedAt time.Time `json:"created_at"`
	}
)
