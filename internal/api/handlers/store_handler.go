package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/store"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StoreHandler interface {
		CreateStore(c *fiber.Ctx) error
		GetStores(c *fiber.Ctx) error
		GetStoreDetails(c *fiber.Ctx) error
		UpdateStore(c *fiber.Ctx) error
		DeleteStore(c *fiber.Ctx) error
	}

	storeHandler struct {
		storeService store.StoreService
		validator    *validator.Validate
	}
)

func NewStoreHandler(storeService store.StoreService, validator *validator.Validate) StoreHandler {
	return &storeHandler{
		storeService: storeService,
		validator:    validator,
	}
}

// storeErrorStatus maps ownership failures to the right HTTP status so a
// missing store and someone else's store do not look identical.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedStoreAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *storeHandler) CreateStore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateStoreRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	res, err := h.storeService.CreateStore(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStore)
}

func (h *storeHandler) GetStores(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.storeService.GetStores(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStores, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStores)
}

func (h *storeHandler) GetStoreDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("id")

	res, err := h.storeService.GetStoreByID(c.Context(), storeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedGetStores, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStores)
}

func (h *storeHandler) UpdateStore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("id")
	req := new(domain.UpdateStoreRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStore, err)
	}

	if err := h.storeService.UpdateStore(c.Context(), storeID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedUpdateStore, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStore)
}

func (h *storeHandler) DeleteStore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("id")

	if err := h.storeService.DeleteStore(c.Context(), storeID, userID); err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedDeleteStore, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStore)
}
