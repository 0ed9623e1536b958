package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		AdjustInventory(c *fiber.Ctx) error
		SetReorderPoint(c *fiber.Ctx) error
		LowStockReport(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")

	res, err := h.inventoryService.GetInventory(c.Context(), storeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) AdjustInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	req := new(domain.AdjustInventoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustInventory, err)
	}

	res, err := h.inventoryService.AdjustInventory(c.Context(), storeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedAdjustInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdjustInventory)
}

func (h *inventoryHandler) SetReorderPoint(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	req := new(domain.SetReorderPointRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetReorderPoint, err)
	}

	if err := h.inventoryService.SetReorderPoint(c.Context(), storeID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedSetReorderPoint, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetReorderPoint)
}

func (h *inventoryHandler) LowStockReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	mail := c.QueryBool("mail", false)

	res, err := h.inventoryService.LowStockReport(c.Context(), storeID, userID, mail)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedLowStockReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLowStockReport)
}
