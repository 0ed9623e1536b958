package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/barcode"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	BarcodeHandler interface {
		LookupBarcode(c *fiber.Ctx) error
		GetScanHistory(c *fiber.Ctx) error
	}

	barcodeHandler struct {
		barcodeService barcode.BarcodeService
	}
)

func NewBarcodeHandler(barcodeService barcode.BarcodeService) BarcodeHandler {
	return &barcodeHandler{barcodeService: barcodeService}
}

func (h *barcodeHandler) LookupBarcode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	code := c.Params("code")
	storeID := c.Query("store_id")

	res, err := h.barcodeService.Lookup(c.Context(), userID, storeID, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBarcode) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupBarcode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedLookupBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookupBarcode)
}

func (h *barcodeHandler) GetScanHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	scans, count, err := h.barcodeService.GetScanHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupBarcode, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": scans,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessLookupBarcode)
}
