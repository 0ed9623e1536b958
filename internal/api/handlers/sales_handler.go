package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/sales"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SalesHandler interface {
		RecordSale(c *fiber.Ctx) error
		GetSales(c *fiber.Ctx) error
	}

	salesHandler struct {
		saleService sales.SaleService
		validator   *validator.Validate
	}
)

func NewSalesHandler(saleService sales.SaleService, validator *validator.Validate) SalesHandler {
	return &salesHandler{
		saleService: saleService,
		validator:   validator,
	}
}

func (h *salesHandler) RecordSale(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	req := new(domain.RecordSaleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordSale, err)
	}

	res, err := h.saleService.RecordSale(c.Context(), storeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedRecordSale, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordSale)
}

func (h *salesHandler) GetSales(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.saleService.GetSales(c.Context(), storeID, page, limit, userID)
	if err != nil {
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedGetSales, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSales)
}
