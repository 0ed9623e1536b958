package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/billing"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	BillingHandler interface {
		CreateTransaction(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	billingHandler struct {
		billingService billing.BillingService
	}
)

func NewBillingHandler(billingService billing.BillingService) BillingHandler {
	return &billingHandler{billingService: billingService}
}

func (h *billingHandler) CreateTransaction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.billingService.CreateSubscriptionTransaction(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateTransaction, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransaction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTransaction)
}

func (h *billingHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransWebhookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.billingService.HandleWebhook(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedWebhook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
