package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/forecast"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	ForecastHandler interface {
		GetForecast(c *fiber.Ctx) error
	}

	forecastHandler struct {
		forecastService forecast.ForecastService
	}
)

func NewForecastHandler(forecastService forecast.ForecastService) ForecastHandler {
	return &forecastHandler{forecastService: forecastService}
}

func (h *forecastHandler) GetForecast(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")

	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 1 || days > 30 {
		days = 7
	}

	res, err := h.forecastService.GetForecast(c.Context(), storeID, days, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughSalesData) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetForecast, err)
		}
		return presenters.ErrorResponse(c, storeErrorStatus(err), domain.MessageFailedGetForecast, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetForecast)
}
