package handlers

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/api/presenters"
	"StockPilot-Backend/pkg/chat"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
		GetSessions(c *fiber.Ctx) error
		SaveSession(c *fiber.Ctx) error
		ResumeSession(c *fiber.Ctx) error
		DeleteSession(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrChatSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAssistantFailed):
		return fiber.StatusBadGateway
	default:
		return storeErrorStatus(err)
	}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.chatService.Chat(c.Context(), storeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *chatHandler) GetSessions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")

	res, err := h.chatService.GetSessions(c.Context(), storeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedGetSessions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSessions)
}

func (h *chatHandler) SaveSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	req := new(domain.SaveSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSession, err)
	}

	res, err := h.chatService.SaveSession(c.Context(), storeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedSaveSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveSession)
}

func (h *chatHandler) ResumeSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	sessionID := c.Params("sessionId")

	res, err := h.chatService.ResumeSession(c.Context(), storeID, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedResumeSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResumeSession)
}

func (h *chatHandler) DeleteSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storeID := c.Params("storeId")
	sessionID := c.Params("sessionId")
	currentID := c.Query("current_id")

	res, err := h.chatService.DeleteSession(c.Context(), storeID, sessionID, currentID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedDeleteSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteSession)
}
