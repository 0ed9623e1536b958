package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessChat          = "chat response generated"
	MessageSuccessGetSessions   = "chat sessions retrieved successfully"
	MessageSuccessSaveSession   = "chat session saved"
	MessageSuccessResumeSession = "chat session resumed"
	MessageSuccessDeleteSession = "chat session deleted"

	MessageFailedChat          = "failed to generate chat response"
	MessageFailedGetSessions   = "failed to retrieve chat sessions"
	MessageFailedSaveSession   = "failed to save chat session"
	MessageFailedResumeSession = "failed to resume chat session"
	MessageFailedDeleteSession = "failed to delete chat session"

	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrEmptyChatMessage    = errors.New("chat message cannot be empty")
	ErrAssistantFailed     = errors.New("assistant failed to respond")
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type (
	// ChatMessage is immutable once created; ordering within a session is
	// insertion order.
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=user assistant"`
		Content string `json:"content" validate:"required"`
	}

	// ChatHistory is one saved conversation transcript tied to a store.
	ChatHistory struct {
		ID        string        `json:"id"`
		Title     string        `json:"title"`
		Messages  []ChatMessage `json:"messages"`
		CreatedAt time.Time     `json:"createdAt"`
		UpdatedAt time.Time     `json:"updatedAt"`
	}

	ChatRequest struct {
		Message string        `json:"message" validate:"required,min=1"`
		History []ChatMessage `json:"history" validate:"omitempty,dive"`
	}

	ChatResponse struct {
		Response string `json:"response"`
		StoreID  string `json:"store_id"`
	}

	SaveSessionRequest struct {
		CurrentID string        `json:"current_id" validate:"omitempty,uuid"`
		Messages  []ChatMessage `json:"messages" validate:"omitempty,dive"`
	}

	SaveSessionResponse struct {
		CurrentID string        `json:"current_id"`
		Sessions  []ChatHistory `json:"sessions"`
	}

	ResumeSessionResponse struct {
		CurrentID string        `json:"current_id"`
		Messages  []ChatMessage `json:"messages"`
	}

	SessionSummary struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		MessageCount int    `json:"message_count"`
		Age          string `json:"age"`
	}
)
