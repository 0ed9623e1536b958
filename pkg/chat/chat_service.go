package chat

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/pkg/store"
	"context"
	"time"
)

type (
	ChatService interface {
		Chat(ctx context.Context, storeID string, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
		GetSessions(ctx context.Context, storeID string, userID string) ([]domain.SessionSummary, error)
		SaveSession(ctx context.Context, storeID string, req domain.SaveSessionRequest, userID string) (domain.SaveSessionResponse, error)
		ResumeSession(ctx context.Context, storeID string, sessionID string, userID string) (domain.ResumeSessionResponse, error)
		DeleteSession(ctx context.Context, storeID string, sessionID string, currentID string, userID string) (domain.SaveSessionResponse, error)
	}

	chatService struct {
		sessions     *SessionStore
		assistant    AssistantService
		storeService store.StoreService
		now          func() time.Time
	}
)

func NewChatService(sessions *SessionStore, assistant AssistantService, storeService store.StoreService) ChatService {
	return &chatService{
		sessions:     sessions,
		assistant:    assistant,
		storeService: storeService,
		now:          time.Now,
	}
}

func (s *chatService) Chat(ctx context.Context, storeID string, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.ChatResponse{}, err
	}

	answer, err := s.assistant.Chat(ctx, storeID, req.Message, req.History)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{Response: answer, StoreID: storeID}, nil
}

func (s *chatService) GetSessions(ctx context.Context, storeID string, userID string) ([]domain.SessionSummary, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	sessions := s.sessions.Load(storeID)
	now := s.now()

	summaries := make([]domain.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, domain.SessionSummary{
			ID:           session.ID,
			Title:        session.Title,
			MessageCount: len(session.Messages),
			Age:          RelativeAge(session.UpdatedAt, now),
		})
	}
	return summaries, nil
}

func (s *chatService) SaveSession(ctx context.Context, storeID string, req domain.SaveSessionRequest, userID string) (domain.SaveSessionResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.SaveSessionResponse{}, err
	}

	currentID, sessions, err := s.sessions.Save(storeID, req.Messages, req.CurrentID)
	if err != nil {
		return domain.SaveSessionResponse{}, err
	}
	return domain.SaveSessionResponse{CurrentID: currentID, Sessions: sessions}, nil
}

func (s *chatService) ResumeSession(ctx context.Context, storeID string, sessionID string, userID string) (domain.ResumeSessionResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.ResumeSessionResponse{}, err
	}

	messages, err := s.sessions.Resume(storeID, sessionID)
	if err != nil {
		return domain.ResumeSessionResponse{}, err
	}
	return domain.ResumeSessionResponse{CurrentID: sessionID, Messages: messages}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, storeID string, sessionID string, currentID string, userID string) (domain.SaveSessionResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.SaveSessionResponse{}, err
	}

	newCurrentID, sessions, err := s.sessions.Delete(storeID, sessionID, currentID)
	if err != nil {
		return domain.SaveSessionResponse{}, err
	}
	return domain.SaveSessionResponse{CurrentID: newCurrentID, Sessions: sessions}, nil
}
