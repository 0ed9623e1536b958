package chat

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel = "gpt-4o-mini"
	maxTokens    = 500
	temperature  = 0.7
)

type (
	AssistantService interface {
		Chat(ctx context.Context, storeID string, message string, history []domain.ChatMessage) (string, error)
	}

	assistantService struct {
		client            *openai.Client
		model             string
		contextRepository ContextRepository
	}
)

func NewAssistantService(contextRepository ContextRepository) AssistantService {
	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &assistantService{
		client:            openai.NewClient(utils.GetConfig("OPENAI_API_KEY")),
		model:             model,
		contextRepository: contextRepository,
	}
}

func (s *assistantService) Chat(ctx context.Context, storeID string, message string, history []domain.ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyChatMessage
	}

	storeContext, err := s.contextRepository.GetStoreContext(ctx, storeID)
	if err != nil {
		// The assistant still answers, just without store data.
		log.Printf("[Assistant] failed to load context for store %s: %v", storeID, err)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(storeContext)},
	}
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		log.Printf("[Assistant] completion failed for store %s: %v", storeID, err)
		return "", domain.ErrAssistantFailed
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrAssistantFailed
	}

	return resp.Choices[0].Message.Content, nil
}

// buildSystemPrompt embeds a JSON preview of the store data. Previews are
// capped harder than the repository limits so a large catalog cannot blow the
// token budget.
func buildSystemPrompt(sc StoreContext) string {
	products := jsonPreview(sc.Products, 10)
	inventory := jsonPreview(sc.Inventory, 10)
	sales := jsonPreview(sc.RecentSales, 10)

	return fmt.Sprintf(`You are an intelligent inventory management assistant for a retail store.
Your role is to help store managers make informed decisions about inventory, orders, and sales.

CAPABILITIES:
- Analyze inventory levels and identify low-stock items
- Review sales trends and patterns
- Provide reorder recommendations
- Explain why certain products are performing well or poorly

CURRENT STORE DATA SUMMARY:
- Products in catalog: %d
- Inventory rows: %d
- Recent sales records: %d

PRODUCTS (preview):
%s

INVENTORY (preview):
%s

RECENT SALES (preview):
%s

Answer concisely. When the data does not support an answer, say so instead of guessing.`,
		len(sc.Products), len(sc.Inventory), len(sc.RecentSales),
		products, inventory, sales)
}

func jsonPreview[T any](items []T, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(raw)
}
