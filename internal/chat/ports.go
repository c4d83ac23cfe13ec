package chat

import (
	"context"

	"github.com/Vovarama1992/automation-ai-backend/internal/ai"
)

const (
	DefaultMaxTokens = 150
	MinMaxTokens     = 10
	MaxMaxTokens     = 500
)

// Generator is the text generation dependency of the chat endpoint.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (ai.GenerationResult, error)
}

type Request struct {
	Content   *string `json:"content"`
	MaxTokens *int    `json:"max_tokens"`
}

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Response struct {
	Response            string `json:"response"`
	TokensUsed          int    `json:"tokens_used"`
	Model               string `json:"model"`
	ConversationContext []Turn `json:"conversation_context"`
}
