package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenAIModel = openai.GPT3Dot5Turbo
	openAITemperature  = 0.7
)

// OpenAIProvider talks to the chat completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider builds a client; an empty baseURL keeps the library default.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Generate(ctx context.Context, history []Turn, maxTokens int) (Reply, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, t := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(t.Role),
			Content: t.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		N:           1,
		Temperature: openAITemperature,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Reply{}, ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Reply{}, ErrEmptyCompletion
	}

	model := resp.Model
	if model == "" {
		model = p.model
	}

	return Reply{
		Text:       text,
		TokensUsed: capTokens(resp.Usage.CompletionTokens, maxTokens),
		Model:      model,
	}, nil
}
