package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiProvider generates replies through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model, baseURL string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) Generate(ctx context.Context, history []Turn, maxTokens int) (Reply, error) {
	if len(history) == 0 {
		return Reply{}, fmt.Errorf("gemini: no messages to process")
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		if t.Role == RoleAssistant {
			contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleModel))
			continue
		}
		contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleUser))
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return Reply{}, fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return Reply{}, ErrEmptyCompletion
	}

	reply := Reply{Model: g.model}
	if result.ModelVersion != "" {
		reply.Model = result.ModelVersion
	}
	if result.UsageMetadata != nil {
		reply.Text = text
		reply.TokensUsed = capTokens(int(result.UsageMetadata.CandidatesTokenCount), maxTokens)
	} else {
		reply.Text, reply.TokensUsed = truncateWords(text, maxTokens)
	}

	return reply, nil
}
