package ai

import "context"

// Role of the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the conversation. Never mutated after creation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Reply is what a single provider produced for the last user turn.
type Reply struct {
	Text       string
	TokensUsed int
	Model      string
}

// GenerationResult is returned to callers of Responder.Generate.
// History is a copy and is never touched by later calls.
type GenerationResult struct {
	Text       string
	TokensUsed int
	Model      string
	History    []Turn
}

// Provider is a text generation backend. It receives the whole history,
// the last turn being the prompt to answer.
type Provider interface {
	Generate(ctx context.Context, history []Turn, maxTokens int) (Reply, error)
	Name() string
}
