package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Vovarama1992/automation-ai-backend/internal/ai"
	"github.com/Vovarama1992/automation-ai-backend/internal/httpjson"
)

type Handler struct {
	gen Generator
}

func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

// HandleChat forwards the prompt to the generator and returns its reply
// together with the conversation so far.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	maxTokens, err := req.validate()
	if err != nil {
		httpjson.Error(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := h.gen.Generate(r.Context(), *req.Content, maxTokens)
	if err != nil {
		httpjson.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int("max_tokens", maxTokens).
		Int("tokens_used", res.TokensUsed).
		Str("model", res.Model).
		Msg("chat reply")

	httpjson.Write(w, r, http.StatusOK, toResponse(res))
}

func (req Request) validate() (int, error) {
	if req.Content == nil || *req.Content == "" {
		return 0, fmt.Errorf("content must be a non-empty string")
	}

	if req.MaxTokens == nil {
		return DefaultMaxTokens, nil
	}
	n := *req.MaxTokens
	if n < MinMaxTokens || n > MaxMaxTokens {
		return 0, fmt.Errorf("max_tokens must be between %d and %d, got %d", MinMaxTokens, MaxMaxTokens, n)
	}
	return n, nil
}

func toResponse(res ai.GenerationResult) Response {
	turns := make([]Turn, 0, len(res.History))
	for _, t := range res.History {
		turns = append(turns, Turn{Role: string(t.Role), Content: t.Content})
	}

	return Response{
		Response:            res.Text,
		TokensUsed:          res.TokensUsed,
		Model:               res.Model,
		ConversationContext: turns,
	}
}
