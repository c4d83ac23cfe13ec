package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		MaxOutputTokens int `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

// newGeminiServer answers every generateContent call with body and keeps
// the last decoded request in got.
func newGeminiServer(t *testing.T, body string, got *geminiRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGemini(t *testing.T, url string) *GeminiProvider {
	t.Helper()
	g, err := NewGeminiProvider(context.Background(), "test-key", "", url)
	require.NoError(t, err)
	return g
}

func TestGeminiProvider_Generate(t *testing.T) {
	var got geminiRequest
	srv := newGeminiServer(t, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "Hola desde Gemini"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10},
		"modelVersion": "gemini-2.5-flash-lite-001"
	}`, &got)

	reply, err := newTestGemini(t, srv.URL).Generate(context.Background(), []Turn{
		{Role: RoleUser, Content: "hola"},
		{Role: RoleAssistant, Content: "qué tal"},
		{Role: RoleUser, Content: "bien"},
	}, 50)
	require.NoError(t, err)

	assert.Equal(t, "Hola desde Gemini", reply.Text)
	assert.Equal(t, 3, reply.TokensUsed)
	assert.Equal(t, "gemini-2.5-flash-lite-001", reply.Model)

	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "user", got.Contents[2].Role)
	require.Len(t, got.Contents[2].Parts, 1)
	assert.Equal(t, "bien", got.Contents[2].Parts[0].Text)
	assert.Equal(t, 50, got.GenerationConfig.MaxOutputTokens)
}

func TestGeminiProvider_ReportedTokensAreCapped(t *testing.T) {
	srv := newGeminiServer(t, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "respuesta corta"}]}}],
		"usageMetadata": {"candidatesTokenCount": 42}
	}`, nil)

	reply, err := newTestGemini(t, srv.URL).Generate(context.Background(), []Turn{{Role: RoleUser, Content: "hola"}}, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, reply.TokensUsed)
	assert.Equal(t, DefaultGeminiModel, reply.Model)
}

func TestResponder_GeminiWithoutUsageStaysWithinBudget(t *testing.T) {
	srv := newGeminiServer(t, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "uno dos tres cuatro cinco seis siete ocho nueve diez once doce trece catorce quince"}]}}]
	}`, nil)

	r := NewResponder(ResponderConfig{APIKey: "test-key"}, WithRemote(newTestGemini(t, srv.URL)))

	res, err := r.Generate(context.Background(), "hola", 10)
	require.NoError(t, err)

	assert.Equal(t, DefaultGeminiModel, res.Model)
	assert.Equal(t, 10, res.TokensUsed)
	assert.Equal(t, "uno dos tres cuatro cinco seis siete ocho nueve diez...", res.Text)
	assert.Equal(t, res.Text, res.History[1].Content)
}

func TestGeminiProvider_EmptyCandidates(t *testing.T) {
	srv := newGeminiServer(t, `{"candidates": []}`, nil)

	_, err := newTestGemini(t, srv.URL).Generate(context.Background(), []Turn{{Role: RoleUser, Content: "hola"}}, 50)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiProvider_NoHistory(t *testing.T) {
	_, err := newTestGemini(t, "http://127.0.0.1:1").Generate(context.Background(), nil, 50)
	assert.Error(t, err)
}
