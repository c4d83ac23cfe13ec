package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MockModel is reported as the model of every locally generated reply.
const MockModel = "gpt-3.5-turbo-simulated"

const ellipsis = "..."

var leadIns = []string{
	"Basado en la información proporcionada, puedo sugerir lo siguiente...",
	"He analizado tu consulta y creo que la mejor respuesta es...",
	"Interesante pregunta. Desde mi perspectiva, recomendaría...",
	"Considerando todos los factores, mi análisis indica que...",
	"Gracias por tu pregunta. La solución óptima sería...",
}

const (
	automationHint     = "Para la automatización mencionada, podrías utilizar herramientas como Python scripts, cron jobs o servicios como Zapier."
	dataAnalysisHint   = "Para el análisis de datos, recomendaría utilizar pandas para manipulación y matplotlib o seaborn para visualización."
	machineLearnHint   = "Para este problema de machine learning, considera usar algoritmos como regresión, árboles de decisión o redes neuronales dependiendo de la complejidad."
	recommendationHint = "Un sistema de recomendación efectivo podría basarse en filtrado colaborativo o basado en contenido."
	topicTemplate      = "%s es un tema interesante que puede abordarse desde múltiples perspectivas."
)

// Rand picks lead-ins. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MockProvider answers from templates without any network call.
// It is not safe for concurrent use; Responder serializes access to it.
type MockProvider struct {
	rnd Rand
}

func NewMockProvider(rnd Rand) *MockProvider {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockProvider{rnd: rnd}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, history []Turn, maxTokens int) (Reply, error) {
	prompt := lastUserText(history)

	candidate := leadIns[m.rnd.Intn(len(leadIns))] + " " + elaborate(prompt)
	text, tokens := truncateWords(candidate, maxTokens)

	return Reply{
		Text:       text,
		TokensUsed: tokens,
		Model:      MockModel,
	}, nil
}

// elaborate picks the keyword-triggered sentence. First match wins.
func elaborate(prompt string) string {
	p := strings.ToLower(prompt)

	switch {
	case strings.Contains(p, "automatización"):
		return automationHint
	case strings.Contains(p, "análisis") || strings.Contains(p, "datos"):
		return dataAnalysisHint
	case strings.Contains(p, "aprendizaje") || strings.Contains(p, "machine learning"):
		return machineLearnHint
	case strings.Contains(p, "recomendación"):
		return recommendationHint
	default:
		return fmt.Sprintf(topicTemplate, firstWord(prompt))
	}
}

func firstWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// truncateWords keeps text untouched when it fits into max words, otherwise
// returns the first max words joined by single spaces plus an ellipsis.
func truncateWords(text string, max int) (string, int) {
	if max < 0 {
		max = 0
	}

	words := strings.Fields(text)
	if len(words) <= max {
		return text, len(words)
	}

	return strings.Join(words[:max], " ") + ellipsis, max
}

// capTokens clamps a provider-reported count to the requested budget.
func capTokens(n, max int) int {
	if max < 0 {
		max = 0
	}
	if n > max {
		return max
	}
	return n
}

func lastUserText(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}
