package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_generations_total",
			Help: "Total number of replies produced, by provider",
		},
		[]string{"provider"},
	)

	providerFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_provider_fallbacks_total",
			Help: "Remote provider failures answered by the mock provider",
		},
		[]string{"provider"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_generation_duration_seconds",
			Help:    "Duration of provider calls in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"provider"},
	)

	tokensUsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_tokens_used_total",
			Help: "Sum of tokens reported for produced replies",
		},
		[]string{"provider"},
	)

	historyTurns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ai_history_turns",
			Help: "Number of turns currently held in the conversation history",
		},
	)
)

func recordGeneration(provider string, tokens int, seconds float64) {
	generationsTotal.WithLabelValues(provider).Inc()
	tokensUsedTotal.WithLabelValues(provider).Add(float64(tokens))
	generationDuration.WithLabelValues(provider).Observe(seconds)
}

func recordFallback(provider string) {
	providerFallbacksTotal.WithLabelValues(provider).Inc()
}
