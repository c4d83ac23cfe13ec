package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single remote provider call.
const DefaultTimeout = 30 * time.Second

// ResponderConfig is fixed at construction. Mock mode is forced when UseMock
// is set or APIKey is empty.
type ResponderConfig struct {
	UseMock bool
	APIKey  string
}

type Option func(*Responder)

// WithRand replaces the random source used to pick lead-ins.
func WithRand(rnd Rand) Option {
	return func(r *Responder) { r.rnd = rnd }
}

// WithRemote sets the provider tried before the mock one.
func WithRemote(p Provider) Option {
	return func(r *Responder) { r.remote = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Responder) { r.log = l }
}

func WithTimeout(d time.Duration) Option {
	return func(r *Responder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Responder owns one conversation history and answers prompts with either
// a remote provider or the mock one. A single instance serves all requests.
type Responder struct {
	mu      sync.Mutex
	history []Turn

	mock    *MockProvider
	remote  Provider
	rnd     Rand
	timeout time.Duration
	log     zerolog.Logger
}

func NewResponder(cfg ResponderConfig, opts ...Option) *Responder {
	r := &Responder{
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.mock = NewMockProvider(r.rnd)

	if r.remote != nil && (cfg.UseMock || cfg.APIKey == "") {
		r.log.Info().
			Str("provider", r.remote.Name()).
			Bool("use_mock", cfg.UseMock).
			Msg("remote provider disabled, mock mode forced")
		r.remote = nil
	}

	return r
}

// Generate records the prompt, produces a reply and records it too. The two
// appends and the snapshot happen under one lock, so concurrent callers never
// interleave their turns.
func (r *Responder) Generate(ctx context.Context, prompt string, maxTokens int) (GenerationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, Turn{Role: RoleUser, Content: prompt})

	reply, err := r.reply(ctx, maxTokens)
	if err != nil {
		r.history = r.history[:len(r.history)-1]
		return GenerationResult{}, fmt.Errorf("generate reply: %w", err)
	}

	r.history = append(r.history, Turn{Role: RoleAssistant, Content: reply.Text})
	historyTurns.Set(float64(len(r.history)))

	return GenerationResult{
		Text:       reply.Text,
		TokensUsed: reply.TokensUsed,
		Model:      reply.Model,
		History:    r.snapshot(),
	}, nil
}

// reply must be called with r.mu held. The lock does not watch ctx, so a
// caller that gave up while queued still gets its turns recorded, but it is
// answered by the mock without a remote call.
func (r *Responder) reply(ctx context.Context, maxTokens int) (Reply, error) {
	if r.remote != nil && ctx.Err() != nil {
		r.log.Debug().
			Err(ctx.Err()).
			Str("provider", r.remote.Name()).
			Msg("request done before remote call, answering with mock")
	} else if r.remote != nil {
		reply, err := r.callRemote(ctx, maxTokens)
		if err == nil {
			return reply, nil
		}

		r.log.Warn().
			Err(err).
			Str("provider", r.remote.Name()).
			Msg("remote generation failed, answering with mock")
		recordFallback(r.remote.Name())
	}

	start := time.Now()
	reply, err := r.mock.Generate(ctx, r.history, maxTokens)
	if err != nil {
		return Reply{}, err
	}
	recordGeneration(r.mock.Name(), reply.TokensUsed, time.Since(start).Seconds())

	return reply, nil
}

func (r *Responder) callRemote(ctx context.Context, maxTokens int) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	reply, err := r.remote.Generate(ctx, r.snapshot(), maxTokens)
	if err != nil {
		return Reply{}, err
	}
	recordGeneration(r.remote.Name(), reply.TokensUsed, time.Since(start).Seconds())

	return reply, nil
}

// History returns a copy of the turns recorded so far.
func (r *Responder) History() []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Mode reports "mock" or the name of the active remote provider.
func (r *Responder) Mode() string {
	if r.remote == nil {
		return r.mock.Name()
	}
	return r.remote.Name()
}

func (r *Responder) snapshot() []Turn {
	out := make([]Turn, len(r.history))
	copy(out, r.history)
	return out
}
