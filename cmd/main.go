package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vovarama1992/automation-ai-backend/internal/ai"
	"github.com/Vovarama1992/automation-ai-backend/internal/automation"
	"github.com/Vovarama1992/automation-ai-backend/internal/config"
	"github.com/Vovarama1992/automation-ai-backend/internal/logging"
	"github.com/Vovarama1992/automation-ai-backend/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- AI ---
	opts := []ai.Option{
		ai.WithLogger(log.With().Str("component", "ai").Logger()),
		ai.WithTimeout(cfg.AITimeout),
	}
	if !cfg.MockMode() {
		remote, err := ai.NewRemoteProvider(ctx, ai.RemoteConfig{
			Provider: cfg.AIProvider,
			APIKey:   cfg.APIKey(),
			Model:    cfg.Model(),
			BaseURL:  cfg.BaseURL(),
		})
		if err != nil {
			log.Warn().Err(err).Str("provider", cfg.AIProvider).Msg("remote provider unavailable, using mock")
		} else {
			opts = append(opts, ai.WithRemote(remote))
		}
	}

	responder := ai.NewResponder(ai.ResponderConfig{
		UseMock: cfg.AIUseMock,
		APIKey:  cfg.APIKey(),
	}, opts...)

	log.Info().
		Str("ai_mode", responder.Mode()).
		Str("model", cfg.Model()).
		Msg("responder ready")

	// --- Router ---
	r := server.NewRouter(server.Deps{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins(),
		Responder:      responder,
		Automation:     automation.NewService(),
	})

	return server.Run(ctx, cfg.Addr(), r, cfg.ShutdownTimeout, log)
}
