package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nileshvk/adhikar/internal/adapters/gateway/gemini"
	"github.com/nileshvk/adhikar/internal/adapters/store/kv"
	"github.com/nileshvk/adhikar/internal/application"
	"github.com/nileshvk/adhikar/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	store    *kv.Store
	feedback *application.FeedbackService
	clock    ports.Clock
	logger   *log.Logger

	// newGateway is deferred so commands that never talk to the model
	// work without an API key.
	newGateway func(ctx context.Context) (ports.Gateway, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()

	store, err := kv.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	cfg.SetDefault("gemini.model", gemini.DefaultModel)

	logger := log.New(io.Discard, "", 0)
	if os.Getenv("ADHIKAR_DEBUG") != "" {
		logger = log.New(os.Stderr, "adhikar: ", log.LstdFlags)
	}

	return &app{
		store:    store,
		feedback: application.NewFeedbackService(store, logger),
		clock:    ports.SystemClock{},
		logger:   logger,
		newGateway: func(ctx context.Context) (ports.Gateway, error) {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return nil, errors.New("GEMINI_API_KEY is not set")
			}

			return gemini.New(ctx, gemini.Config{
				APIKey: apiKey,
				Model:  envOrDefault("ADHIKAR_MODEL", cfg.GetString("gemini.model")),
			})
		},
	}, nil
}

func (a *app) sessionManager(gateway ports.Gateway) *application.SessionManager {
	return application.NewSessionManager(a.store, gateway, a.clock, nil, a.logger)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
