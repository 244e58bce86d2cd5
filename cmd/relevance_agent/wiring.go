package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/job-relevance/internal/config"
	"github.com/jonathan/job-relevance/internal/db"
	"github.com/jonathan/job-relevance/internal/learning"
)

// loadConfig merges an optional config file with environment defaults.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	defaultStep := learning.DefaultStep
	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		APIKey:              os.Getenv("GEMINI_API_KEY"),
		WeightClamp:         learning.DefaultClamp,
		LearningStep:        &defaultStep,
		FallbackTimeoutSecs: 10,
	})
	return cfg, nil
}

// newEngine builds a learning engine over Postgres when a database URL is
// configured, or over an in-memory store otherwise. The returned cleanup
// closes the pool.
func newEngine(ctx context.Context, cfg config.Config) (*learning.Engine, func(), error) {
	opts := []learning.Option{
		learning.WithClamp(cfg.WeightClamp),
	}
	if cfg.LearningStep != nil {
		opts = append(opts, learning.WithStep(*cfg.LearningStep))
	}

	if cfg.DatabaseURL == "" {
		return learning.NewEngine(learning.NewMemoryStore(), opts...), func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	engine := learning.NewEngine(db.NewLearningStore(database), opts...)
	return engine, database.Close, nil
}
