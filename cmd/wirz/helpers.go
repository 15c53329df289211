package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/wirz-id/wirz/internal/catalog"
	"github.com/wirz-id/wirz/internal/config"
	"github.com/wirz-id/wirz/internal/engine"
	"github.com/wirz-id/wirz/internal/extract"
	"github.com/wirz-id/wirz/internal/llm"
	"github.com/wirz-id/wirz/internal/storage"
)

// buildEngine wires the determination engine: the seed catalog, the
// deterministic extractor, and the AI-assisted fallback when an API key is
// configured.
func buildEngine() (*engine.Engine, error) {
	extractor, err := buildExtractor()
	if err != nil {
		return nil, err
	}
	return engine.New(catalog.Default(), extractor), nil
}

func buildExtractor() (extract.Extractor, error) {
	primary := extract.NewRuleBased()

	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		return primary, nil
	}

	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini"
	}

	client, err := llm.NewClient(llm.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    viper.GetString("llm.model"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	timeout := viper.GetDuration("llm.timeout")
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	slog.Info("AI-assisted extraction fallback enabled", "provider", provider)
	return extract.WithFallback(primary, client, timeout), nil
}

// openStorage opens the interaction log. The log is optional: a failure to
// open it is reported but never blocks a determination.
func openStorage() *storage.SQLiteStorage {
	dbPath := config.ExpandPath(viper.GetString("storage.path"))
	if dbPath == "" {
		var err error
		dbPath, err = config.DefaultDataPath()
		if err != nil {
			slog.Warn("interaction log disabled", "error", err)
			return nil
		}
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		slog.Warn("interaction log disabled", "error", err, "path", dbPath)
		return nil
	}
	return store
}
