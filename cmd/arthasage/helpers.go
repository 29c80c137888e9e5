package main

import (
	"fmt"
	"log/slog"
	"os/user"

	"github.com/spf13/viper"

	"github.com/arthasage/arthasage/internal/assistant"
	"github.com/arthasage/arthasage/internal/config"
	"github.com/arthasage/arthasage/internal/llm"
	"github.com/arthasage/arthasage/internal/storage"
)

// databasePath resolves the configured database location.
func databasePath() string {
	if path := viper.GetString("database.path"); path != "" {
		return config.ExpandPath(path)
	}
	return config.DefaultDatabasePath()
}

// currentUserID resolves which user the conversation belongs to. A
// configured user_id wins; otherwise the OS username is used.
func currentUserID() (string, error) {
	if id := viper.GetString("user_id"); id != "" {
		return id, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	return u.Username, nil
}

// newTextClient builds the generative text client from config. A missing
// API key is not fatal; the assistant degrades to local rendering.
func newTextClient() llm.Client {
	cfg := llm.Config{
		Provider:          viper.GetString("llm.provider"),
		APIKey:            viper.GetString("llm.api_key"),
		Model:             viper.GetString("llm.model"),
		Temperature:       viper.GetFloat64("llm.temperature"),
		MaxTokens:         viper.GetInt("llm.max_tokens"),
		RequestsPerMinute: viper.GetInt("llm.requests_per_minute"),
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		slog.Warn("text generation disabled", "reason", err)
		return nil
	}
	return client
}

// openAssistant builds the full pipeline over the configured database.
// The caller must Close the returned storage.
func openAssistant() (*assistant.Assistant, *storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(databasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	a, err := assistant.New(store, newTextClient())
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return a, store, nil
}
