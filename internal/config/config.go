// Package config loads and validates environment variables at startup.
// Fail-fast: a missing required variable aborts the process before any
// network work begins.
package config

import (
	"fmt"
	"os"
)

// Config holds runtime configuration shared by the server and the batch job.
type Config struct {
	Port           string // HTTP listen port
	DataDir        string // directory holding snapshot files
	OpenAIKey      string // API key for embeddings and translation
	EmbeddingModel string // embedding model name
	ChatModel      string // chat model used for Thai→English translation
	Keyword        string // listing-site search keyword
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return &Config{
		Port:           getenv("SERVER_PORT", "8080"),
		DataDir:        getenv("DATA_DIR", "data"),
		OpenAIKey:      key,
		EmbeddingModel: getenv("EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:      getenv("CHAT_MODEL", "gpt-4o-mini"),
		Keyword:        getenv("SEARCH_KEYWORD", "Data Engineer"),
	}, nil
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
