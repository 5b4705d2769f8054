// Package config loads engine configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ProviderType identifies the LLM backend for roast generation.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config holds all configuration values.
type Config struct {
	// LLM judgment service
	LLMProvider     ProviderType
	LLMModel        string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	OllamaHost      string

	// Google Calendar (token acquisition is out of scope; the token is
	// handed in, typically exported by an external OAuth helper)
	GoogleAccessToken string

	// Local persistence
	DBPath string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Defaults for the analysis views
	TimePeriod  string
	Personality string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LLMProvider:     ProviderType(getEnv("GYLR_LLM_PROVIDER", "anthropic")),
		LLMModel:        getEnv("GYLR_LLM_MODEL", "claude-3-haiku-20240307"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),

		GoogleAccessToken: os.Getenv("GOOGLE_ACCESS_TOKEN"),

		DBPath: getEnv("GYLR_DB_PATH", defaultDBPath()),

		LogFile:  getEnv("GYLR_LOG_FILE", filepath.Join(os.TempDir(), "gylr.log")),
		LogLevel: parseLogLevel(getEnv("GYLR_LOG_LEVEL", "INFO")),

		TimePeriod:  getEnv("GYLR_TIME_PERIOD", "week"),
		Personality: getEnv("GYLR_PERSONALITY", "sarcastic_friend"),
	}
}

// Configured reports whether the selected LLM provider has a usable
// credential. Ollama is local and needs none.
func (c Config) Configured() bool {
	switch c.LLMProvider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderOllama:
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gylr.db"
	}
	return filepath.Join(home, ".gylr", "gylr.db")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
