package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GYLR_LLM_PROVIDER", "")
	t.Setenv("GYLR_LLM_MODEL", "")
	t.Setenv("GYLR_TIME_PERIOD", "")
	t.Setenv("GYLR_PERSONALITY", "")
	t.Setenv("GYLR_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.LLMModel)
	assert.Equal(t, "week", cfg.TimePeriod)
	assert.Equal(t, "sarcastic_friend", cfg.Personality)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GYLR_LLM_PROVIDER", "ollama")
	t.Setenv("GYLR_LLM_MODEL", "llama3")
	t.Setenv("GYLR_TIME_PERIOD", "day")
	t.Setenv("GYLR_LOG_LEVEL", "debug")
	t.Setenv("GYLR_DB_PATH", "/tmp/custom.db")

	cfg := Load()

	assert.Equal(t, ProviderOllama, cfg.LLMProvider)
	assert.Equal(t, "llama3", cfg.LLMModel)
	assert.Equal(t, "day", cfg.TimePeriod)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"anthropic with key", Config{LLMProvider: ProviderAnthropic, AnthropicAPIKey: "sk"}, true},
		{"anthropic without key", Config{LLMProvider: ProviderAnthropic}, false},
		{"openai with key", Config{LLMProvider: ProviderOpenAI, OpenAIAPIKey: "sk"}, true},
		{"openai without key", Config{LLMProvider: ProviderOpenAI}, false},
		{"ollama needs no key", Config{LLMProvider: ProviderOllama}, true},
		{"unknown provider", Config{LLMProvider: "mystery"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configured())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "parseLogLevel(%q)", tt.in)
	}
}
