package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"key": "email"}`, `{"key": "email"}`},
		{"json fence", "```json\n{\"key\": \"email\"}\n```", `{"key": "email"}`},
		{"bare fence", "```\n{\"key\": \"email\"}\n```", `{"key": "email"}`},
		{"surrounding whitespace", "  {\"key\": \"email\"}  ", `{"key": "email"}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestGetModel_FallsBackToLite(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"}}

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
