package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePromptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPromptsFromFiles(t *testing.T) {
	t.Run("loads file content into slot", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Details.Prompts.SystemFile = writePromptFile(t, "  You extract contact details.\n")

		require.NoError(t, cfg.loadPromptsFromFiles())
		assert.Equal(t, "You extract contact details.", cfg.AI.Details.Prompts.System)
	})

	t.Run("inline content wins over file", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Narrative.Prompts.User = "inline prompt"
		cfg.AI.Narrative.Prompts.UserFile = "/nonexistent/prompt.txt"

		require.NoError(t, cfg.loadPromptsFromFiles())
		assert.Equal(t, "inline prompt", cfg.AI.Narrative.Prompts.User)
	})

	t.Run("missing file fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Insights.Prompts.UserFile = "/nonexistent/prompt.txt"

		assert.ErrorContains(t, cfg.loadPromptsFromFiles(), "failed to read insights user prompt file")
	})

	t.Run("empty file fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Details.Prompts.UserFile = writePromptFile(t, "   \n")

		assert.ErrorContains(t, cfg.loadPromptsFromFiles(), "is empty")
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.loadPromptsFromFiles())
	})
}

func TestGetOperationConfigFallbacks(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Provider = "gemini"
	cfg.AI.Model = "gemini-2.0-flash"
	cfg.AI.APIKey = "global-key"
	cfg.AI.Timeout = 60
	cfg.AI.MaxRetries = 3
	cfg.AI.Temperature = 0.7
	cfg.AI.UseSystemPrompts = true
	cfg.AI.Details.Model = "gemini-2.0-flash-lite"

	details := cfg.GetDetailsConfig()
	assert.Equal(t, "gemini", details.Provider)
	assert.Equal(t, "gemini-2.0-flash-lite", details.Model)
	assert.Equal(t, "global-key", details.APIKey)
	require.NotNil(t, details.MaxRetries)
	assert.Equal(t, 3, *details.MaxRetries)

	narrative := cfg.GetNarrativeConfig()
	assert.Equal(t, "gemini-2.0-flash", narrative.Model)
	require.NotNil(t, narrative.Temperature)
	assert.InDelta(t, 0.7, float64(*narrative.Temperature), 0.001)
}
