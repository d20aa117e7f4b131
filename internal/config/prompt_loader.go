package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles resolves *File prompt overrides into their content
// fields. Inline content wins over a file for the same slot.
func (c *Config) loadPromptsFromFiles() error {
	operations := []struct {
		name    string
		prompts *PromptConfig
	}{
		{"details", &c.AI.Details.Prompts},
		{"narrative", &c.AI.Narrative.Prompts},
		{"insights", &c.AI.Insights.Prompts},
	}

	for _, op := range operations {
		if err := loadPromptSlot(op.name, "system", op.prompts.SystemFile, &op.prompts.System); err != nil {
			return err
		}
		if err := loadPromptSlot(op.name, "user", op.prompts.UserFile, &op.prompts.User); err != nil {
			return err
		}
	}

	return nil
}

// loadPromptSlot loads one prompt file into its target unless inline content
// is already present.
func loadPromptSlot(operation, promptType, filePath string, target *string) error {
	if filePath == "" {
		return nil
	}
	if *target != "" {
		log.Printf("[CONFIG] Inline %s prompt for %s overrides file %s", promptType, operation, filePath)
		return nil
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s %s prompt file %q: %w", operation, promptType, filePath, err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read %s %s prompt file %q: %w", operation, promptType, absPath, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return fmt.Errorf("%s %s prompt file %q is empty", operation, promptType, absPath)
	}

	*target = trimmed
	log.Printf("[CONFIG] Loaded %s %s prompt from %s (%d characters)", operation, promptType, absPath, len(trimmed))
	return nil
}
