package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// operationPromptConfigs returns each operation name with its prompt configuration
func (c *Config) operationPromptConfigs() map[string]*PromptConfig {
	return map[string]*PromptConfig{
		"extract":  &c.AI.Extract.CustomPrompts,
		"analyze":  &c.AI.Analyze.CustomPrompts,
		"match":    &c.AI.Match.CustomPrompts,
		"generate": &c.AI.Generate.CustomPrompts,
	}
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	loadedCount := 0

	for operation, prompts := range c.operationPromptConfigs() {
		loaded := GetPromptsForOperation(operation)

		if prompts.SystemPromptFile != "" {
			content, err := c.loadPromptFromFile(prompts.SystemPromptFile, "system", operation)
			if err != nil {
				return err
			}
			loaded.SystemPrompt = content
			loadedCount++
		}

		if prompts.UserPromptFile != "" {
			content, err := c.loadPromptFromFile(prompts.UserPromptFile, "user", operation)
			if err != nil {
				return err
			}
			loaded.UserPrompt = content
			loadedCount++
		}

		setPromptsForOperation(operation, loaded)
	}

	if loadedCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", loadedCount)
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	for operation, prompts := range c.operationPromptConfigs() {
		validateFile(prompts.SystemPromptFile, "system", operation)
		validateFile(prompts.UserPromptFile, "user", operation)
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// promptFilePaths returns all configured prompt file paths, used by the
// prompt watcher to know which files to observe.
func (c *Config) promptFilePaths() []string {
	var paths []string
	for _, prompts := range c.operationPromptConfigs() {
		if prompts.SystemPromptFile != "" {
			paths = append(paths, prompts.SystemPromptFile)
		}
		if prompts.UserPromptFile != "" {
			paths = append(paths, prompts.UserPromptFile)
		}
	}
	return paths
}
