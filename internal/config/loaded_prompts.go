package config

import (
	"sync"
)

var (
	loadedPrompts   AllLoadedPrompts
	loadedPromptsMu sync.RWMutex
)

// LoadedPrompts holds prompt content loaded from files for one operation
type LoadedPrompts struct {
	SystemPrompt string
	UserPrompt   string
}

// AllLoadedPrompts holds all file-loaded prompts for all operations
type AllLoadedPrompts struct {
	Extract  LoadedPrompts
	Analyze  LoadedPrompts
	Match    LoadedPrompts
	Generate LoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type.
// Reads are guarded because the prompt watcher may reload files while serving.
func GetPromptsForOperation(operationType string) LoadedPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()

	switch operationType {
	case "extract":
		return loadedPrompts.Extract
	case "analyze":
		return loadedPrompts.Analyze
	case "match":
		return loadedPrompts.Match
	case "generate":
		return loadedPrompts.Generate
	default:
		return LoadedPrompts{}
	}
}

// setPromptsForOperation replaces the loaded prompts for an operation type
func setPromptsForOperation(operationType string, prompts LoadedPrompts) {
	loadedPromptsMu.Lock()
	defer loadedPromptsMu.Unlock()

	switch operationType {
	case "extract":
		loadedPrompts.Extract = prompts
	case "analyze":
		loadedPrompts.Analyze = prompts
	case "match":
		loadedPrompts.Match = prompts
	case "generate":
		loadedPrompts.Generate = prompts
	}
}
