package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"resumeflow/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// PromptWatcher watches configured prompt files and reloads them on
// change so a running server picks up edited prompts without a restart.
type PromptWatcher struct {
	mu sync.Mutex

	cfg           *Config
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer
	stopChan      chan struct{}
	logger        *errors.Logger
	running       bool
}

// NewPromptWatcher creates a watcher over all configured prompt files.
// It returns nil (and no error) when no prompt files are configured.
func NewPromptWatcher(cfg *Config, debounceDelay time.Duration, logger *errors.Logger) (*PromptWatcher, error) {
	if len(cfg.promptFilePaths()) == 0 {
		return nil, nil
	}

	if debounceDelay == 0 {
		debounceDelay = time.Second // Default 1 second debounce
	}

	return &PromptWatcher{
		cfg:           cfg,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		logger:        logger,
	}, nil
}

// Start begins watching prompt files for changes
func (pw *PromptWatcher) Start() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.running {
		return fmt.Errorf("prompt watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	pw.fsWatcher = watcher

	for _, file := range pw.cfg.promptFilePaths() {
		absPath, err := filepath.Abs(file)
		if err != nil {
			continue
		}
		if err := pw.fsWatcher.Add(absPath); err != nil {
			pw.logger.Warn("Failed to watch prompt file", "file", absPath, "error", err)
		}
	}

	pw.running = true
	go pw.watchLoop()

	pw.logger.Info("Prompt file watcher started",
		"files", len(pw.cfg.promptFilePaths()),
		"debounce_delay", pw.debounceDelay)
	return nil
}

// Stop stops the watcher and releases its resources
func (pw *PromptWatcher) Stop() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if !pw.running {
		return
	}

	close(pw.stopChan)
	if pw.fsWatcher != nil {
		if err := pw.fsWatcher.Close(); err != nil {
			pw.logger.LogError(err, "Failed to close prompt file watcher")
		}
	}
	pw.running = false
}

// watchLoop processes file system events until stopped
func (pw *PromptWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-pw.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pw.scheduleReload(event.Name)
			}
		case err, ok := <-pw.fsWatcher.Errors:
			if !ok {
				return
			}
			pw.logger.LogError(err, "Prompt file watcher error")
		case <-pw.stopChan:
			return
		}
	}
}

// scheduleReload debounces rapid sequences of file events into one reload
func (pw *PromptWatcher) scheduleReload(file string) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.debounceTimer != nil {
		pw.debounceTimer.Stop()
	}

	pw.debounceTimer = time.AfterFunc(pw.debounceDelay, func() {
		pw.logger.Info("Reloading prompt files after change", "changed_file", file)
		if err := pw.cfg.loadPromptsFromFiles(); err != nil {
			pw.logger.LogError(err, "Failed to reload prompt files, keeping previous prompts")
		}
	})
}
