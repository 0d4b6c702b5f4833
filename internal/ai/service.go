package ai

import (
	"context"
	"fmt"

	"resumeflow/internal/config"
	"resumeflow/internal/errors"
)

// Service handles AI operations for one operation type
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases provider resources
func (s *Service) Close() error {
	return s.Provider.Close()
}

// Services bundles the per-operation AI services consumed by the
// workflow pipelines. Each operation carries its own model, prompts,
// retry budget and circuit breaker.
type Services struct {
	Extract  *Service
	Analyze  *Service
	Match    *Service
	Generate *Service
}

// NewServices creates the full set of per-operation services
func NewServices(cfg *config.Config, logger *errors.Logger) (*Services, error) {
	extractCfg := cfg.GetExtractConfig()
	extract, err := NewService(&extractCfg, "extract", logger)
	if err != nil {
		return nil, err
	}

	analyzeCfg := cfg.GetAnalyzeConfig()
	analyze, err := NewService(&analyzeCfg, "analyze", logger)
	if err != nil {
		return nil, err
	}

	matchCfg := cfg.GetMatchConfig()
	match, err := NewService(&matchCfg, "match", logger)
	if err != nil {
		return nil, err
	}

	generateCfg := cfg.GetGenerateConfig()
	generate, err := NewService(&generateCfg, "generate", logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Extract:  extract,
		Analyze:  analyze,
		Match:    match,
		Generate: generate,
	}, nil
}

// Close closes every per-operation provider, returning the first error
func (s *Services) Close() error {
	var firstErr error
	for _, svc := range []*Service{s.Extract, s.Analyze, s.Match, s.Generate} {
		if svc == nil {
			continue
		}
		if err := svc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
