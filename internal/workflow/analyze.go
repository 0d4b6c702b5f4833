package workflow

import (
	"context"
	"strings"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
)

// JobAnalyzer turns raw job posting text into a structured
// JobDescription with categorized, weighted requirements.
type JobAnalyzer struct {
	provider ai.Provider
	logger   *errors.Logger
}

// NewJobAnalyzer creates the job analysis stage
func NewJobAnalyzer(provider ai.Provider, logger *errors.Logger) *JobAnalyzer {
	return &JobAnalyzer{provider: provider, logger: logger}
}

// Name implements Stage
func (a *JobAnalyzer) Name() string {
	return StepJobAnalysis
}

// Process implements Stage
func (a *JobAnalyzer) Process(ctx context.Context, state *State) *State {
	raw := strings.TrimSpace(state.JobDescriptionRaw)
	if raw == "" {
		state.AddError("No job description data provided")
		return state
	}

	job, tokens, err := a.provider.AnalyzeJob(ctx, raw)
	if err != nil {
		state.AddError("Job analysis error: %v", err)
		return state
	}

	a.logger.Info("Job description analyzed",
		"title", job.Title,
		"company", job.Company,
		"requirement_count", len(job.Requirements),
		"tokens", tokenTotal(tokens))

	state.JobDescription = &job
	state.MarkCompleted(StepJobAnalysis)
	return state
}
