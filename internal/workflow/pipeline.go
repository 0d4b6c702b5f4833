package workflow

import (
	"context"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/jobsearch"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Stage is one pipeline step. Process reads the fields it needs from the
// state, writes its outputs back, and records errors instead of
// returning them: a stage failure degrades the final output but never
// aborts the run.
type Stage interface {
	Name() string
	Process(ctx context.Context, state *State) *State
}

// Pipeline runs a fixed ordered chain of stages against one shared
// state. Every stage always runs, even after earlier failures; each
// stage guards its own required inputs.
type Pipeline struct {
	name   string
	stages []Stage
	logger *errors.Logger
}

// NewPipeline composes stages into an ordered chain
func NewPipeline(name string, logger *errors.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{
		name:   name,
		stages: stages,
		logger: logger,
	}
}

// Run executes every stage in order and returns the final state. Stages
// are expected to record their own errors; a panic escaping a stage is
// recovered at this boundary and recorded like any other stage error.
func (p *Pipeline) Run(ctx context.Context, state *State) *State {
	tracer := otel.Tracer("resumeflow.workflow")
	ctx, span := tracer.Start(ctx, "workflow."+p.name)
	defer span.End()

	for _, stage := range p.stages {
		state = p.runStage(ctx, stage, state)
	}

	span.SetAttributes(
		attribute.Int("workflow.error_count", len(state.Errors)),
		attribute.StringSlice("workflow.steps_completed", state.StepsCompleted),
	)

	p.logger.Info("Workflow finished",
		"workflow", p.name,
		"steps_completed", state.StepsCompleted,
		"error_count", len(state.Errors))

	return state
}

func (p *Pipeline) runStage(ctx context.Context, stage Stage, state *State) (result *State) {
	tracer := otel.Tracer("resumeflow.workflow")
	ctx, span := tracer.Start(ctx, "stage."+stage.Name())
	defer span.End()

	errorsBefore := len(state.Errors)

	defer func() {
		if r := recover(); r != nil {
			state.AddError("%s error: %v", stage.Name(), r)
			p.logger.Warn("Stage panicked",
				"workflow", p.name,
				"stage", stage.Name(),
				"panic", r)
			result = state
		}
		span.SetAttributes(attribute.Bool("stage.errored", len(result.Errors) > errorsBefore))
	}()

	p.logger.Debug("Running stage", "workflow", p.name, "stage", stage.Name())
	result = stage.Process(ctx, state)
	return result
}

// NewResumePipeline builds the resume workflow: extract the profile,
// analyze the job posting, match skills, generate the tailored resume.
func NewResumePipeline(services *ai.Services, logger *errors.Logger) *Pipeline {
	return NewPipeline("resume", logger,
		NewProfileExtractor(services.Extract.Provider, logger),
		NewJobAnalyzer(services.Analyze.Provider, logger),
		NewSkillsMatcher(services.Match.Provider, logger),
		NewResumeGenerator(services.Generate.Provider, logger),
	)
}

// NewCoverLetterPipeline builds the cover-letter workflow: extract the
// profile, search job boards, match skills per listing, generate one
// cover letter per listing above the match threshold.
func NewCoverLetterPipeline(services *ai.Services, searcher jobsearch.Searcher, logger *errors.Logger) *Pipeline {
	return NewPipeline("cover_letter", logger,
		NewProfileExtractor(services.Extract.Provider, logger),
		NewJobSearch(searcher, logger),
		NewSkillsMatcher(services.Match.Provider, logger),
		NewCoverLetterGenerator(services.Generate.Provider, logger),
	)
}
