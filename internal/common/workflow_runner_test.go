package common

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumeflow/internal/errors"
	"resumeflow/internal/types"
	"resumeflow/internal/workflow"
)

func testLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

// stubStage drives the pipeline in tests. It copies the raw input into
// the generated resume, or records an error instead.
type stubStage struct {
	name string
	fail bool
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Process(ctx context.Context, state *workflow.State) *workflow.State {
	if s.fail {
		state.AddError("%s error: stub failure", s.name)
		return state
	}
	state.GeneratedResume = &types.GeneratedResume{
		CustomizedSummary: strings.TrimSpace(state.UserProfileRaw),
		MatchPercentage:   80,
	}
	state.MarkCompleted(s.name)
	return state
}

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write temp input: %v", err)
	}
	return path
}

func resumeBuildState(contents []string) (*workflow.State, error) {
	return &workflow.State{UserProfileRaw: contents[0]}, nil
}

func resumeArtifact(state *workflow.State) (any, bool) {
	if state.GeneratedResume == nil {
		return nil, false
	}
	return *state.GeneratedResume, true
}

func TestRunWorkflowCommandSuccess(t *testing.T) {
	logger := testLogger()
	input := writeTempInput(t, "Jane Doe\nBackend engineer")
	output := filepath.Join(t.TempDir(), "out", "resume.json")

	pipeline := workflow.NewPipeline("test", logger, &stubStage{name: "generation"})
	cfg := CommandConfig{OutputFile: output, OutputFormat: "json"}

	err := RunWorkflowCommand(context.Background(), logger, cfg, []string{input},
		resumeBuildState, pipeline, resumeArtifact, nil)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected output file, got %v", err)
	}
	if !strings.Contains(string(written), "Jane Doe") {
		t.Errorf("output file missing artifact content: %s", written)
	}
}

func TestRunWorkflowCommandAccumulatedErrors(t *testing.T) {
	logger := testLogger()
	input := writeTempInput(t, "profile text")
	output := filepath.Join(t.TempDir(), "resume.json")

	// A failing stage followed by a succeeding one: the artifact is still
	// produced, but the run must report failure because errors accumulated.
	pipeline := workflow.NewPipeline("test", logger,
		&stubStage{name: "analysis", fail: true},
		&stubStage{name: "generation"},
	)
	cfg := CommandConfig{OutputFile: output, OutputFormat: "json"}

	err := RunWorkflowCommand(context.Background(), logger, cfg, []string{input},
		resumeBuildState, pipeline, resumeArtifact, nil)
	if err == nil {
		t.Fatal("expected error for run with accumulated errors")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeWorkflowIncomplete {
		t.Errorf("expected code %s, got %s", errors.ErrCodeWorkflowIncomplete, appErr.Code)
	}

	// The partial artifact is still written before the failure is reported.
	if _, statErr := os.Stat(output); statErr != nil {
		t.Errorf("expected artifact written despite errors: %v", statErr)
	}
}

func TestRunWorkflowCommandMissingArtifact(t *testing.T) {
	logger := testLogger()
	input := writeTempInput(t, "profile text")

	pipeline := workflow.NewPipeline("test", logger,
		&stubStage{name: "generation", fail: true})
	cfg := CommandConfig{OutputFormat: "json"}

	err := RunWorkflowCommand(context.Background(), logger, cfg, []string{input},
		resumeBuildState, pipeline, resumeArtifact, nil)
	if err == nil {
		t.Fatal("expected error when no artifact was produced")
	}
}

func TestRunWorkflowCommandMissingInputFile(t *testing.T) {
	logger := testLogger()
	pipeline := workflow.NewPipeline("test", logger, &stubStage{name: "generation"})
	cfg := CommandConfig{OutputFormat: "json"}

	err := RunWorkflowCommand(context.Background(), logger, cfg,
		[]string{filepath.Join(t.TempDir(), "does-not-exist.txt")},
		resumeBuildState, pipeline, resumeArtifact, nil)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("expected validation error, got %s", appErr.Type)
	}
}
