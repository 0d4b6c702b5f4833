package common

import (
	"context"
	"fmt"
	"os"
	"strings"

	"resumeflow/internal/errors"
	"resumeflow/internal/workflow"
)

// BuildStateFunc defines how to create the initial workflow state from file contents.
type BuildStateFunc func(contents []string) (*workflow.State, error)

// ArtifactFunc extracts the artifact a command is expected to produce from
// the terminal state. It reports false when the artifact is absent.
type ArtifactFunc func(state *workflow.State) (any, bool)

// LogDetailsFunc defines how to log the start of a workflow run.
type LogDetailsFunc func(state *workflow.State, cfg CommandConfig)

// RunWorkflowCommand encapsulates the common logic for file-based CLI commands
// that drive a multi-stage workflow. Every stage runs regardless of earlier
// failures; accumulated errors are reported at the end and the command fails
// when the terminal state carries errors or lacks its artifact.
func RunWorkflowCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	buildState BuildStateFunc,
	pipeline *workflow.Pipeline,
	extractArtifact ArtifactFunc,
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	state, err := buildState(contents)
	if err != nil {
		return fmt.Errorf("failed to create workflow state from file contents: %w", err)
	}

	if logDetails != nil {
		logDetails(state, cmdConfig)
	}

	state = pipeline.Run(ctx, state)

	if logger != nil {
		logger.Info("Workflow finished",
			"steps_completed", strings.Join(state.StepsCompleted, ","),
			"errors", len(state.Errors))
	}

	// Every accumulated error is reported, not just the first one.
	for _, msg := range state.Errors {
		if logger != nil {
			logger.Warn("Workflow step failed", "error", msg)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
	}

	artifact, ok := extractArtifact(state)
	if ok {
		if err := outputHandler.HandleOutput(artifact, cmdConfig); err != nil {
			return err
		}
	}

	if state.HasErrors() {
		return errors.NewInternalError(errors.ErrCodeWorkflowIncomplete,
			fmt.Sprintf("workflow completed with %d error(s)", len(state.Errors)), nil)
	}
	if !ok {
		return errors.NewInternalError(errors.ErrCodeWorkflowIncomplete,
			"workflow produced no output artifact", nil)
	}

	return nil
}
