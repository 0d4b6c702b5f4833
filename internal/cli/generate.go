package cli

import (
	"fmt"

	"resumeflow/internal/ai"
	"resumeflow/internal/common"
	"resumeflow/internal/workflow"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [profile-file] [job-description-file]",
	Short: "Generate a tailored resume for a specific job description",
	Long: `Generate a personalized resume from your profile and a job description.
The command takes two arguments: the path to your profile file (plain text or
a pre-structured JSON profile) and the path to the job description file.
Every workflow step runs even if an earlier one fails; all accumulated
errors are reported at the end.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if generateConfig.OutputFormat == "" {
			generateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(generateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runGenerate,
}

var generateConfig common.CommandConfig

func init() {
	generateCmd.Flags().StringVarP(&generateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	generateCmd.Flags().StringVar(&generateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = generateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	services, err := ai.NewServices(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI services: %w", err)
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("Failed to close AI services", "error", err)
		}
	}()

	pipeline := workflow.NewResumePipeline(services, logger)

	buildState := func(contents []string) (*workflow.State, error) {
		if len(contents) != 2 {
			return nil, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return &workflow.State{
			UserProfileRaw:    contents[0],
			JobDescriptionRaw: contents[1],
		}, nil
	}

	extractArtifact := func(state *workflow.State) (any, bool) {
		if state.GeneratedResume == nil {
			return nil, false
		}
		logger.Info("Resume generated",
			"match_percentage", state.GeneratedResume.MatchPercentage,
			"sections", len(state.GeneratedResume.Sections))
		return *state.GeneratedResume, true
	}

	logDetails := func(state *workflow.State, cfg common.CommandConfig) {
		logger.Info("Starting resume generation",
			"profile_chars", len(state.UserProfileRaw),
			"job_chars", len(state.JobDescriptionRaw),
			"output_format", cfg.OutputFormat)
	}

	err = common.RunWorkflowCommand(
		cmd.Context(),
		logger,
		generateConfig,
		args,
		buildState,
		pipeline,
		extractArtifact,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}
	logger.Info("Resume generation completed successfully")
	return nil
}
