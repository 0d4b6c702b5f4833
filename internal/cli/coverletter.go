package cli

import (
	"fmt"

	"resumeflow/internal/ai"
	"resumeflow/internal/common"
	"resumeflow/internal/formatters"
	"resumeflow/internal/jobsearch"
	"resumeflow/internal/workflow"

	"github.com/spf13/cobra"
)

var coverLetterCmd = &cobra.Command{
	Use:   "coverletter [profile-file]",
	Short: "Search job boards and generate tailored cover letters",
	Long: `Search job boards for positions matching your profile and generate a
cover letter for each listing that meets the match threshold. The command
takes one argument: the path to your profile file (plain text or a
pre-structured JSON profile). Search parameters fall back to configured
workflow defaults when not given as flags.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if coverLetterConfig.OutputFormat == "" {
			coverLetterConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(coverLetterConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCoverLetter,
}

var coverLetterConfig common.CommandConfig

var (
	coverLetterLocation  string
	coverLetterSites     []string
	coverLetterMax       int
	coverLetterHoursOld  int
	coverLetterThreshold float64
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	coverLetterCmd.Flags().StringVar(&coverLetterConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	coverLetterCmd.Flags().StringVar(&coverLetterLocation, "location", "", "Job search location (default from config)")
	coverLetterCmd.Flags().StringSliceVar(&coverLetterSites, "sites", nil, "Job boards to search (default from config)")
	coverLetterCmd.Flags().IntVar(&coverLetterMax, "max-results", 0, "Maximum listings per search (default from config)")
	coverLetterCmd.Flags().IntVar(&coverLetterHoursOld, "hours-old", 0, "Only include listings newer than this many hours (default from config)")
	coverLetterCmd.Flags().Float64Var(&coverLetterThreshold, "match-threshold", -1, "Minimum match percentage for generating a letter (default from config)")

	_ = coverLetterCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
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

	searcher, err := jobsearch.NewClient(&cfg.Search, logger)
	if err != nil {
		return fmt.Errorf("failed to create job search client: %w", err)
	}

	pipeline := workflow.NewCoverLetterPipeline(services, searcher, logger)

	buildState := func(contents []string) (*workflow.State, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}

		location := coverLetterLocation
		if location == "" {
			location = cfg.Workflow.Location
		}
		sites := coverLetterSites
		if len(sites) == 0 {
			sites = cfg.Search.Sites
		}
		maxResults := coverLetterMax
		if maxResults <= 0 {
			maxResults = cfg.Workflow.MaxResults
		}
		hoursOld := coverLetterHoursOld
		if hoursOld <= 0 {
			hoursOld = cfg.Workflow.HoursOld
		}
		threshold := coverLetterThreshold
		if threshold < 0 {
			threshold = cfg.Workflow.MatchThreshold
		}

		return &workflow.State{
			UserProfileRaw: contents[0],
			SearchLocation: location,
			JobSites:       sites,
			MaxResults:     maxResults,
			HoursOld:       hoursOld,
			MatchThreshold: threshold,
		}, nil
	}

	extractArtifact := func(state *workflow.State) (any, bool) {
		// A non-nil empty list means the search succeeded and nothing met
		// the threshold; that is still a complete run.
		if state.GeneratedCoverLetters == nil {
			return nil, false
		}
		logger.Info("Cover letters generated",
			"letters", len(state.GeneratedCoverLetters),
			"listings_matched", len(state.JobSkillMatches))
		return formatters.CoverLetterBatch(state.GeneratedCoverLetters), true
	}

	logDetails := func(state *workflow.State, cfg common.CommandConfig) {
		logger.Info("Starting cover letter generation",
			"profile_chars", len(state.UserProfileRaw),
			"location", state.SearchLocation,
			"sites", state.JobSites,
			"max_results", state.MaxResults,
			"match_threshold", state.MatchThreshold,
			"output_format", cfg.OutputFormat)
	}

	err = common.RunWorkflowCommand(
		cmd.Context(),
		logger,
		coverLetterConfig,
		args,
		buildState,
		pipeline,
		extractArtifact,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate cover letters: %w", err)
	}
	logger.Info("Cover letter generation completed successfully")
	return nil
}
