package cli

import (
	"fmt"

	"outreachr/internal/common"
	"outreachr/internal/profile"
	"outreachr/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [profile-file]",
	Short: "Score experience entries against a target position",
	Long: `Score the experience entries of a candidate's profile against a target
position. Each entry gets a relevance score from 0 to 100 along with the
keywords that matched. The command takes one argument: the path to the
profile file in plain text format. The target position is required.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig
var scoreTargetPosition string

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVarP(&scoreTargetPosition, "target", "t", "", "Target position to score against (required)")
	_ = scoreCmd.MarkFlagRequired("target")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.ScoreInput, error) {
		if len(contents) != 1 {
			return types.ScoreInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		sections := profile.Extract(contents[0])
		return types.ScoreInput{
			Experience:     sections.Experience,
			TargetPosition: scoreTargetPosition,
		}, nil
	}

	logDetails := func(input types.ScoreInput, cfg common.CommandConfig) {
		logger.Info("Starting relevance scoring",
			"experience_entries", len(input.Experience),
			"target_position", input.TargetPosition,
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(input types.ScoreInput) ([]types.RelevanceResult, error) {
		return profile.ScoreRelevance(input.Experience, input.TargetPosition), nil
	}

	err := common.RunCommand(
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score experience: %w", err)
	}
	logger.Info("Relevance scoring completed successfully")
	return nil
}
