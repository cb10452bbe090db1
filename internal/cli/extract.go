package cli

import (
	"fmt"

	"outreachr/internal/common"
	"outreachr/internal/profile"
	"outreachr/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [profile-file]",
	Short: "Extract labeled sections from a profile text",
	Long: `Extract labeled sections (experience, education, skills, summary,
achievements, certifications) from a candidate's profile text. The command
takes one argument: the path to the profile file in plain text format.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if extractConfig.OutputFormat == "" {
			extractConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(extractConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = extractCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.ExtractInput, error) {
		if len(contents) != 1 {
			return types.ExtractInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ExtractInput{ProfileText: contents[0]}, nil
	}

	logDetails := func(input types.ExtractInput, cfg common.CommandConfig) {
		logger.Info("Starting section extraction",
			"profile_chars", len(input.ProfileText),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(input types.ExtractInput) (types.ProfileSections, error) {
		return profile.Extract(input.ProfileText), nil
	}

	err := common.RunCommand(
		logger,
		extractConfig,
		args,
		createInput,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract sections: %w", err)
	}
	logger.Info("Section extraction completed successfully")
	return nil
}
