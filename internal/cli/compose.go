package cli

import (
	"context"
	"fmt"

	"outreachr/internal/ai"
	"outreachr/internal/common"
	"outreachr/internal/types"

	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose [profile-file]",
	Short: "Compose a personalized outreach message for a candidate",
	Long: `Compose a personalized outreach message from a candidate's profile text.
The command takes one argument: the path to the profile file in plain text
format. The target position is required.

The tone can be Professional, Friendly or Casual, and the length can be
brief, standard or detailed. Company highlights are woven into the message
when provided.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if composeConfig.OutputFormat == "" {
			composeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(composeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCompose,
}

var composeConfig common.CommandConfig
var (
	composeTargetPosition    string
	composeCompanyHighlights string
	composeTone              string
	composeLength            string
)

func init() {
	composeCmd.Flags().StringVarP(&composeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	composeCmd.Flags().StringVar(&composeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	composeCmd.Flags().StringVarP(&composeTargetPosition, "target", "t", "", "Target position for the outreach (required)")
	composeCmd.Flags().StringVar(&composeCompanyHighlights, "company", "", "Company highlights to weave into the message")
	composeCmd.Flags().StringVar(&composeTone, "tone", "", "Message tone: Professional, Friendly, or Casual (default: Professional)")
	composeCmd.Flags().StringVar(&composeLength, "length", "", "Message length: brief, standard, or detailed (default: standard)")
	_ = composeCmd.MarkFlagRequired("target")

	// Add completion for format flag
	_ = composeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = composeCmd.RegisterFlagCompletionFunc("tone", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{types.ToneProfessional, types.ToneFriendly, types.ToneCasual}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = composeCmd.RegisterFlagCompletionFunc("length", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{types.LengthBrief, types.LengthStandard, types.LengthDetailed}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for compose operation
	composeAIConfig := cfg.GetComposeConfig()
	aiService, err := ai.NewService(&composeAIConfig, "compose", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.ComposeMessageInput, error) {
		if len(contents) != 1 {
			return types.ComposeMessageInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ComposeMessageInput{
			ProfileText:       contents[0],
			TargetPosition:    composeTargetPosition,
			CompanyHighlights: composeCompanyHighlights,
			Tone:              composeTone,
			Length:            composeLength,
		}, nil
	}

	logDetails := func(input types.ComposeMessageInput, cfg common.CommandConfig) {
		logger.Info("Starting message composition",
			"profile_chars", len(input.ProfileText),
			"target_position", input.TargetPosition,
			"tone", input.Tone,
			"length", input.Length,
			"output_format", cfg.OutputFormat)
	}

	// Create a wrapper function that uses our specific AI service
	composeOperation := func(ctx context.Context, input types.ComposeMessageInput) (types.ComposeMessageOutput, *ai.TokenUsage, error) {
		return aiService.ComposeMessage(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		composeConfig,
		args,
		createInput,
		composeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to compose message: %w", err)
	}
	logger.Info("Message composition completed successfully")
	return nil
}
