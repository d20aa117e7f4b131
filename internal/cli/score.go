package cli

import (
	"context"
	"fmt"

	"resumescan/internal/analyze"
	"resumescan/internal/common"
	"resumescan/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume for ATS compatibility",
	Long: `Score a resume against deterministic ATS compatibility rules.

The report covers four categories:
- Keywords & Skills: coverage of recognized skills and action verbs
- Formatting: special characters, casing, contact details, line lengths
- Content Quality: length, readability, quantified achievements
- Structure & Organization: standard sections, contact placement, flow

Scoring is fully offline: no AI provider or API key is required.
Supported input formats: .txt, .md, .pdf, .docx`,
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

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzer := analyze.New(cfg, logger)

	scoreOperation := func(ctx context.Context, resumeText string) (types.ScoreReport, error) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(resumeText),
			"output_format", scoreConfig.OutputFormat)
		return analyzer.Score(types.ScoreResumeInput{ResumeText: resumeText}), nil
	}

	err := common.RunResumeCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[0],
		scoreOperation,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
