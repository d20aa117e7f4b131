package cli

import (
	"context"
	"fmt"

	"resumescan/internal/analyze"
	"resumescan/internal/common"
	"resumescan/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Score a resume and enrich the report with AI analysis",
	Long: `Analyze a resume: run the deterministic ATS scoring engine, then
enrich the report with AI-generated output.

The enrichment covers:
- Personal details extracted from the resume text
- A professional summary with improvement suggestions
- Strengths, weaknesses and specific recommendations driven by the scores

Each enrichment operation can be disabled individually. A failed or
unconfigured AI operation is skipped; the deterministic report is always
produced.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig  common.CommandConfig
	analyzeOptions = analyze.EnrichAll()
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.Details, "details", true, "Extract personal details with AI")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.Narrative, "narrative", true, "Generate a professional summary with AI")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.Insights, "insights", true, "Generate strengths and weaknesses with AI")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzer := analyze.New(cfg, logger)

	analyzeOperation := func(ctx context.Context, resumeText string) (types.AnalyzeResumeOutput, error) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(resumeText),
			"output_format", analyzeConfig.OutputFormat,
			"details", analyzeOptions.Details,
			"narrative", analyzeOptions.Narrative,
			"insights", analyzeOptions.Insights)
		return analyzer.Analyze(ctx, types.AnalyzeResumeInput{ResumeText: resumeText}, analyzeOptions), nil
	}

	err := common.RunResumeCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		analyzeOperation,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
