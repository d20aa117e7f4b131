// Package analyze combines the deterministic scoring engine with the
// optional AI enrichment operations behind a single entry point shared by
// the CLI and the HTTP server.
package analyze

import (
	"context"

	"resumescan/internal/ai"
	"resumescan/internal/ats"
	"resumescan/internal/common"
	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/types"
)

// Options selects which AI enrichment operations run alongside scoring
type Options struct {
	Details   bool
	Narrative bool
	Insights  bool
}

// EnrichAll returns options with every AI operation enabled
func EnrichAll() Options {
	return Options{Details: true, Narrative: true, Insights: true}
}

// Analyzer scores resumes and optionally enriches the report with AI output
type Analyzer struct {
	engine *ats.Engine
	cfg    *config.Config
	logger *errors.Logger
}

// New creates an analyzer backed by the default scoring catalog
func New(cfg *config.Config, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		engine: ats.NewEngine(ats.DefaultCatalog()),
		cfg:    cfg,
		logger: logger,
	}
}

// Score runs the deterministic scoring engine only. It needs no network
// access and no API key.
func (a *Analyzer) Score(input types.ScoreResumeInput) types.ScoreReport {
	return a.engine.Analyze(input.ResumeText)
}

// Analyze scores the resume and runs the requested AI enrichment operations.
// The deterministic report is always produced; a failure in an individual AI
// operation is logged and leaves the corresponding output field nil.
func (a *Analyzer) Analyze(ctx context.Context, input types.AnalyzeResumeInput, opts Options) types.AnalyzeResumeOutput {
	output := types.AnalyzeResumeOutput{
		Report: a.engine.Analyze(input.ResumeText),
	}

	if opts.Details {
		output.Details = a.extractDetails(ctx, input.ResumeText)
	}
	if opts.Narrative {
		output.Narrative = a.generateNarrative(ctx, input.ResumeText, output.Report.OverallScore)
	}
	if opts.Insights {
		output.Insights = a.generateInsights(ctx, input.ResumeText, output.Report.CategoryScores)
	}

	return output
}

func (a *Analyzer) extractDetails(ctx context.Context, resumeText string) *types.PersonalDetails {
	opCfg := a.cfg.GetDetailsConfig()
	service, err := ai.NewService(&opCfg, ai.OpDetails, a.logger)
	if err != nil {
		a.logger.Warn("Skipping personal detail extraction",
			"operation", ai.OpDetails, "error", err.Error())
		return nil
	}
	defer func() { _ = service.Provider.Close() }()

	details, tokenUsage, err := service.Provider.ExtractDetails(ctx, types.ScoreResumeInput{ResumeText: resumeText})
	if err != nil {
		a.logger.Warn("Personal detail extraction failed",
			"operation", ai.OpDetails, "error", err.Error())
		return nil
	}

	common.ReportTokenUsage(a.logger, ai.OpDetails, tokenUsage)
	return &details
}

func (a *Analyzer) generateNarrative(ctx context.Context, resumeText string, overallScore int) *types.Narrative {
	opCfg := a.cfg.GetNarrativeConfig()
	service, err := ai.NewService(&opCfg, ai.OpNarrative, a.logger)
	if err != nil {
		a.logger.Warn("Skipping narrative generation",
			"operation", ai.OpNarrative, "error", err.Error())
		return nil
	}
	defer func() { _ = service.Provider.Close() }()

	narrative, tokenUsage, err := service.Provider.GenerateNarrative(ctx, types.NarrativeInput{
		ResumeText:   resumeText,
		OverallScore: overallScore,
	})
	if err != nil {
		a.logger.Warn("Narrative generation failed",
			"operation", ai.OpNarrative, "error", err.Error())
		return nil
	}

	common.ReportTokenUsage(a.logger, ai.OpNarrative, tokenUsage)
	return &narrative
}

func (a *Analyzer) generateInsights(ctx context.Context, resumeText string, scores types.CategoryScores) *types.Insights {
	opCfg := a.cfg.GetInsightsConfig()
	service, err := ai.NewService(&opCfg, ai.OpInsights, a.logger)
	if err != nil {
		a.logger.Warn("Skipping insight generation",
			"operation", ai.OpInsights, "error", err.Error())
		return nil
	}
	defer func() { _ = service.Provider.Close() }()

	insights, tokenUsage, err := service.Provider.GenerateInsights(ctx, types.InsightsInput{
		ResumeText:     resumeText,
		CategoryScores: scores,
	})
	if err != nil {
		a.logger.Warn("Insight generation failed",
			"operation", ai.OpInsights, "error", err.Error())
		return nil
	}

	common.ReportTokenUsage(a.logger, ai.OpInsights, tokenUsage)
	return &insights
}
