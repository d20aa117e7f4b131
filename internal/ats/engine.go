package ats

import (
	"strings"

	"resumescan/internal/types"
)

// Engine performs deterministic ATS scoring of resume text. It is pure with
// respect to its catalog: the same input always yields the same report, and
// scoring a report's own input again yields an identical report.
type Engine struct {
	catalog  Catalog
	patterns patterns
}

// NewEngine creates a scoring engine around the given catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{
		catalog:  catalog,
		patterns: compilePatterns(),
	}
}

// Analyze scores the resume text and assembles the full report.
func (e *Engine) Analyze(resumeText string) types.ScoreReport {
	textLower := strings.ToLower(resumeText)
	sentences := splitSentences(resumeText)
	words := extractWords(textLower)

	scores := types.CategoryScores{
		KeywordsSkills:        e.analyzeKeywords(textLower, words),
		Formatting:            e.analyzeFormatting(resumeText),
		ContentQuality:        e.analyzeContentQuality(resumeText, sentences, words),
		StructureOrganization: e.analyzeStructure(textLower),
	}

	overall := (scores.KeywordsSkills + scores.Formatting +
		scores.ContentQuality + scores.StructureOrganization) / 4

	recommendations := e.generateRecommendations(scores)
	critical := 0
	for _, rec := range recommendations {
		if rec.Severity == types.SeverityHigh {
			critical++
		}
	}

	return types.ScoreReport{
		OverallScore:     overall,
		CategoryScores:   scores,
		TotalIssues:      len(recommendations),
		CriticalIssues:   critical,
		Recommendations:  recommendations,
		Strengths:        e.identifyStrengths(resumeText, scores),
		OptimizationTips: e.generateOptimizationTips(scores),
	}
}
