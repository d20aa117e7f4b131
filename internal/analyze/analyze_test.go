package analyze

import (
	"context"
	"log/slog"
	"testing"

	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/types"
)

const testResume = `Summary
Experienced software engineer skilled in python and sql development.

Experience
Led a team of 5 engineers. Improved system performance by 40%.
Developed services handling 1000 requests per second.

Education
BS Computer Science, State University, 2018

Skills
Python, SQL, React, Leadership

Contact: jane.doe@example.com, 555-987-6543`

func testAnalyzer() *Analyzer {
	cfg := &config.Config{
		AI: config.AIConfig{Provider: "gemini", Model: "test-model"},
	}
	return New(cfg, errors.NewLogger(slog.LevelError))
}

func TestScoreProducesReport(t *testing.T) {
	analyzer := testAnalyzer()

	report := analyzer.Score(types.ScoreResumeInput{ResumeText: testResume})

	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Errorf("Overall score out of range: %d", report.OverallScore)
	}
	if report.CategoryScores.StructureOrganization == 0 {
		t.Error("Expected structure score above zero for a sectioned resume")
	}
}

func TestAnalyzeWithoutAPIKeySkipsEnrichment(t *testing.T) {
	analyzer := testAnalyzer()

	output := analyzer.Analyze(context.Background(), types.AnalyzeResumeInput{ResumeText: testResume}, EnrichAll())

	// Scoring must succeed even though every AI operation is unavailable.
	if output.Report.OverallScore == 0 {
		t.Error("Expected a nonzero overall score")
	}
	if output.Details != nil {
		t.Error("Details should be nil when no API key is configured")
	}
	if output.Narrative != nil {
		t.Error("Narrative should be nil when no API key is configured")
	}
	if output.Insights != nil {
		t.Error("Insights should be nil when no API key is configured")
	}
}

func TestAnalyzeWithNoEnrichmentMatchesScore(t *testing.T) {
	analyzer := testAnalyzer()

	report := analyzer.Score(types.ScoreResumeInput{ResumeText: testResume})
	output := analyzer.Analyze(context.Background(), types.AnalyzeResumeInput{ResumeText: testResume}, Options{})

	if output.Report.OverallScore != report.OverallScore {
		t.Errorf("Analyze report score %d differs from Score %d",
			output.Report.OverallScore, report.OverallScore)
	}
	if output.Details != nil || output.Narrative != nil || output.Insights != nil {
		t.Error("No enrichment fields should be set when all options are disabled")
	}
}
