package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumescan/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreReport", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreReport", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "AnalyzeResumeOutput", &AnalyzeTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalyzeResumeOutput", &AnalyzeMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreReport:
		return "ScoreReport"
	case types.AnalyzeResumeOutput:
		return "AnalyzeResumeOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for score reports
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder
	writeScoreReportText(&output, result)
	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreReport"
}

func writeScoreReportText(output *strings.Builder, result types.ScoreReport) {
	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.OverallScore))

	output.WriteString("=== CATEGORY SCORES ===\n")
	output.WriteString(fmt.Sprintf("Keywords & Skills:        %d/100\n", result.CategoryScores.KeywordsSkills))
	output.WriteString(fmt.Sprintf("Formatting:               %d/100\n", result.CategoryScores.Formatting))
	output.WriteString(fmt.Sprintf("Content Quality:          %d/100\n", result.CategoryScores.ContentQuality))
	output.WriteString(fmt.Sprintf("Structure & Organization: %d/100\n\n", result.CategoryScores.StructureOrganization))

	output.WriteString(fmt.Sprintf("Issues Found: %d (critical: %d)\n\n", result.TotalIssues, result.CriticalIssues))

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, rec.Severity, rec.Category))
			output.WriteString("   Issue: ")
			output.WriteString(rec.Issue)
			output.WriteString("\n")
			output.WriteString("   Impact: ")
			output.WriteString(rec.Impact)
			output.WriteString("\n")
			output.WriteString("   Recommendation: ")
			output.WriteString(rec.Recommendation)
			output.WriteString("\n\n")
		}
	}

	if len(result.Strengths) > 0 {
		output.WriteString("=== STRENGTHS ===\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.OptimizationTips) > 0 {
		output.WriteString("=== OPTIMIZATION TIPS ===\n")
		for i, tip := range result.OptimizationTips {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
		}
	}
}

// ScoreMarkdownFormatter handles markdown formatting for score reports
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder
	writeScoreReportMarkdown(&output, result, "#")
	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreReport"
}

// writeScoreReportMarkdown renders the report with headings starting at the
// given level so the same body can nest under an analysis document.
func writeScoreReportMarkdown(output *strings.Builder, result types.ScoreReport, level string) {
	output.WriteString(level + " ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.OverallScore))

	output.WriteString(level + "# Category Scores\n\n")
	output.WriteString("| Category | Score |\n|---|---|\n")
	output.WriteString(fmt.Sprintf("| Keywords & Skills | %d/100 |\n", result.CategoryScores.KeywordsSkills))
	output.WriteString(fmt.Sprintf("| Formatting | %d/100 |\n", result.CategoryScores.Formatting))
	output.WriteString(fmt.Sprintf("| Content Quality | %d/100 |\n", result.CategoryScores.ContentQuality))
	output.WriteString(fmt.Sprintf("| Structure & Organization | %d/100 |\n\n", result.CategoryScores.StructureOrganization))

	output.WriteString(fmt.Sprintf("**Issues Found:** %d (critical: %d)\n\n", result.TotalIssues, result.CriticalIssues))

	if len(result.Recommendations) > 0 {
		output.WriteString(level + "# Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf(level+"## %d. %s (%s)\n\n", i+1, rec.Category, rec.Severity))
			output.WriteString("**Issue:** ")
			output.WriteString(rec.Issue)
			output.WriteString("\n\n")
			output.WriteString("**Impact:** ")
			output.WriteString(rec.Impact)
			output.WriteString("\n\n")
			output.WriteString("**Recommendation:** ")
			output.WriteString(rec.Recommendation)
			output.WriteString("\n\n")
		}
	}

	if len(result.Strengths) > 0 {
		output.WriteString(level + "# Strengths\n\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.OptimizationTips) > 0 {
		output.WriteString(level + "# Optimization Tips\n\n")
		for i, tip := range result.OptimizationTips {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
		}
		output.WriteString("\n")
	}
}

// AnalyzeTextFormatter handles text formatting for combined analysis results
type AnalyzeTextFormatter struct{}

func (atf *AnalyzeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	if result.Details != nil {
		output.WriteString("=== PERSONAL DETAILS ===\n")
		output.WriteString(fmt.Sprintf("Name:            %s\n", result.Details.Name))
		output.WriteString(fmt.Sprintf("Email:           %s\n", result.Details.Email))
		output.WriteString(fmt.Sprintf("Phone:           %s\n", result.Details.Phone))
		output.WriteString(fmt.Sprintf("Current Company: %s\n", result.Details.CurrentCompany))
		output.WriteString(fmt.Sprintf("Job Role:        %s\n", result.Details.JobRole))
		output.WriteString(fmt.Sprintf("Last Education:  %s\n\n", result.Details.LastEducation))
	}

	writeScoreReportText(&output, result.Report)
	output.WriteString("\n")

	if result.Narrative != nil {
		output.WriteString("=== PROFESSIONAL SUMMARY ===\n")
		output.WriteString(result.Narrative.ProfessionalSummary)
		output.WriteString("\n\n")
		if len(result.Narrative.ImprovementSuggestions) > 0 {
			output.WriteString("=== IMPROVEMENT SUGGESTIONS ===\n")
			for i, suggestion := range result.Narrative.ImprovementSuggestions {
				output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
			}
			output.WriteString("\n")
		}
	}

	if result.Insights != nil {
		output.WriteString("=== AI INSIGHTS ===\n\n")
		if len(result.Insights.Strengths) > 0 {
			output.WriteString("Strengths:\n")
			for _, strength := range result.Insights.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(result.Insights.Weaknesses) > 0 {
			output.WriteString("Weaknesses:\n")
			for _, weakness := range result.Insights.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
		if len(result.Insights.SpecificRecommendations) > 0 {
			output.WriteString("Specific Recommendations:\n")
			for _, rec := range result.Insights.SpecificRecommendations {
				output.WriteString(fmt.Sprintf("- %s\n", rec))
			}
		}
	}

	return output.String(), nil
}

func (atf *AnalyzeTextFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// AnalyzeMarkdownFormatter handles markdown formatting for combined analysis results
type AnalyzeMarkdownFormatter struct{}

func (amf *AnalyzeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")

	if result.Details != nil {
		output.WriteString("## Personal Details\n\n")
		output.WriteString("| Field | Value |\n|---|---|\n")
		output.WriteString(fmt.Sprintf("| Name | %s |\n", result.Details.Name))
		output.WriteString(fmt.Sprintf("| Email | %s |\n", result.Details.Email))
		output.WriteString(fmt.Sprintf("| Phone | %s |\n", result.Details.Phone))
		output.WriteString(fmt.Sprintf("| Current Company | %s |\n", result.Details.CurrentCompany))
		output.WriteString(fmt.Sprintf("| Job Role | %s |\n", result.Details.JobRole))
		output.WriteString(fmt.Sprintf("| Last Education | %s |\n\n", result.Details.LastEducation))
	}

	writeScoreReportMarkdown(&output, result.Report, "##")

	if result.Narrative != nil {
		output.WriteString("## Professional Summary\n\n")
		output.WriteString(result.Narrative.ProfessionalSummary)
		output.WriteString("\n\n")
		if len(result.Narrative.ImprovementSuggestions) > 0 {
			output.WriteString("## Improvement Suggestions\n\n")
			for i, suggestion := range result.Narrative.ImprovementSuggestions {
				output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
			}
			output.WriteString("\n")
		}
	}

	if result.Insights != nil {
		output.WriteString("## AI Insights\n\n")
		if len(result.Insights.Strengths) > 0 {
			output.WriteString("### Strengths\n")
			for _, strength := range result.Insights.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(result.Insights.Weaknesses) > 0 {
			output.WriteString("### Weaknesses\n")
			for _, weakness := range result.Insights.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
		if len(result.Insights.SpecificRecommendations) > 0 {
			output.WriteString("### Specific Recommendations\n")
			for _, rec := range result.Insights.SpecificRecommendations {
				output.WriteString(fmt.Sprintf("- %s\n", rec))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (amf *AnalyzeMarkdownFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
