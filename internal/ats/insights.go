package ats

import "resumescan/internal/types"

// Category display names used in recommendations.
const (
	categoryKeywords   = "Keywords & Skills"
	categoryFormatting = "Formatting"
	categoryContent    = "Content Quality"
	categoryStructure  = "Structure & Organization"
)

// recommendationTemplate is a fixed per-category template. Severity for most
// categories depends on the 50 threshold; content quality is always Medium.
type recommendationTemplate struct {
	category       string
	alwaysMedium   bool
	issue          string
	impact         string
	recommendation string
}

// recommendationTemplates are evaluated in fixed category order so the
// emitted sequence is deterministic.
var recommendationTemplates = []struct {
	score    func(types.CategoryScores) int
	template recommendationTemplate
}{
	{
		score: func(s types.CategoryScores) int { return s.KeywordsSkills },
		template: recommendationTemplate{
			category:       categoryKeywords,
			issue:          "Limited relevant keywords and technical skills detected",
			impact:         "ATS systems may not identify your resume as a match for relevant positions",
			recommendation: "Add more industry-specific keywords, technical skills, and action verbs. Research job descriptions for target roles and incorporate relevant terminology.",
		},
	},
	{
		score: func(s types.CategoryScores) int { return s.Formatting },
		template: recommendationTemplate{
			category:       categoryFormatting,
			issue:          "Formatting issues that may interfere with ATS parsing",
			impact:         "Poor formatting can cause ATS systems to misread or skip important information",
			recommendation: "Use standard fonts, avoid special characters, ensure consistent formatting, and include clear contact information at the top.",
		},
	},
	{
		score: func(s types.CategoryScores) int { return s.ContentQuality },
		template: recommendationTemplate{
			category:       categoryContent,
			alwaysMedium:   true,
			issue:          "Content lacks quantified achievements or professional language",
			impact:         "Resume may not effectively demonstrate your value and impact",
			recommendation: "Include specific numbers, percentages, and measurable achievements. Use professional action verbs and maintain appropriate length (300-600 words).",
		},
	},
	{
		score: func(s types.CategoryScores) int { return s.StructureOrganization },
		template: recommendationTemplate{
			category:       categoryStructure,
			issue:          "Missing key sections or poor organization",
			impact:         "ATS systems expect standard resume sections in logical order",
			recommendation: "Include standard sections: Contact Info, Summary/Objective, Experience, Education, Skills. Organize information in a logical, chronological order.",
		},
	},
}

// generateRecommendations emits one recommendation per category scoring
// below 70, in fixed category order.
func (e *Engine) generateRecommendations(scores types.CategoryScores) []types.Recommendation {
	var recommendations []types.Recommendation
	for _, entry := range recommendationTemplates {
		score := entry.score(scores)
		if score >= 70 {
			continue
		}
		severity := types.SeverityMedium
		if !entry.template.alwaysMedium && score < 50 {
			severity = types.SeverityHigh
		}
		recommendations = append(recommendations, types.Recommendation{
			Category:       entry.template.category,
			Severity:       severity,
			Issue:          entry.template.issue,
			Impact:         entry.template.impact,
			Recommendation: entry.template.recommendation,
		})
	}
	return recommendations
}

var strengthTemplates = []struct {
	score   func(types.CategoryScores) int
	message string
}{
	{func(s types.CategoryScores) int { return s.KeywordsSkills }, "Strong keyword optimization with relevant technical skills"},
	{func(s types.CategoryScores) int { return s.Formatting }, "Clean, ATS-friendly formatting and structure"},
	{func(s types.CategoryScores) int { return s.ContentQuality }, "High-quality content with quantified achievements"},
	{func(s types.CategoryScores) int { return s.StructureOrganization }, "Well-organized with all essential resume sections"},
}

// identifyStrengths emits one fixed message per category scoring 80 or
// above, plus two content-derived strengths.
func (e *Engine) identifyStrengths(resumeText string, scores types.CategoryScores) []string {
	var strengths []string
	for _, entry := range strengthTemplates {
		if entry.score(scores) >= 80 {
			strengths = append(strengths, entry.message)
		}
	}

	if e.patterns.percentage.MatchString(resumeText) {
		strengths = append(strengths, "Includes quantified achievements with percentages")
	}
	if e.patterns.email.MatchString(resumeText) && e.patterns.phone.MatchString(resumeText) {
		strengths = append(strengths, "Complete contact information provided")
	}

	return strengths
}

var baselineTips = []string{
	"Use standard section headings like 'Experience', 'Education', 'Skills'",
	"Save your resume as both PDF and Word formats for different ATS systems",
	"Tailor your resume keywords to match specific job descriptions",
	"Keep formatting simple and avoid tables, graphics, or columns",
	"Use bullet points for easy scanning and parsing",
}

// generateOptimizationTips returns the baseline tips plus score-conditioned
// extras.
func (e *Engine) generateOptimizationTips(scores types.CategoryScores) []string {
	tips := make([]string, 0, len(baselineTips)+2)
	tips = append(tips, baselineTips...)

	if scores.KeywordsSkills < 80 {
		tips = append(tips, "Research industry-specific keywords and incorporate them naturally")
	}
	if scores.ContentQuality < 80 {
		tips = append(tips, "Quantify your achievements with specific numbers and percentages")
	}

	return tips
}
