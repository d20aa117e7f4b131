package ats

import "strings"

// analyzeStructure scores section coverage, contact placement and flow.
func (e *Engine) analyzeStructure(textLower string) int {
	sectionsFound := 0
	for _, section := range e.catalog.ExpectedSections {
		if strings.Contains(textLower, section) {
			sectionsFound++
		}
	}
	sectionCoverage := float64(sectionsFound) / float64(len(e.catalog.ExpectedSections)) * 100

	// Contact info is expected in the first quarter of the text.
	firstQuarter := textLower[:len(textLower)/4]
	contactScore := 50.0
	if e.patterns.email.MatchString(firstQuarter) {
		contactScore = 100
	}

	hasExperience := strings.Contains(textLower, "experience")
	hasEducation := strings.Contains(textLower, "education")
	var flowScore float64
	switch {
	case hasExperience && hasEducation:
		flowScore = 100
	case hasExperience || hasEducation:
		flowScore = 70
	default:
		flowScore = 30
	}

	return weightedScore(
		weightedTerm{0.6, sectionCoverage},
		weightedTerm{0.2, contactScore},
		weightedTerm{0.2, flowScore},
	)
}
