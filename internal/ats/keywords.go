package ats

import "strings"

// analyzeKeywords scores keyword density and relevance against the catalog.
func (e *Engine) analyzeKeywords(textLower string, words []string) int {
	wordCount := len(words)
	if wordCount == 0 {
		return 0
	}

	skillsFound := 0
	for _, skills := range e.catalog.TechnicalSkills {
		for _, skill := range skills {
			if strings.Contains(textLower, skill) {
				skillsFound++
			}
		}
	}
	skillsCoverage := float64(skillsFound) / float64(e.catalog.totalSkills()) * 100

	verbsFound := 0
	for _, verb := range e.catalog.ActionVerbs {
		if strings.Contains(textLower, verb) {
			verbsFound++
		}
	}
	verbCoverage := float64(verbsFound) / float64(len(e.catalog.ActionVerbs)) * 100

	unique := make(map[string]struct{}, wordCount)
	for _, word := range words {
		unique[word] = struct{}{}
	}
	density := float64(len(unique)) / float64(wordCount) * 100 * 2

	return weightedScore(
		weightedTerm{0.4, skillsCoverage},
		weightedTerm{0.3, verbCoverage},
		weightedTerm{0.3, density},
	)
}
