package ats

import "strings"

// analyzeFormatting scores ATS parsing compatibility with a deduction model:
// start at 100, subtract capped penalties, never go below 0.
func (e *Engine) analyzeFormatting(resumeText string) int {
	score := 100

	if n := len(e.patterns.specialChars.FindAllString(resumeText, -1)); n > 0 {
		score -= minInt(n*2, 20)
	}

	if n := len(e.patterns.excessiveCaps.FindAllString(resumeText, -1)); n > 0 {
		score -= minInt(n*5, 15)
	}

	if !e.patterns.email.MatchString(resumeText) {
		score -= 10
	}
	if !e.patterns.phone.MatchString(resumeText) {
		score -= 10
	}

	longLines := 0
	for _, line := range strings.Split(resumeText, "\n") {
		if len(line) > 120 {
			longLines++
		}
	}
	if longLines > 0 {
		score -= minInt(longLines*2, 15)
	}

	if score < 0 {
		return 0
	}
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
