package ats

import "strings"

// analyzeContentQuality scores content depth and professionalism.
func (e *Engine) analyzeContentQuality(resumeText string, sentences, words []string) int {
	wordCount := len(words)
	var wordScore float64
	switch {
	case wordCount >= 200 && wordCount <= 800:
		wordScore = 100
	case wordCount < 200:
		wordScore = float64(wordCount) / 200 * 100
	default:
		wordScore = maxFloat(100-float64(wordCount-800)/20, 50)
	}

	// Zero sentences leaves the readability term out entirely.
	var readability float64
	if len(sentences) > 0 {
		totalWords := 0
		for _, sentence := range sentences {
			totalWords += sentenceWordCount(sentence)
		}
		avg := float64(totalWords) / float64(len(sentences))
		switch {
		case avg >= 10 && avg <= 25:
			readability = 100
		case avg < 10:
			readability = avg / 10 * 100
		default:
			readability = maxFloat(100-(avg-25)*3, 40)
		}
	}

	// Percentage tokens count once at double weight; the digits inside
	// them are not counted again as standalone numbers.
	numbers := len(e.patterns.number.FindAllString(resumeText, -1))
	percentages := len(e.patterns.percentage.FindAllString(resumeText, -1))
	standalone := numbers - percentages
	achievements := float64((standalone + percentages*2) * 10)

	textLower := strings.ToLower(resumeText)
	professionalCount := 0
	for _, word := range e.catalog.ProfessionalWords {
		if strings.Contains(textLower, word) {
			professionalCount++
		}
	}
	professional := float64(professionalCount * 20)

	return weightedScore(
		weightedTerm{0.2, wordScore},
		weightedTerm{0.3, readability},
		weightedTerm{0.25, achievements},
		weightedTerm{0.25, professional},
	)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
