package ats

import "math"

// weightedTerm pairs a sub-score with its weight in a category total.
type weightedTerm struct {
	weight float64
	score  float64
}

// weightedScore clamps each sub-score to [0,100], sums the weighted terms
// and returns the floored total capped at 100.
func weightedScore(terms ...weightedTerm) int {
	var total float64
	for _, t := range terms {
		total += t.weight * clamp(t.score, 0, 100)
	}
	score := int(math.Floor(total))
	if score > 100 {
		return 100
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
