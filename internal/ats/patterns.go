package ats

import "regexp"

// patterns holds the compiled regular expressions shared by the analyzers.
// Compiled once per Engine so callers pay the regexp cost at construction.
type patterns struct {
	specialChars  *regexp.Regexp
	excessiveCaps *regexp.Regexp
	phone         *regexp.Regexp
	email         *regexp.Regexp
	number        *regexp.Regexp
	percentage    *regexp.Regexp
}

func compilePatterns() patterns {
	return patterns{
		// Negated allow-list: characters outside this set count as
		// formatting hazards for ATS parsers.
		specialChars:  regexp.MustCompile("[^\\w\\s\\-.,()\\[\\]@#%&*+=|\\\\:;\"'<>?/!$^~`]"),
		excessiveCaps: regexp.MustCompile(`\b[A-Z]{4,}\b`),
		phone:         regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		email:         regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		number:        regexp.MustCompile(`\d+`),
		percentage:    regexp.MustCompile(`\d+%`),
	}
}
