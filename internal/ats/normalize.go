package ats

import "strings"

// asciiPunctuation is the set of characters stripped before word tokenization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// splitSentences splits text on runs of sentence terminators, discarding
// empty or whitespace-only fragments.
func splitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// extractWords strips punctuation from the text and splits on whitespace.
// The caller is expected to pass lower-cased text.
func extractWords(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !strings.ContainsRune(asciiPunctuation, r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// sentenceWordCount counts whitespace-separated tokens in a sentence.
func sentenceWordCount(sentence string) int {
	return len(strings.Fields(sentence))
}
