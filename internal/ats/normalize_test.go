package ats

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Managed a team", []string{"Managed a team"}},
		{"terminators", "Led projects. Improved uptime! Why not?", []string{"Led projects", "Improved uptime", "Why not"}},
		{"runs collapse", "Done... Next?!", []string{"Done", "Next"}},
		{"whitespace fragments dropped", "First.   . Second.", []string{"First", "Second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"plain", "managed five teams", []string{"managed", "five", "teams"}},
		{"punctuation stripped", "node.js, c++ (go!)", []string{"nodejs", "c", "go"}},
		{"percent stripped", "grew 25%", []string{"grew", "25"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractWords(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
