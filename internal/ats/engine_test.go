package ats

import (
	"reflect"
	"strings"
	"testing"

	"resumescan/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | 555-123-4567

Summary
Software engineer responsible for scalable services.

Experience
Developed and implemented Python services, improved latency by 30%.
Managed a team of 5 engineers and increased deployment frequency by 40%.

Education
B.S. Computer Science

Skills
Python, SQL, JavaScript, Machine Learning

Projects
Created a data analysis pipeline with pandas.

Certifications
AWS Certified

Achievements
Achieved 99% uptime across services.

Awards
Engineer of the year.

Objective
Keep growing.`

func TestAnalyzeScoreBounds(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"punctuation only", "... !!! ???"},
		{"single word", "resume"},
		{"full resume", sampleResume},
		{"very long", strings.Repeat("word ", 5000)},
		{"shouting", "AAAA BBBB CCCC DDDD EEEE FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.Analyze(tt.text)
			scores := []int{
				report.OverallScore,
				report.CategoryScores.KeywordsSkills,
				report.CategoryScores.Formatting,
				report.CategoryScores.ContentQuality,
				report.CategoryScores.StructureOrganization,
			}
			for i, score := range scores {
				if score < 0 || score > 100 {
					t.Errorf("score %d out of bounds: %d", i, score)
				}
			}
		})
	}
}

func TestAnalyzeOverallIsFlooredMean(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	for _, text := range []string{"", sampleResume, "short text with skills: python sql"} {
		report := engine.Analyze(text)
		sum := report.CategoryScores.KeywordsSkills +
			report.CategoryScores.Formatting +
			report.CategoryScores.ContentQuality +
			report.CategoryScores.StructureOrganization
		if want := sum / 4; report.OverallScore != want {
			t.Errorf("overall = %d, want %d (floored mean of %+v)", report.OverallScore, want, report.CategoryScores)
		}
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	report := engine.Analyze("")

	if report.CategoryScores.KeywordsSkills != 0 {
		t.Errorf("keywords = %d, want 0 for zero words", report.CategoryScores.KeywordsSkills)
	}
	// 100 minus missing email and missing phone.
	if report.CategoryScores.Formatting != 80 {
		t.Errorf("formatting = %d, want 80", report.CategoryScores.Formatting)
	}
	if report.CategoryScores.ContentQuality != 0 {
		t.Errorf("content = %d, want 0", report.CategoryScores.ContentQuality)
	}
	// 0 sections + 50-point contact term + 30-point flow term, weighted.
	if report.CategoryScores.StructureOrganization != 16 {
		t.Errorf("structure = %d, want 16", report.CategoryScores.StructureOrganization)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	first := engine.Analyze(sampleResume)
	second := engine.Analyze(sampleResume)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input produced different reports")
	}
}

func TestAnalyzeAllSectionsScenario(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	report := engine.Analyze(sampleResume)

	// All 9 sections, experience and education present, email in the first
	// quarter: every structure term maxes out.
	if report.CategoryScores.StructureOrganization != 100 {
		t.Errorf("structure = %d, want 100", report.CategoryScores.StructureOrganization)
	}
	// Email and phone present, no disallowed characters, no long lines.
	if report.CategoryScores.Formatting < 80 {
		t.Errorf("formatting = %d, want >= 80", report.CategoryScores.Formatting)
	}
}

func TestQuantifiedAchievementsDoubleWeightsPercentages(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	// Three percentage tokens and no other digits. Achievements term is
	// 3*2*10 = 60; word count 3 contributes 1.5 points weighted, the single
	// 3-word sentence contributes 9 readability points weighted, and the
	// achievements term contributes 15, flooring to 24.
	report := engine.Analyze("10% 20% 30%")
	if report.CategoryScores.ContentQuality != 24 {
		t.Errorf("content = %d, want 24", report.CategoryScores.ContentQuality)
	}
}

func TestFormattingContactMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	base := "Experienced developer who managed several projects"
	without := engine.Analyze(base).CategoryScores.Formatting
	with := engine.Analyze(base + "\njane@example.com 555-123-4567").CategoryScores.Formatting

	if with < without {
		t.Errorf("adding contact info lowered formatting: %d -> %d", without, with)
	}
}

func TestGenerateRecommendationsThresholds(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	tests := []struct {
		name          string
		scores        types.CategoryScores
		wantCount     int
		wantSeverity  types.Severity
		checkSeverity bool
	}{
		{
			name:      "all categories at 70 emit nothing",
			scores:    types.CategoryScores{KeywordsSkills: 70, Formatting: 70, ContentQuality: 70, StructureOrganization: 70},
			wantCount: 0,
		},
		{
			name:          "score 69 emits medium",
			scores:        types.CategoryScores{KeywordsSkills: 69, Formatting: 100, ContentQuality: 100, StructureOrganization: 100},
			wantCount:     1,
			wantSeverity:  types.SeverityMedium,
			checkSeverity: true,
		},
		{
			name:          "score 50 is medium",
			scores:        types.CategoryScores{KeywordsSkills: 50, Formatting: 100, ContentQuality: 100, StructureOrganization: 100},
			wantCount:     1,
			wantSeverity:  types.SeverityMedium,
			checkSeverity: true,
		},
		{
			name:          "score 49 is high",
			scores:        types.CategoryScores{KeywordsSkills: 49, Formatting: 100, ContentQuality: 100, StructureOrganization: 100},
			wantCount:     1,
			wantSeverity:  types.SeverityHigh,
			checkSeverity: true,
		},
		{
			name:          "content quality stays medium even below 50",
			scores:        types.CategoryScores{KeywordsSkills: 100, Formatting: 100, ContentQuality: 10, StructureOrganization: 100},
			wantCount:     1,
			wantSeverity:  types.SeverityMedium,
			checkSeverity: true,
		},
		{
			name:      "all low emits one per category",
			scores:    types.CategoryScores{KeywordsSkills: 10, Formatting: 10, ContentQuality: 10, StructureOrganization: 10},
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := engine.generateRecommendations(tt.scores)
			if len(recs) != tt.wantCount {
				t.Fatalf("got %d recommendations, want %d", len(recs), tt.wantCount)
			}
			if tt.checkSeverity && recs[0].Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", recs[0].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestGenerateRecommendationsFixedOrder(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	recs := engine.generateRecommendations(types.CategoryScores{})

	wantOrder := []string{categoryKeywords, categoryFormatting, categoryContent, categoryStructure}
	if len(recs) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if recs[i].Category != want {
			t.Errorf("recommendation %d category = %q, want %q", i, recs[i].Category, want)
		}
	}
}

func TestCriticalIssuesCountsHighOnly(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	report := engine.Analyze("")

	high := 0
	for _, rec := range report.Recommendations {
		if rec.Severity == types.SeverityHigh {
			high++
		}
	}
	if report.CriticalIssues != high {
		t.Errorf("critical issues = %d, want %d", report.CriticalIssues, high)
	}
	if report.TotalIssues != len(report.Recommendations) {
		t.Errorf("total issues = %d, want %d", report.TotalIssues, len(report.Recommendations))
	}
}

func TestOptimizationTips(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	tests := []struct {
		name   string
		scores types.CategoryScores
		want   int
	}{
		{"high scores get baseline only", types.CategoryScores{KeywordsSkills: 90, ContentQuality: 90}, 5},
		{"low keywords adds one", types.CategoryScores{KeywordsSkills: 50, ContentQuality: 90}, 6},
		{"low keywords and content adds two", types.CategoryScores{KeywordsSkills: 50, ContentQuality: 50}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.generateOptimizationTips(tt.scores); len(got) != tt.want {
				t.Errorf("got %d tips, want %d", len(got), tt.want)
			}
		})
	}
}

func TestIdentifyStrengths(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	t.Run("content derived strengths", func(t *testing.T) {
		strengths := engine.identifyStrengths("grew revenue 25%\njane@example.com 555-123-4567", types.CategoryScores{})
		want := []string{
			"Includes quantified achievements with percentages",
			"Complete contact information provided",
		}
		if !reflect.DeepEqual(strengths, want) {
			t.Errorf("strengths = %v, want %v", strengths, want)
		}
	})

	t.Run("category strengths at 80", func(t *testing.T) {
		strengths := engine.identifyStrengths("plain text", types.CategoryScores{KeywordsSkills: 80})
		if len(strengths) != 1 || !strings.Contains(strengths[0], "keyword") {
			t.Errorf("unexpected strengths: %v", strengths)
		}
	})
}
