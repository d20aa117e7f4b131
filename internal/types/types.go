package types

// ScoreResumeInput represents the input for deterministic resume scoring
type ScoreResumeInput struct {
	ResumeText string `json:"resumeText"`
}

// CategoryScores holds the four deterministic category scores, each 0-100
type CategoryScores struct {
	KeywordsSkills        int `json:"keywordsSkills"`
	Formatting            int `json:"formatting"`
	ContentQuality        int `json:"contentQuality"`
	StructureOrganization int `json:"structureOrganization"`
}

// Severity levels for recommendations
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
)

// Recommendation represents a category-specific improvement recommendation
type Recommendation struct {
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	Issue          string   `json:"issue"`
	Impact         string   `json:"impact"`
	Recommendation string   `json:"recommendation"`
}

// ScoreReport represents the full deterministic scoring output
type ScoreReport struct {
	OverallScore     int              `json:"overallScore"`
	CategoryScores   CategoryScores   `json:"categoryScores"`
	TotalIssues      int              `json:"totalIssues"`
	CriticalIssues   int              `json:"criticalIssues"`
	Recommendations  []Recommendation `json:"recommendations"`
	Strengths        []string         `json:"strengths"`
	OptimizationTips []string         `json:"optimizationTips"`
}

// PersonalDetails represents contact and background details extracted by AI.
// Fields the model cannot find are reported as "Not specified".
type PersonalDetails struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CurrentCompany string `json:"currentCompany"`
	JobRole        string `json:"jobRole"`
	LastEducation  string `json:"lastEducation"`
}

// NarrativeInput represents the input for AI narrative generation
type NarrativeInput struct {
	ResumeText   string `json:"resumeText"`
	OverallScore int    `json:"overallScore"`
}

// Narrative represents the AI-written summary and suggestions
type Narrative struct {
	ProfessionalSummary    string   `json:"professionalSummary"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

// InsightsInput represents the input for AI insight generation
type InsightsInput struct {
	ResumeText     string         `json:"resumeText"`
	CategoryScores CategoryScores `json:"categoryScores"`
}

// Insights represents AI-generated strengths, weaknesses and recommendations
type Insights struct {
	Strengths               []string `json:"strengths"`
	Weaknesses              []string `json:"weaknesses"`
	SpecificRecommendations []string `json:"specificRecommendations"`
}

// AnalyzeResumeInput represents the input for combined scoring plus AI enrichment
type AnalyzeResumeInput struct {
	ResumeText string `json:"resumeText"`
}

// AnalyzeResumeOutput represents the combined analysis. The deterministic
// report is authoritative; AI fields are additive and may be nil when the
// corresponding operation was skipped or failed.
type AnalyzeResumeOutput struct {
	Report    ScoreReport      `json:"report"`
	Details   *PersonalDetails `json:"details,omitempty"`
	Narrative *Narrative       `json:"narrative,omitempty"`
	Insights  *Insights        `json:"insights,omitempty"`
}
