package ai

// Operation type names used for service construction, circuit breaker
// naming and prompt lookup.
const (
	OpDetails   = "details"
	OpNarrative = "narrative"
	OpInsights  = "insights"
)

// OperationPrompts holds the system instruction and user prompt template
// for a single AI operation. User templates are fmt format strings.
type OperationPrompts struct {
	System string
	User   string
}

// DefaultPrompts provides the built-in prompts per operation. Configured
// prompts (inline or loaded from files) take precedence.
var DefaultPrompts = map[string]OperationPrompts{
	OpDetails: {
		System: `You are an expert resume parser. Extract information accurately and return only valid JSON. Never invent details that are not present in the resume.`,
		User: `Analyze the following resume text and extract the personal details.

Resume Text:
-----
%s
-----

Extract these fields:
- name: Full name of the person
- email: Email address
- phone: Phone or contact number
- currentCompany: Current company or most recent company
- jobRole: Current job title or most recent role
- lastEducation: Most recent education (degree, institution, year)

If any information is not found, use "Not specified" as the value.`,
	},
	OpNarrative: {
		System: `You are an expert career coach and resume writer. Provide insightful, actionable advice grounded in the resume content.`,
		User: `Analyze this resume and provide insights based on its ATS compatibility score of %d/100.

Resume Text:
-----
%s
-----

Provide:
1. A concise professional summary (2-3 sentences) highlighting the candidate's key strengths and experience.
2. Exactly three specific, actionable suggestions for improving the resume and its ATS score.

Make suggestions specific and practical, taking the score into account.`,
	},
	OpInsights: {
		System: `You are an expert ATS and resume optimization specialist. Base your analysis on the category scores and the actual resume content.`,
		User: `Analyze this resume with the following ATS category scores:
- Keywords & Skills: %d/100
- Formatting: %d/100
- Content Quality: %d/100
- Structure & Organization: %d/100

Resume Text:
-----
%s
-----

Provide exactly three strengths, three weaknesses and three specific recommendations. Make each point specific and actionable, grounded in the scores and the resume content.`,
	},
}

// resolvePrompt selects the prompt string by priority: configured content
// (inline config wins over file content at load time) then the built-in
// default.
func resolvePrompt(fromConfig, fromDefault string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
