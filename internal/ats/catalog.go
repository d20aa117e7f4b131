package ats

// Catalog holds the reference vocabularies the analyzers match against.
// It is treated as immutable after construction; alternate vocabularies
// can be injected for testing or localization.
type Catalog struct {
	// TechnicalSkills groups domain terms by category. Matching is
	// case-insensitive substring search, so multi-word terms are allowed.
	TechnicalSkills map[string][]string

	// ActionVerbs are achievement verbs that strengthen resumes.
	ActionVerbs []string

	// ExpectedSections are the section headings an ATS looks for.
	ExpectedSections []string

	// ProfessionalWords is the vocabulary used by the professional
	// language sub-score.
	ProfessionalWords []string
}

// totalSkills returns the number of terms across all skill categories.
func (c Catalog) totalSkills() int {
	total := 0
	for _, skills := range c.TechnicalSkills {
		total += len(skills)
	}
	return total
}

// DefaultCatalog returns the standard reference vocabularies.
func DefaultCatalog() Catalog {
	return Catalog{
		TechnicalSkills: map[string][]string{
			"programming":  {"python", "java", "javascript", "c++", "sql", "html", "css", "react", "angular", "node.js"},
			"data_science": {"machine learning", "data analysis", "pandas", "numpy", "tensorflow", "pytorch", "scikit-learn"},
			"business":     {"project management", "agile", "scrum", "leadership", "strategic planning", "business analysis"},
			"design":       {"photoshop", "illustrator", "figma", "sketch", "ui/ux", "graphic design", "web design"},
			"marketing":    {"seo", "sem", "google analytics", "social media", "content marketing", "email marketing"},
		},
		ActionVerbs: []string{
			"achieved", "managed", "led", "developed", "implemented", "improved",
			"increased", "decreased", "created", "designed", "analyzed", "coordinated",
		},
		ExpectedSections: []string{
			"experience", "education", "skills", "summary", "objective",
			"projects", "certifications", "achievements", "awards",
		},
		ProfessionalWords: []string{
			"responsible", "manage", "develop", "analyze", "coordinate", "implement",
		},
	}
}
