package types

// Category is a single governance category definition from the
// category schema file. Keywords are matched case-insensitively as
// substrings of chunk text. ImportanceWeight is in [0,1]; higher means
// more policy-critical.
type Category struct {
	HumanNameEN       string   `json:"human_name_en" validate:"required"`
	HumanNamePT       string   `json:"human_name_pt,omitempty"`
	DescriptionEN     string   `json:"description_en,omitempty"`
	DescriptionPT     string   `json:"description_pt,omitempty"`
	GovernanceAxis    string   `json:"governance_axis,omitempty"`
	Keywords          []string `json:"keywords"`
	ImportanceWeight  float64  `json:"importance_weight" validate:"gte=0,lte=1"`
	QuestionTemplates []string `json:"question_templates_en,omitempty"`
	Examples          []string `json:"examples,omitempty"`
}

// CategorySchema maps category id (e.g. "equity_bias") to its
// definition. Loaded once per run and treated as read-only.
type CategorySchema map[string]Category

// DefaultImportanceWeight is assumed for categories missing from the
// schema. Lookups never fail; the auditors favor lenient defaults.
const DefaultImportanceWeight = 0.5

// Name returns the English display name for a category, falling back
// to the category id when the schema has no entry.
func (s CategorySchema) Name(categoryID string) string {
	if cat, ok := s[categoryID]; ok && cat.HumanNameEN != "" {
		return cat.HumanNameEN
	}
	return categoryID
}

// Importance returns the importance weight for a category, defaulting
// to DefaultImportanceWeight for unknown categories.
func (s CategorySchema) Importance(categoryID string) float64 {
	if cat, ok := s[categoryID]; ok {
		return cat.ImportanceWeight
	}
	return DefaultImportanceWeight
}

// Questions returns the question templates for a category, or nil for
// unknown categories.
func (s CategorySchema) Questions(categoryID string) []string {
	if cat, ok := s[categoryID]; ok {
		return cat.QuestionTemplates
	}
	return nil
}
