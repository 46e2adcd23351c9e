package types

// Gap severity tiers, ordered from worst to least concerning.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Gap describes a category whose coverage score fell below the audit
// threshold. GapSize is threshold minus score, always >= 0. Equity
// gaps are never emitted below SeverityHigh.
type Gap struct {
	CategoryID          string   `json:"category_id"`
	Name                string   `json:"name"`
	Severity            string   `json:"severity"`
	CoverageScore       float64  `json:"coverage_score"`
	Importance          float64  `json:"importance"`
	GapSize             float64  `json:"gap_size"`
	HasQuantitativeData bool     `json:"has_quantitative_data"`
	TableEvidence       int      `json:"table_evidence"`
	TextEvidence        int      `json:"text_evidence"`
	MissingQuestions    []string `json:"missing_question_templates,omitempty"`
	Recommendation      string   `json:"recommendation"`
}
