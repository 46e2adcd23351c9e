package types

// Risk flag values for per-category summaries.
const (
	RiskFlagHighGap   = "high_gap"
	RiskFlagMediumGap = "medium_gap"
	RiskFlagOK        = "ok"
)

// CategorySummary is an evidence-based summary of one category's
// coverage within a document. Every metric is traceable to actual
// chunks; EvidenceChunks carries a sample of matched chunk ids.
type CategorySummary struct {
	CategoryID       string   `json:"category_id"`
	NameEN           string   `json:"name_en"`
	GovernanceAxis   string   `json:"governance_axis,omitempty"`
	ImportanceWeight float64  `json:"importance_weight"`
	CoverageScore    float64  `json:"coverage_score"`
	HitCount         int      `json:"hit_count"`
	MatchedKeywords  []string `json:"matched_keywords"`
	TableHits        int      `json:"table_hits"`
	TextHits         int      `json:"text_hits"`
	RiskFlag         string   `json:"risk_flag"`
	MissingQuestions []string `json:"missing_questions_en"`
	EvidenceChunks   []string `json:"evidence_chunks"`
}

// GapHighlight is a gap entry in the report's critical/high lists.
// These lists use their own thresholds, separate from the risk flags
// in CategorySummary.
type GapHighlight struct {
	Category        string   `json:"category"`
	Score           float64  `json:"score"`
	Importance      float64  `json:"importance"`
	MatchedKeywords []string `json:"matched_keywords"`
	EvidenceCount   int      `json:"evidence_count"`
}

// Strength is a category with strong coverage (score >= 0.6).
type Strength struct {
	Category              string   `json:"category"`
	Score                 float64  `json:"score"`
	EvidenceCount         int      `json:"evidence_count"`
	HasTables             bool     `json:"has_tables"`
	MatchedKeywordsSample []string `json:"matched_keywords_sample"`
}

// DocumentInfo summarizes the audited document within a report.
type DocumentInfo struct {
	DocID       string         `json:"doc_id"`
	Title       string         `json:"title"`
	Year        int            `json:"year,omitempty"`
	DocType     string         `json:"doc_type,omitempty"`
	TotalChunks int            `json:"total_chunks"`
	ChunkTypes  map[string]int `json:"chunk_types"`
}

// Coverage is the report's top-level coverage rollup.
type Coverage struct {
	OverallScore        float64 `json:"overall_score"`
	CategoriesEvaluated int     `json:"categories_evaluated"`
}

// ReportGaps holds the two parallel gap lists of an audit report.
type ReportGaps struct {
	Critical []GapHighlight `json:"critical"`
	High     []GapHighlight `json:"high"`
}

// AuditReport is the complete evidence-based audit of one document.
type AuditReport struct {
	Document        DocumentInfo               `json:"document"`
	Coverage        Coverage                   `json:"coverage"`
	Gaps            ReportGaps                 `json:"gaps"`
	Strengths       []Strength                 `json:"strengths"`
	CategoryDetails map[string]CategorySummary `json:"category_details"`
	GapAnalysis     map[string]Gap             `json:"gap_analysis,omitempty"`
}

// ArtifactExample records one artifact's coverage of a category in a
// framework-vs-artifact comparison, for traceability.
type ArtifactExample struct {
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	HitCount  int     `json:"hit_count"`
	HasTables bool    `json:"has_tables"`
}

// CategoryComparison compares framework and artifact coverage of one
// category. Group means are nil when the group has no data for the
// category; Gap treats a missing mean as 0.
type CategoryComparison struct {
	CategoryName     string                     `json:"category_name"`
	FrameworkMean    *float64                   `json:"framework_mean"`
	ArtifactMean     *float64                   `json:"artifact_mean"`
	Gap              float64                    `json:"gap"`
	FrameworkCount   int                        `json:"framework_count"`
	ArtifactCount    int                        `json:"artifact_count"`
	ArtifactExamples map[string]ArtifactExample `json:"artifact_examples"`
}

// DocGroup lists the documents on one side of a framework-vs-artifact
// comparison.
type DocGroup struct {
	DocCount int      `json:"doc_count"`
	DocIDs   []string `json:"doc_ids"`
}

// FrameworkComparison is the full framework-vs-artifact coverage
// comparison across all categories.
type FrameworkComparison struct {
	Frameworks DocGroup                      `json:"frameworks"`
	Artifacts  DocGroup                      `json:"artifacts"`
	Categories map[string]CategoryComparison `json:"category_comparison"`
}
