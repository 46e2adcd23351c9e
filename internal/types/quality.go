package types

// Quality tiers assigned from the overall quality score.
const (
	TierExcellent        = "excellent"
	TierGood             = "good"
	TierFair             = "fair"
	TierPoor             = "poor"
	TierInsufficientData = "insufficient_data"
)

// QualityScore is a multi-dimensional quality assessment of a text
// span. Scores are in [0,1] except InformationDensity, which is facts
// per 100 words.
type QualityScore struct {
	OverallScore       float64  `json:"overall_score"`
	SubstantiveScore   float64  `json:"substantive_score"`
	PromotionalScore   float64  `json:"promotional_score"`
	SpecificityScore   float64  `json:"specificity_score"`
	InformationDensity float64  `json:"information_density"`
	EvidenceBasedScore float64  `json:"evidence_based_score"`
	QualityTier        string   `json:"quality_tier"`
	Flags              []string `json:"flags"`
	Recommendations    []string `json:"recommendations"`
}

// DocumentQualityLevel holds document-level quality statistics.
// StdDev is the sample standard deviation and is 0 when fewer than two
// chunks were analyzed.
type DocumentQualityLevel struct {
	MeanQualityScore     float64 `json:"mean_quality_score"`
	MedianQualityScore   float64 `json:"median_quality_score"`
	QualityStdDev        float64 `json:"quality_std_dev"`
	MeanSubstantiveScore float64 `json:"mean_substantive_score"`
	MeanPromotionalScore float64 `json:"mean_promotional_score"`
	ChunksAnalyzed       int     `json:"chunks_analyzed"`
}

// QualityIssue counts how often one quality flag was raised across a
// document's chunks.
type QualityIssue struct {
	Flag           string `json:"flag"`
	Frequency      int    `json:"frequency"`
	AffectedChunks int    `json:"affected_chunks"`
}

// PoorQualityChunk references a low-tier chunk for follow-up.
type PoorQualityChunk struct {
	ChunkID string   `json:"chunk_id"`
	Score   float64  `json:"score"`
	Flags   []string `json:"flags"`
}

// DocumentQuality aggregates per-chunk quality scores for one
// document.
type DocumentQuality struct {
	DocumentLevel     DocumentQualityLevel `json:"document_level"`
	TierDistribution  map[string]int       `json:"quality_distribution"`
	CommonIssues      []QualityIssue       `json:"common_issues"`
	PoorQualityChunks []PoorQualityChunk   `json:"poor_quality_chunks"`
	Recommendations   []string             `json:"recommendations"`
}

// QualityRank is one document's entry in a cross-document quality
// ranking.
type QualityRank struct {
	DocID           string  `json:"doc_id"`
	MeanQuality     float64 `json:"mean_quality"`
	MeanSubstantive float64 `json:"mean_substantive"`
	MeanPromotional float64 `json:"mean_promotional"`
}

// QualityStatistics summarizes mean quality across compared documents.
type QualityStatistics struct {
	Best   float64 `json:"best"`
	Worst  float64 `json:"worst"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// QualityComparison compares document-level quality across documents.
type QualityComparison struct {
	Rankings   []QualityRank     `json:"rankings"`
	Statistics QualityStatistics `json:"quality_statistics"`
	Insights   []string          `json:"insights"`
}
