package types

// EquityCoverage records one document's equity_bias coverage in the
// keyword-audit equity summary.
type EquityCoverage struct {
	Title           string   `json:"title"`
	Score           float64  `json:"score"`
	HasQuantitative bool     `json:"has_quantitative"`
	EvidenceCount   int      `json:"evidence_count"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// EquityBestPractice is a document with strong equity coverage
// (score >= 0.7).
type EquityBestPractice struct {
	DocID         string   `json:"doc_id"`
	Title         string   `json:"title"`
	Score         float64  `json:"score"`
	KeywordsFound []string `json:"keywords_found"`
}

// EquityCriticalGap is an artifact with near-absent equity coverage.
type EquityCriticalGap struct {
	DocID      string  `json:"doc_id"`
	Title      string  `json:"title"`
	Score      float64 `json:"score"`
	HasAnyData bool    `json:"has_any_data"`
}

// EquitySummary is the corpus-wide equity_bias analysis built from
// keyword-audit scores.
type EquitySummary struct {
	Category             string                    `json:"category"`
	TotalDocsAnalyzed    int                       `json:"total_docs_analyzed"`
	DocsWithCoverage     int                       `json:"docs_with_equity_coverage"`
	DocsWithQuantitative int                       `json:"docs_with_quantitative_equity"`
	CoverageByDoc        map[string]EquityCoverage `json:"coverage_by_doc"`
	BestPractices        []EquityBestPractice      `json:"best_practices"`
	CriticalGaps         []EquityCriticalGap       `json:"critical_gaps"`
}

// CharacteristicCoverage records keyword evidence for one protected
// characteristic group.
type CharacteristicCoverage struct {
	Present       bool     `json:"present"`
	MentionCount  int      `json:"mention_count"`
	KeywordsFound []string `json:"keywords_found"`
}

// CharacteristicSummary rolls up protected-characteristic coverage.
type CharacteristicSummary struct {
	TotalCharacteristics   int     `json:"total_characteristics"`
	CoveredCharacteristics int     `json:"covered_characteristics"`
	CoveragePercentage     float64 `json:"coverage_percentage"`
}

// IntersectionalChunk is a chunk where two or more protected
// characteristic groups co-occur.
type IntersectionalChunk struct {
	ChunkID         string   `json:"chunk_id"`
	Characteristics []string `json:"characteristics"`
	TextPreview     string   `json:"text_preview"`
}

// IntersectionalAnalysis describes intersectional equity coverage for
// a document.
type IntersectionalAnalysis struct {
	HasAnalysis      bool                  `json:"has_intersectional_analysis"`
	ExplicitLanguage bool                  `json:"explicit_intersectional_language"`
	ChunkCount       int                   `json:"intersectional_chunk_count"`
	Chunks           []IntersectionalChunk `json:"intersectional_chunks"`
	Assessment       string                `json:"assessment"`
}

// MetricDetection records phrase evidence for one fairness-metric
// family.
type MetricDetection struct {
	Present       bool     `json:"present"`
	PatternsFound []string `json:"patterns_found"`
}

// FairnessMetricSummary rolls up fairness-metric family detection.
type FairnessMetricSummary struct {
	TotalMetricTypes   int     `json:"total_metric_types"`
	MetricsMentioned   int     `json:"metrics_mentioned"`
	MetricsWithNumbers int     `json:"metrics_with_quantitative_data"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// FairnessMetrics is the fairness-metric section of an equity
// analysis.
type FairnessMetrics struct {
	Detected   map[string]MetricDetection `json:"metrics_detected"`
	Summary    FairnessMetricSummary      `json:"summary"`
	Assessment string                     `json:"assessment"`
}

// EquityChunkSample is an evidence chunk reference kept for
// verification.
type EquityChunkSample struct {
	ChunkID   string `json:"chunk_id"`
	ChunkType string `json:"chunk_type,omitempty"`
	Preview   string `json:"preview"`
}

// QuantitativeEvidence describes whether equity claims are backed by
// numbers, and in particular by tables.
type QuantitativeEvidence struct {
	HasEvidence        bool                `json:"has_quantitative_evidence"`
	QuantitativeChunks int                 `json:"quantitative_equity_chunks"`
	EquityTables       int                 `json:"equity_tables"`
	SampleChunks       []EquityChunkSample `json:"sample_chunks"`
	Assessment         string              `json:"assessment"`
}

// MitigationAnalysis describes bias mitigation strategy coverage.
type MitigationAnalysis struct {
	HasStrategies bool                `json:"has_mitigation_strategies"`
	KeywordsFound []string            `json:"mitigation_keywords_found"`
	ChunkCount    int                 `json:"mitigation_chunk_count"`
	Chunks        []EquityChunkSample `json:"mitigation_chunks"`
	Assessment    string              `json:"assessment"`
}

// BestPracticeSummary rolls up best-practice pattern detection.
type BestPracticeSummary struct {
	TotalBestPractices  int     `json:"total_best_practices"`
	PracticesFollowed   int     `json:"practices_followed"`
	AdherencePercentage float64 `json:"adherence_percentage"`
}

// BestPractices is the best-practice section of an equity analysis.
type BestPractices struct {
	Detected   map[string]MetricDetection `json:"practices_detected"`
	Summary    BestPracticeSummary        `json:"summary"`
	Assessment string                     `json:"assessment"`
}

// EquityAnalysis is the full enhanced equity analysis of one document,
// independent of the keyword-audit coverage scores.
type EquityAnalysis struct {
	DocID             string                            `json:"doc_id"`
	Title             string                            `json:"title"`
	EquityScore       float64                           `json:"equity_score"`
	Characteristics   map[string]CharacteristicCoverage `json:"protected_characteristics"`
	CharacteristicSum CharacteristicSummary             `json:"characteristic_summary"`
	Intersectional    IntersectionalAnalysis            `json:"intersectional_analysis"`
	FairnessMetrics   FairnessMetrics                   `json:"fairness_metrics"`
	Quantitative      QuantitativeEvidence              `json:"quantitative_evidence"`
	Mitigation        MitigationAnalysis                `json:"mitigation_strategies"`
	BestPractices     BestPractices                     `json:"best_practices"`
	OverallAssessment string                            `json:"overall_assessment"`
	Recommendations   []string                          `json:"recommendations"`
}

// EquityDocRank is a leader/laggard entry in an equity comparison.
type EquityDocRank struct {
	Title       string  `json:"title"`
	EquityScore float64 `json:"equity_score"`
	Assessment  string  `json:"assessment"`
}

// EquityCommonGap counts how many documents share an equity gap.
type EquityCommonGap struct {
	Gap          string  `json:"gap"`
	AffectedDocs int     `json:"affected_docs"`
	Percentage   float64 `json:"percentage"`
}

// EquityComparison compares enhanced equity analyses across documents.
type EquityComparison struct {
	TotalDocuments     int               `json:"total_documents"`
	BestEquityDocs     []EquityDocRank   `json:"best_equity_docs"`
	WorstEquityDocs    []EquityDocRank   `json:"worst_equity_docs"`
	CommonGaps         []EquityCommonGap `json:"common_gaps"`
	AverageEquityScore float64           `json:"average_equity_score"`
}
