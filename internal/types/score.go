package types

// CategoryScore is the audit result for one document against one
// governance category. Derived entirely from chunks plus the category
// schema; recomputed on every audit run and never persisted as a
// source of truth.
//
// Invariants: HitCount == len(MatchedChunks); TableHits + TextHits ==
// HitCount when every chunk type is exactly "table" or not.
type CategoryScore struct {
	Score           float64  `json:"score"`
	HitCount        int      `json:"hit_count"`
	MatchedKeywords []string `json:"matched_keywords"`
	MatchedChunks   []string `json:"matched_chunks"`
	TableHits       int      `json:"table_hits"`
	TextHits        int      `json:"text_hits"`
}

// ComparisonStats summarizes one category's coverage across a set of
// documents. Variance is population variance.
type ComparisonStats struct {
	CategoryName string  `json:"category_name"`
	MeanCoverage float64 `json:"mean_coverage"`
	MinCoverage  float64 `json:"min_coverage"`
	MaxCoverage  float64 `json:"max_coverage"`
	BestDoc      string  `json:"best_doc,omitempty"`
	WorstDoc     string  `json:"worst_doc,omitempty"`
	Variance     float64 `json:"variance"`
	DocCount     int     `json:"doc_count"`
}
