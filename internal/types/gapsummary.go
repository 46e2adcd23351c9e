package types

// GapInstance is one gap occurrence in a specific document, used when
// aggregating gaps across the corpus.
type GapInstance struct {
	DocID          string  `json:"doc_id"`
	Category       string  `json:"category"`
	CategoryID     string  `json:"category_id"`
	GapSize        float64 `json:"gap_size"`
	Recommendation string  `json:"recommendation"`
}

// CategoryGapFrequency counts how often a category gapped across the
// audited documents.
type CategoryGapFrequency struct {
	CategoryName string   `json:"category_name"`
	Count        int      `json:"count"`
	AvgGapSize   float64  `json:"avg_gap_size"`
	AffectedDocs []string `json:"affected_docs"`
}

// GapSummaryTotals is the roll-up section of a gap summary.
type GapSummaryTotals struct {
	TotalCriticalGaps         int                    `json:"total_critical_gaps"`
	TotalHighGaps             int                    `json:"total_high_gaps"`
	TotalMediumGaps           int                    `json:"total_medium_gaps"`
	MostProblematicCategories []CategoryGapFrequency `json:"most_problematic_categories"`
}

// GapSummary aggregates gap analyses across documents to surface
// systematic documentation failures.
type GapSummary struct {
	GapsBySeverity map[string][]GapInstance        `json:"gaps_by_severity"`
	CategoryFreq   map[string]CategoryGapFrequency `json:"category_gap_frequency"`
	Summary        GapSummaryTotals                `json:"summary"`
}
