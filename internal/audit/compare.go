package audit

import (
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// CompareDocuments computes per-category coverage statistics across
// multiple documents. Categories absent from every document are
// omitted. The best/worst document scan uses strict inequalities, so
// the first document reaching the extreme wins ties and a category
// scoring zero everywhere reports no best document.
func CompareDocuments(docScores map[string]map[string]types.CategoryScore, schema types.CategorySchema) map[string]types.ComparisonStats {
	allCategories := make(map[string]struct{})
	for _, scores := range docScores {
		for catID := range scores {
			allCategories[catID] = struct{}{}
		}
	}

	// Stable iteration keeps tie-breaking deterministic across runs.
	docIDs := sortedDocIDs(docScores)

	comparison := make(map[string]types.ComparisonStats)

	for catID := range allCategories {
		var values []float64
		bestDoc, worstDoc := "", ""
		bestScore, worstScore := 0.0, 1.0

		for _, docID := range docIDs {
			cs, ok := docScores[docID][catID]
			if !ok {
				continue
			}
			values = append(values, cs.Score)

			if cs.Score > bestScore {
				bestScore = cs.Score
				bestDoc = docID
			}
			if cs.Score < worstScore {
				worstScore = cs.Score
				worstDoc = docID
			}
		}

		if len(values) == 0 {
			continue
		}

		comparison[catID] = types.ComparisonStats{
			CategoryName: schema.Name(catID),
			MeanCoverage: mean(values),
			MinCoverage:  minOf(values),
			MaxCoverage:  maxOf(values),
			BestDoc:      bestDoc,
			WorstDoc:     worstDoc,
			Variance:     populationVariance(values),
			DocCount:     len(values),
		}
	}

	return comparison
}

func sortedDocIDs(docScores map[string]map[string]types.CategoryScore) []string {
	ids := make([]string, 0, len(docScores))
	for id := range docScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}
