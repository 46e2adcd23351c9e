package pipeline

import (
	"math"
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// problematicCategoryLimit caps the most-problematic list in the gap
// summary roll-up.
const problematicCategoryLimit = 3

// GenerateGapSummary aggregates per-document gap analyses to surface
// systematic documentation failures. docOrder fixes the iteration
// order over audits so severity lists and affected-docs lists are
// deterministic.
func GenerateGapSummary(audits map[string]types.AuditReport, docOrder []string) types.GapSummary {
	gapsBySeverity := map[string][]types.GapInstance{
		types.SeverityCritical: {},
		types.SeverityHigh:     {},
		types.SeverityMedium:   {},
	}

	frequency := make(map[string]types.CategoryGapFrequency)
	gapSizeSums := make(map[string]float64)

	for _, docID := range docOrder {
		audit, ok := audits[docID]
		if !ok {
			continue
		}

		catIDs := make([]string, 0, len(audit.GapAnalysis))
		for catID := range audit.GapAnalysis {
			catIDs = append(catIDs, catID)
		}
		sort.Strings(catIDs)

		for _, catID := range catIDs {
			gap := audit.GapAnalysis[catID]

			freq, ok := frequency[catID]
			if !ok {
				freq = types.CategoryGapFrequency{CategoryName: gap.Name}
			}
			freq.Count++
			freq.AffectedDocs = append(freq.AffectedDocs, docID)
			frequency[catID] = freq
			gapSizeSums[catID] += gap.GapSize

			if _, tracked := gapsBySeverity[gap.Severity]; tracked {
				gapsBySeverity[gap.Severity] = append(gapsBySeverity[gap.Severity], types.GapInstance{
					DocID:          docID,
					Category:       gap.Name,
					CategoryID:     catID,
					GapSize:        gap.GapSize,
					Recommendation: gap.Recommendation,
				})
			}
		}
	}

	for catID, freq := range frequency {
		freq.AvgGapSize = round3(gapSizeSums[catID] / float64(freq.Count))
		frequency[catID] = freq
	}

	return types.GapSummary{
		GapsBySeverity: gapsBySeverity,
		CategoryFreq:   frequency,
		Summary: types.GapSummaryTotals{
			TotalCriticalGaps:         len(gapsBySeverity[types.SeverityCritical]),
			TotalHighGaps:             len(gapsBySeverity[types.SeverityHigh]),
			TotalMediumGaps:           len(gapsBySeverity[types.SeverityMedium]),
			MostProblematicCategories: mostProblematic(frequency),
		},
	}
}

// mostProblematic ranks gapped categories by occurrence count, then by
// average gap size, worst first.
func mostProblematic(frequency map[string]types.CategoryGapFrequency) []types.CategoryGapFrequency {
	catIDs := make([]string, 0, len(frequency))
	for catID := range frequency {
		catIDs = append(catIDs, catID)
	}
	sort.Strings(catIDs)

	sort.SliceStable(catIDs, func(i, j int) bool {
		a, b := frequency[catIDs[i]], frequency[catIDs[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.AvgGapSize > b.AvgGapSize
	})

	limit := problematicCategoryLimit
	if len(catIDs) < limit {
		limit = len(catIDs)
	}

	worst := make([]types.CategoryGapFrequency, 0, limit)
	for _, catID := range catIDs[:limit] {
		worst = append(worst, frequency[catID])
	}
	return worst
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
