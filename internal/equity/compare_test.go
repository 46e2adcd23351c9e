package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func strongAnalysis(title string, score float64) types.EquityAnalysis {
	return types.EquityAnalysis{
		Title:       title,
		EquityScore: score,
		Intersectional: types.IntersectionalAnalysis{
			HasAnalysis: true,
		},
		FairnessMetrics: types.FairnessMetrics{
			Summary: types.FairnessMetricSummary{MetricsMentioned: 2},
		},
		Quantitative: types.QuantitativeEvidence{
			HasEvidence: true,
		},
		OverallAssessment: "Good equity documentation with room for improvement",
	}
}

func TestCompareEquityAnalyses_RankingAndAverage(t *testing.T) {
	analyses := []types.EquityAnalysis{
		strongAnalysis("B", 0.7),
		strongAnalysis("D", 0.1),
		strongAnalysis("A", 0.9),
		strongAnalysis("C", 0.5),
	}

	comparison := CompareEquityAnalyses(analyses)

	assert.Equal(t, 4, comparison.TotalDocuments)
	assert.InDelta(t, 0.55, comparison.AverageEquityScore, 1e-9)

	require.Len(t, comparison.BestEquityDocs, 3)
	assert.Equal(t, "A", comparison.BestEquityDocs[0].Title)
	assert.Equal(t, "B", comparison.BestEquityDocs[1].Title)
	assert.Equal(t, "C", comparison.BestEquityDocs[2].Title)

	require.Len(t, comparison.WorstEquityDocs, 3)
	assert.Equal(t, "D", comparison.WorstEquityDocs[2].Title)
}

func TestCompareEquityAnalyses_CommonGapsSortedByFrequency(t *testing.T) {
	withGaps := func(title string, missingMetrics bool) types.EquityAnalysis {
		a := strongAnalysis(title, 0.4)
		a.Mitigation.HasStrategies = false
		if missingMetrics {
			a.FairnessMetrics.Summary.MetricsMentioned = 0
		}
		return a
	}

	analyses := []types.EquityAnalysis{
		withGaps("A", true),
		withGaps("B", true),
		withGaps("C", false),
		withGaps("D", false),
	}

	comparison := CompareEquityAnalyses(analyses)

	require.Len(t, comparison.CommonGaps, 2)
	assert.Equal(t, "No mitigation strategies", comparison.CommonGaps[0].Gap)
	assert.Equal(t, 4, comparison.CommonGaps[0].AffectedDocs)
	assert.InDelta(t, 100.0, comparison.CommonGaps[0].Percentage, 1e-9)
	assert.Equal(t, "No formal fairness metrics", comparison.CommonGaps[1].Gap)
	assert.InDelta(t, 50.0, comparison.CommonGaps[1].Percentage, 1e-9)
}

func TestCompareEquityAnalyses_FewerDocsThanLeaderboard(t *testing.T) {
	analyses := []types.EquityAnalysis{
		strongAnalysis("Only", 0.6),
	}

	comparison := CompareEquityAnalyses(analyses)

	assert.Len(t, comparison.BestEquityDocs, 1)
	assert.Len(t, comparison.WorstEquityDocs, 1)
	assert.InDelta(t, 0.6, comparison.AverageEquityScore, 1e-9)
}

func TestCompareEquityAnalyses_Empty(t *testing.T) {
	comparison := CompareEquityAnalyses(nil)
	assert.Equal(t, 0, comparison.TotalDocuments)
	assert.Empty(t, comparison.CommonGaps)
}
