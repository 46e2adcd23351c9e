package equity

import (
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// leaderboardSize bounds the best/worst document lists.
const leaderboardSize = 3

// CompareEquityAnalyses compares the equity analyses of multiple
// documents: leaders, laggards, and gaps shared across the corpus.
func CompareEquityAnalyses(analyses []types.EquityAnalysis) types.EquityComparison {
	if len(analyses) == 0 {
		return types.EquityComparison{}
	}

	sorted := make([]types.EquityAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EquityScore > sorted[j].EquityScore
	})

	best := sorted
	if len(best) > leaderboardSize {
		best = best[:leaderboardSize]
	}
	worst := sorted
	if len(worst) > leaderboardSize {
		worst = worst[len(worst)-leaderboardSize:]
	}

	type gapCount struct {
		label string
		count int
	}
	gaps := []gapCount{
		{label: "No intersectional analysis"},
		{label: "No formal fairness metrics"},
		{label: "No quantitative equity data"},
		{label: "No mitigation strategies"},
	}
	for i := range analyses {
		if !analyses[i].Intersectional.HasAnalysis {
			gaps[0].count++
		}
		if analyses[i].FairnessMetrics.Summary.MetricsMentioned == 0 {
			gaps[1].count++
		}
		if !analyses[i].Quantitative.HasEvidence {
			gaps[2].count++
		}
		if !analyses[i].Mitigation.HasStrategies {
			gaps[3].count++
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].count > gaps[j].count })

	total := len(analyses)
	var commonGaps []types.EquityCommonGap
	for _, g := range gaps {
		if g.count == 0 {
			continue
		}
		commonGaps = append(commonGaps, types.EquityCommonGap{
			Gap:          g.label,
			AffectedDocs: g.count,
			Percentage:   round1(float64(g.count) / float64(total) * 100),
		})
	}

	sum := 0.0
	for i := range analyses {
		sum += analyses[i].EquityScore
	}

	return types.EquityComparison{
		TotalDocuments:     total,
		BestEquityDocs:     rankEntries(best),
		WorstEquityDocs:    rankEntries(worst),
		CommonGaps:         commonGaps,
		AverageEquityScore: round3(sum / float64(total)),
	}
}

func rankEntries(analyses []types.EquityAnalysis) []types.EquityDocRank {
	ranks := make([]types.EquityDocRank, len(analyses))
	for i := range analyses {
		ranks[i] = types.EquityDocRank{
			Title:       analyses[i].Title,
			EquityScore: analyses[i].EquityScore,
			Assessment:  analyses[i].OverallAssessment,
		}
	}
	return ranks
}
