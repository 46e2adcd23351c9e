package quality

import (
	"fmt"
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// CompareDocuments ranks documents by mean quality and derives
// corpus-level insights.
func CompareDocuments(docAnalyses map[string]types.DocumentQuality) types.QualityComparison {
	rankings := make([]types.QualityRank, 0, len(docAnalyses))
	for docID, analysis := range docAnalyses {
		rankings = append(rankings, types.QualityRank{
			DocID:           docID,
			MeanQuality:     analysis.DocumentLevel.MeanQualityScore,
			MeanSubstantive: analysis.DocumentLevel.MeanSubstantiveScore,
			MeanPromotional: analysis.DocumentLevel.MeanPromotionalScore,
		})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].MeanQuality != rankings[j].MeanQuality {
			return rankings[i].MeanQuality > rankings[j].MeanQuality
		}
		return rankings[i].DocID < rankings[j].DocID
	})

	var stats types.QualityStatistics
	if len(rankings) > 0 {
		qualities := make([]float64, len(rankings))
		for i, r := range rankings {
			qualities[i] = r.MeanQuality
		}
		stats = types.QualityStatistics{
			Best:   qualities[0],
			Worst:  qualities[len(qualities)-1],
			Mean:   round3(mean(qualities)),
			Median: round3(median(qualities)),
		}
	}

	return types.QualityComparison{
		Rankings:   rankings,
		Statistics: stats,
		Insights:   comparativeInsights(rankings),
	}
}

func comparativeInsights(rankings []types.QualityRank) []string {
	if len(rankings) == 0 {
		return nil
	}

	var insights []string

	best := rankings[0]
	worst := rankings[len(rankings)-1]
	insights = append(insights, fmt.Sprintf(
		"Quality gap between best and worst documentation: %.3f",
		best.MeanQuality-worst.MeanQuality))

	substantiveLeader := rankings[0]
	for _, r := range rankings[1:] {
		if r.MeanSubstantive > substantiveLeader.MeanSubstantive {
			substantiveLeader = r
		}
	}
	insights = append(insights, fmt.Sprintf(
		"Highest technical content: %s (score: %.3f)",
		substantiveLeader.DocID, substantiveLeader.MeanSubstantive))

	promoLeader := rankings[0]
	for _, r := range rankings[1:] {
		if r.MeanPromotional > promoLeader.MeanPromotional {
			promoLeader = r
		}
	}
	if promoLeader.MeanPromotional > promotionalMeanCutoff {
		insights = append(insights, fmt.Sprintf(
			"Most promotional language: %s (score: %.3f)",
			promoLeader.DocID, promoLeader.MeanPromotional))
	}

	return insights
}
