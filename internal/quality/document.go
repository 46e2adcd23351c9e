package quality

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// Document-level recommendation thresholds.
const (
	criticalMeanQuality   = 0.4
	promotionalMeanCutoff = 0.3
	systemicFlagShare     = 0.3
	insufficientEvidence  = 0.3
	commonIssueLimit      = 5
	poorChunkLimit        = 5
)

// AnalyzeDocument scores every chunk of a document and aggregates the
// results.
func AnalyzeDocument(chunks []types.Chunk) (types.DocumentQuality, error) {
	if len(chunks) == 0 {
		return types.DocumentQuality{}, errors.New("no chunks provided")
	}

	scores := make([]types.QualityScore, len(chunks))
	for i := range chunks {
		scores[i] = AnalyzeText(chunks[i].Text)
	}

	overall := make([]float64, len(scores))
	substantive := make([]float64, len(scores))
	promotional := make([]float64, len(scores))
	evidence := make([]float64, len(scores))
	for i, s := range scores {
		overall[i] = s.OverallScore
		substantive[i] = s.SubstantiveScore
		promotional[i] = s.PromotionalScore
		evidence[i] = s.EvidenceBasedScore
	}

	var poorChunks []types.PoorQualityChunk
	for i, s := range scores {
		if s.QualityTier != types.TierPoor && s.QualityTier != types.TierFair {
			continue
		}
		poorChunks = append(poorChunks, types.PoorQualityChunk{
			ChunkID: chunks[i].ChunkID,
			Score:   s.OverallScore,
			Flags:   s.Flags,
		})
	}
	if len(poorChunks) > poorChunkLimit {
		poorChunks = poorChunks[:poorChunkLimit]
	}

	distribution := map[string]int{
		types.TierExcellent: 0,
		types.TierGood:      0,
		types.TierFair:      0,
		types.TierPoor:      0,
	}
	for _, s := range scores {
		if _, ok := distribution[s.QualityTier]; ok {
			distribution[s.QualityTier]++
		}
	}

	issues := countFlags(scores)

	return types.DocumentQuality{
		DocumentLevel: types.DocumentQualityLevel{
			MeanQualityScore:     round3(mean(overall)),
			MedianQualityScore:   round3(median(overall)),
			QualityStdDev:        round3(sampleStdDev(overall)),
			MeanSubstantiveScore: round3(mean(substantive)),
			MeanPromotionalScore: round3(mean(promotional)),
			ChunksAnalyzed:       len(chunks),
		},
		TierDistribution:  distribution,
		CommonIssues:      issues,
		PoorQualityChunks: poorChunks,
		Recommendations:   documentRecommendations(overall, promotional, evidence, issues, len(scores)),
	}, nil
}

// countFlags tallies flag frequency across chunks, most frequent
// first, capped at commonIssueLimit. Ties keep first-seen order.
func countFlags(scores []types.QualityScore) []types.QualityIssue {
	counts := make(map[string]int)
	var order []string
	for _, s := range scores {
		for _, flag := range s.Flags {
			if counts[flag] == 0 {
				order = append(order, flag)
			}
			counts[flag]++
		}
	}

	issues := make([]types.QualityIssue, 0, len(order))
	for _, flag := range order {
		issues = append(issues, types.QualityIssue{
			Flag:           flag,
			Frequency:      counts[flag],
			AffectedChunks: counts[flag],
		})
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Frequency > issues[j].Frequency })
	if len(issues) > commonIssueLimit {
		issues = issues[:commonIssueLimit]
	}
	return issues
}

func documentRecommendations(overall, promotional, evidence []float64, issues []types.QualityIssue, chunkCount int) []string {
	var recommendations []string

	if mean(overall) < criticalMeanQuality {
		recommendations = append(recommendations,
			"CRITICAL: Document has low overall quality. Increase technical depth and reduce promotional language.")
	}
	if mean(promotional) > promotionalMeanCutoff {
		recommendations = append(recommendations,
			"HIGH PROMOTIONAL LANGUAGE: Replace marketing claims with verifiable technical specifications.")
	}
	if len(issues) > 0 {
		top := issues[0]
		if float64(top.Frequency) > float64(chunkCount)*systemicFlagShare {
			recommendations = append(recommendations, fmt.Sprintf(
				"SYSTEMATIC ISSUE: '%s' affects %d chunks. Address this consistently.",
				top.Flag, top.Frequency))
		}
	}
	if mean(evidence) < insufficientEvidence {
		recommendations = append(recommendations,
			"INSUFFICIENT EVIDENCE: Add quantitative benchmarks, performance metrics, and evaluation results.")
	}

	return recommendations
}
