package equity

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

// calculateEquityScore combines the six analysis dimensions into a
// single 0-1 score. Weights: characteristics 20%, intersectional 15%,
// fairness metrics 25%, quantitative evidence 25%, mitigation 10%,
// best practices 5%.
func calculateEquityScore(
	charSummary types.CharacteristicSummary,
	intersectional types.IntersectionalAnalysis,
	metrics types.FairnessMetrics,
	quantitative types.QuantitativeEvidence,
	mitigation types.MitigationAnalysis,
	practices types.BestPractices,
) float64 {
	score := 0.0

	score += charSummary.CoveragePercentage / 100 * 0.20

	switch {
	case intersectional.ExplicitLanguage:
		score += 0.15
	case intersectional.ChunkCount >= 3:
		score += 0.10
	case intersectional.ChunkCount > 0:
		score += 0.05
	}

	score += metrics.Summary.CoveragePercentage / 100 * 0.25

	switch {
	case quantitative.EquityTables >= 2:
		score += 0.25
	case quantitative.EquityTables == 1:
		score += 0.15
	case quantitative.QuantitativeChunks > 0:
		score += 0.10
	}

	switch {
	case mitigation.ChunkCount >= 3:
		score += 0.10
	case mitigation.ChunkCount > 0:
		score += 0.05
	}

	score += practices.Summary.AdherencePercentage / 100 * 0.05

	return round3(score)
}

func assessOverall(score float64) string {
	switch {
	case score >= 0.7:
		return "Excellent equity documentation with comprehensive coverage"
	case score >= 0.5:
		return "Good equity documentation with room for improvement"
	case score >= 0.3:
		return "Basic equity documentation with significant gaps"
	default:
		return "Poor equity documentation - major improvements needed"
	}
}

func generateRecommendations(
	characteristics map[string]types.CharacteristicCoverage,
	charSummary types.CharacteristicSummary,
	intersectional types.IntersectionalAnalysis,
	metrics types.FairnessMetrics,
	quantitative types.QuantitativeEvidence,
	mitigation types.MitigationAnalysis,
) []string {
	var recommendations []string

	if charSummary.CoveredCharacteristics < 5 {
		var missing []string
		for _, charType := range characteristicOrder {
			if !characteristics[charType].Present {
				missing = append(missing, charType)
			}
		}
		if len(missing) > 3 {
			missing = missing[:3]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Expand protected characteristic coverage to include: %s",
			strings.Join(missing, ", ")))
	}

	if !intersectional.HasAnalysis {
		recommendations = append(recommendations,
			"Add intersectional equity analysis examining combinations of protected characteristics (e.g., race × gender, disability × language)")
	}

	if metrics.Summary.MetricsMentioned == 0 {
		recommendations = append(recommendations,
			"Implement and report formal fairness metrics such as demographic parity, equalized odds, or disparate impact ratios")
	}

	if !quantitative.HasEvidence {
		recommendations = append(recommendations,
			"Provide quantitative fairness metrics with disaggregated performance data across demographic groups")
	} else if quantitative.EquityTables == 0 {
		recommendations = append(recommendations,
			"Present equity metrics in structured tables for easier comparison across groups")
	}

	if !mitigation.HasStrategies {
		recommendations = append(recommendations,
			"Document specific bias mitigation strategies implemented (e.g., reweighting, debiasing techniques, fairness constraints)")
	}

	return recommendations
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
