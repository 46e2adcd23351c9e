package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func TestAnalyzeDocumentEquity_EmptyDocument(t *testing.T) {
	analysis := AnalyzeDocumentEquity(nil, types.DocumentMetadata{})

	assert.Equal(t, "unknown", analysis.DocID)
	assert.Equal(t, "Unknown", analysis.Title)
	assert.Equal(t, 0.0, analysis.EquityScore)
	assert.Equal(t, "Poor equity documentation - major improvements needed", analysis.OverallAssessment)

	require.Len(t, analysis.Recommendations, 5)
	assert.Equal(t,
		"Expand protected characteristic coverage to include: race_ethnicity, gender, disability",
		analysis.Recommendations[0])
}

func TestAnalyzeDocumentEquity_CharacteristicCoverage(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "We evaluated performance across racial groups and for non-English speakers."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1", Title: "Card"})

	assert.True(t, analysis.Characteristics["race_ethnicity"].Present)
	assert.True(t, analysis.Characteristics["language"].Present)
	assert.False(t, analysis.Characteristics["disability"].Present)
	assert.Equal(t, 2, analysis.CharacteristicSum.CoveredCharacteristics)
	assert.Equal(t, 7, analysis.CharacteristicSum.TotalCharacteristics)
	assert.InDelta(t, 28.6, analysis.CharacteristicSum.CoveragePercentage, 1e-9)
}

func TestAnalyzeDocumentEquity_IntersectionalChunks(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "Racial bias affects women disproportionately."},
		{ChunkID: "c2", Text: "The model is fast."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	assert.True(t, analysis.Intersectional.HasAnalysis)
	assert.False(t, analysis.Intersectional.ExplicitLanguage)
	assert.Equal(t, 1, analysis.Intersectional.ChunkCount)
	require.Len(t, analysis.Intersectional.Chunks, 1)
	assert.Equal(t, "c1", analysis.Intersectional.Chunks[0].ChunkID)
	assert.ElementsMatch(t, []string{"race_ethnicity", "gender"}, analysis.Intersectional.Chunks[0].Characteristics)
	assert.Equal(t, "Some intersectional consideration", analysis.Intersectional.Assessment)
}

func TestAnalyzeDocumentEquity_ExplicitIntersectionalLanguage(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "We conducted an intersectional evaluation."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})
	assert.True(t, analysis.Intersectional.ExplicitLanguage)
}

func TestAnalyzeDocumentEquity_FairnessMetricsWithNumbers(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "We report demographic parity: 0.85/0.90 across groups."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	metrics := analysis.FairnessMetrics
	assert.True(t, metrics.Detected["statistical_parity"].Present)
	assert.Equal(t, 1, metrics.Summary.MetricsMentioned)
	assert.Equal(t, 1, metrics.Summary.MetricsWithNumbers)
	assert.InDelta(t, 16.7, metrics.Summary.CoveragePercentage, 1e-9)
	assert.Equal(t, "Some fairness metrics", metrics.Assessment)
}

func TestAnalyzeDocumentEquity_QuantitativeEvidenceRequiresEquityContext(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "Overall throughput improved by 40% this quarter."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	assert.False(t, analysis.Quantitative.HasEvidence)
	assert.Equal(t, "Qualitative only - no quantitative equity data", analysis.Quantitative.Assessment)
}

func TestAnalyzeDocumentEquity_EquityTables(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", ChunkType: types.ChunkTypeTable, Text: "Bias rates by group: 12.5% vs 8.1%"},
		{ChunkID: "c2", ChunkType: types.ChunkTypeTable, Text: "Fairness disparity: 3.2% gap"},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	assert.True(t, analysis.Quantitative.HasEvidence)
	assert.Equal(t, 2, analysis.Quantitative.EquityTables)
	assert.Equal(t, "Strong quantitative evidence", analysis.Quantitative.Assessment)
}

func TestAnalyzeDocumentEquity_MitigationStrategies(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "We applied debiasing and reweighting during training."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	mitigation := analysis.Mitigation
	assert.True(t, mitigation.HasStrategies)
	assert.Contains(t, mitigation.KeywordsFound, "debiasing")
	assert.Contains(t, mitigation.KeywordsFound, "reweighting")
	assert.Equal(t, 1, mitigation.ChunkCount)
	assert.Equal(t, "Some mitigation discussion", mitigation.Assessment)

	// Mitigation discussion alone contributes exactly its 5% partial
	// credit to the overall score.
	assert.InDelta(t, 0.05, analysis.EquityScore, 1e-9)
}

func TestAnalyzeDocumentEquity_BestPractices(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "Results are disaggregated and publicly available, following a bias audit."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	practices := analysis.BestPractices
	assert.True(t, practices.Detected["disaggregated_reporting"].Present)
	assert.True(t, practices.Detected["transparency"].Present)
	assert.True(t, practices.Detected["impact_assessment"].Present)
	assert.Equal(t, 3, practices.Summary.PracticesFollowed)
	assert.Equal(t, "Strong best practice adherence", practices.Assessment)
}

func TestAnalyzeDocumentEquity_TableRecommendationWhenOnlyProse(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "Observed bias rate of 12% in one cohort."},
	}

	analysis := AnalyzeDocumentEquity(chunks, types.DocumentMetadata{DocID: "d1"})

	assert.Contains(t, analysis.Recommendations,
		"Present equity metrics in structured tables for easier comparison across groups")
}
