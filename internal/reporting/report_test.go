package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func testSchema() types.CategorySchema {
	return types.CategorySchema{
		"equity_bias": {
			HumanNameEN:       "Equity & Bias",
			GovernanceAxis:    "fairness",
			ImportanceWeight:  0.95,
			Keywords:          []string{"fairness", "bias"},
			QuestionTemplates: []string{"What fairness metrics are reported?"},
		},
		"safety_risk": {
			HumanNameEN:      "Safety & Risk",
			GovernanceAxis:   "safety",
			ImportanceWeight: 0.9,
			Keywords:         []string{"red teaming"},
		},
		"transparency": {
			HumanNameEN:      "Transparency",
			ImportanceWeight: 0.6,
			Keywords:         []string{"disclosed"},
		},
	}
}

func TestSummarizeCategoryScores_RiskFlags(t *testing.T) {
	scores := map[string]types.CategoryScore{
		"equity_bias":  {Score: 0.1},  // < 0.25, importance 0.95 -> high_gap
		"safety_risk":  {Score: 0.4},  // < 0.5, importance 0.9 -> medium_gap
		"transparency": {Score: 0.05}, // low importance -> ok despite low score
	}

	summary := SummarizeCategoryScores(scores, testSchema())

	assert.Equal(t, types.RiskFlagHighGap, summary["equity_bias"].RiskFlag)
	assert.Equal(t, types.RiskFlagMediumGap, summary["safety_risk"].RiskFlag)
	assert.Equal(t, types.RiskFlagOK, summary["transparency"].RiskFlag)
}

func TestSummarizeCategoryScores_MissingQuestionsOnlyWhenLow(t *testing.T) {
	low := SummarizeCategoryScores(map[string]types.CategoryScore{"equity_bias": {Score: 0.2}}, testSchema())
	high := SummarizeCategoryScores(map[string]types.CategoryScore{"equity_bias": {Score: 0.8}}, testSchema())

	assert.NotEmpty(t, low["equity_bias"].MissingQuestions)
	assert.Empty(t, high["equity_bias"].MissingQuestions)
}

func TestSummarizeCategoryScores_EvidenceChunkSampleCapped(t *testing.T) {
	matched := make([]string, 15)
	for i := range matched {
		matched[i] = "chunk"
	}
	scores := map[string]types.CategoryScore{
		"safety_risk": {Score: 0.9, HitCount: 15, MatchedChunks: matched},
	}

	summary := SummarizeCategoryScores(scores, testSchema())
	assert.Len(t, summary["safety_risk"].EvidenceChunks, 10)
}

func TestGenerateEvidenceBasedReport_OverallCoverageIsUnweightedMean(t *testing.T) {
	scores := map[string]types.CategoryScore{
		"equity_bias": {Score: 0.2},
		"safety_risk": {Score: 0.8},
	}

	report := GenerateEvidenceBasedReport("doc1", scores, nil, types.DocumentMetadata{Title: "Doc"}, testSchema())

	assert.InDelta(t, 0.5, report.Coverage.OverallScore, 1e-9)
	assert.Equal(t, 2, report.Coverage.CategoriesEvaluated)
}

func TestGenerateEvidenceBasedReport_NoScores(t *testing.T) {
	report := GenerateEvidenceBasedReport("doc1", nil, nil, types.DocumentMetadata{}, testSchema())

	assert.Equal(t, 0.0, report.Coverage.OverallScore)
	assert.Equal(t, "Unknown", report.Document.Title)
}

func TestGenerateEvidenceBasedReport_GapListsUseOwnThresholds(t *testing.T) {
	scores := map[string]types.CategoryScore{
		// 0.27 with importance 0.95: critical list (< 0.3, >= 0.9) but
		// risk flag is only medium_gap (not < 0.25).
		"equity_bias": {Score: 0.27},
		// 0.45 with importance 0.6: neither list.
		"transparency": {Score: 0.45},
	}

	report := GenerateEvidenceBasedReport("doc1", scores, nil, types.DocumentMetadata{Title: "Doc"}, testSchema())

	require.Len(t, report.Gaps.Critical, 1)
	assert.Equal(t, "Equity & Bias", report.Gaps.Critical[0].Category)
	assert.Empty(t, report.Gaps.High)
	assert.Equal(t, types.RiskFlagMediumGap, report.CategoryDetails["equity_bias"].RiskFlag)
}

func TestGenerateEvidenceBasedReport_HighGapList(t *testing.T) {
	scores := map[string]types.CategoryScore{
		// 0.35 with importance 0.9: high list (< 0.5, >= 0.7), not critical.
		"safety_risk": {Score: 0.35},
	}

	report := GenerateEvidenceBasedReport("doc1", scores, nil, types.DocumentMetadata{Title: "Doc"}, testSchema())

	assert.Empty(t, report.Gaps.Critical)
	require.Len(t, report.Gaps.High, 1)
	assert.Equal(t, "Safety & Risk", report.Gaps.High[0].Category)
}

func TestGenerateEvidenceBasedReport_Strengths(t *testing.T) {
	scores := map[string]types.CategoryScore{
		"safety_risk": {Score: 0.75, HitCount: 4, TableHits: 2, MatchedKeywords: []string{"red teaming"}},
		"equity_bias": {Score: 0.59},
	}

	report := GenerateEvidenceBasedReport("doc1", scores, nil, types.DocumentMetadata{Title: "Doc"}, testSchema())

	require.Len(t, report.Strengths, 1)
	strength := report.Strengths[0]
	assert.Equal(t, "Safety & Risk", strength.Category)
	assert.True(t, strength.HasTables)
}

func TestGenerateEvidenceBasedReport_ChunkTypeBreakdown(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", ChunkType: types.ChunkTypeText},
		{ChunkID: "c2", ChunkType: types.ChunkTypeTable},
		{ChunkID: "c3", ChunkType: types.ChunkTypeText},
		{ChunkID: "c4"}, // missing type defaults to text
	}

	report := GenerateEvidenceBasedReport("doc1", nil, chunks, types.DocumentMetadata{Title: "Doc"}, testSchema())

	assert.Equal(t, 4, report.Document.TotalChunks)
	assert.Equal(t, 3, report.Document.ChunkTypes[types.ChunkTypeText])
	assert.Equal(t, 1, report.Document.ChunkTypes[types.ChunkTypeTable])
}
