package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func TestAnalyzeText_TooShort(t *testing.T) {
	score := AnalyzeText("   short   ")

	assert.Equal(t, types.TierInsufficientData, score.QualityTier)
	assert.Equal(t, 0.0, score.OverallScore)
	assert.Equal(t, []string{"text_too_short"}, score.Flags)
	assert.Equal(t, []string{"Provide more content for quality analysis"}, score.Recommendations)
}

func TestAnalyzeText_PromotionalText(t *testing.T) {
	text := "Our revolutionary AI model is the best in class solution delivering unprecedented performance with seamless integration and powerful capabilities."

	score := AnalyzeText(text)

	assert.Equal(t, 1.0, score.PromotionalScore)
	assert.Equal(t, types.TierPoor, score.QualityTier)
	assert.Contains(t, score.Flags, "high_promotional_language")
	assert.Contains(t, score.Flags, "low_technical_content")
	assert.Contains(t, score.Flags, "superlatives_without_data")
	assert.Contains(t, score.Recommendations,
		"Replace marketing language with specific technical details and metrics")
}

func TestAnalyzeText_TechnicalText(t *testing.T) {
	text := "The model was evaluated on MMLU achieving 87.3% accuracy. Trained on 15T tokens with a context window of 128K tokens. Performance on HumanEval reached 92.4% pass@1, compared to 85.2% for the baseline."

	score := AnalyzeText(text)

	assert.Greater(t, score.SubstantiveScore, score.PromotionalScore)
	assert.GreaterOrEqual(t, score.OverallScore, 0.5)
	assert.InDelta(t, 0.8, score.EvidenceBasedScore, 1e-9)
	assert.Empty(t, score.Flags)
	assert.Equal(t,
		[]string{"Documentation quality is good - maintain current level of specificity and evidence"},
		score.Recommendations)
}

func TestAnalyzeText_IntensifierWithoutPercentage(t *testing.T) {
	score := AnalyzeText("The new approach significantly improves downstream results.")
	assert.Contains(t, score.Flags, "qualitative_claims_without_quantification")
}

func TestAnalyzeText_IntensifierWithNumberNotPromotional(t *testing.T) {
	// "significantly 12" style phrasing is exempt from the promotional
	// pattern but still flagged unless a percentage appears.
	withPct := AnalyzeText("Accuracy improved significantly: a 12.5% gain over the previous release.")
	assert.NotContains(t, withPct.Flags, "qualitative_claims_without_quantification")
}

func TestAnalyzeText_ExcessiveVagueness(t *testing.T) {
	score := AnalyzeText("Many options and several features offer various improvements across many domains.")

	assert.Contains(t, score.Flags, "excessive_vagueness")
	assert.Contains(t, score.Recommendations,
		"Replace vague terms (various, numerous) with exact counts or ranges")
}

func TestAnalyzeText_NeutralSpecificityWithoutSignal(t *testing.T) {
	score := AnalyzeText("Cats walk silently through moonlit gardens at night.")
	assert.Equal(t, 0.5, score.SpecificityScore)
}

func TestAnalyzeText_EvidenceIndicators(t *testing.T) {
	text := "As shown in Table 3, the system was tested on the MMLU benchmark and scored 81.5, compared to 77.0 previously."

	score := AnalyzeText(text)
	require.NotZero(t, score.EvidenceBasedScore)
	assert.InDelta(t, 1.0, score.EvidenceBasedScore, 1e-9)
}
