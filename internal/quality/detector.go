// Package quality scores documentation text for substance versus
// promotional language. It combines linguistic pattern analysis,
// information density, specificity scoring, and evidence detection
// into a single quality tier per chunk, then aggregates per document
// and across a corpus.
package quality

import (
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

// minAnalyzableLength is the shortest trimmed text worth scoring.
const minAnalyzableLength = 20

// Overall score weights. Promotional language counts against quality.
const (
	substantiveWeight = 0.30
	promotionalWeight = 0.20
	specificityWeight = 0.20
	densityWeight     = 0.15
	evidenceWeight    = 0.15
)

// excellentDensity is the facts-per-100-words rate treated as full
// marks when normalizing information density.
const excellentDensity = 20.0

// Tier thresholds on the overall score.
const (
	tierExcellentFloor = 0.7
	tierGoodFloor      = 0.5
	tierFairFloor      = 0.3
)

// Flag thresholds.
const (
	promotionalFlagCutoff = 0.3
	substantiveFlagFloor  = 0.2
	specificityFlagFloor  = 0.3
	vagueTermFlagLimit    = 2
)

// AnalyzeText scores a single text span. Texts shorter than 20
// characters after trimming get a fixed insufficient_data result.
func AnalyzeText(text string) types.QualityScore {
	if len(strings.TrimSpace(text)) < minAnalyzableLength {
		return insufficientDataScore()
	}

	textLower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	promotional := densityScore(countAll(promotionalPatterns, textLower), wordCount, 10)
	substantive := densityScore(countAll(substantivePatterns, textLower), wordCount, 5)
	infoDensity := informationDensity(text, wordCount)
	specificity := specificityScore(text, textLower, wordCount)
	evidence := evidenceScore(text)

	normalizedDensity := infoDensity / excellentDensity
	if normalizedDensity > 1.0 {
		normalizedDensity = 1.0
	}
	overall := substantiveWeight*substantive +
		promotionalWeight*(1.0-promotional) +
		specificityWeight*specificity +
		densityWeight*normalizedDensity +
		evidenceWeight*evidence

	flags := identifyFlags(text, promotional, substantive, specificity)

	return types.QualityScore{
		OverallScore:       round3(overall),
		SubstantiveScore:   round3(substantive),
		PromotionalScore:   round3(promotional),
		SpecificityScore:   round3(specificity),
		InformationDensity: round2(infoDensity),
		EvidenceBasedScore: round3(evidence),
		QualityTier:        assignTier(overall),
		Flags:              flags,
		Recommendations:    flagRecommendations(flags),
	}
}

// densityScore normalizes a match count by text length, scaled so that
// a modest density saturates at 1.0.
func densityScore(matches, wordCount int, scale float64) float64 {
	if wordCount == 0 {
		return 0.0
	}
	score := float64(matches) / float64(wordCount) * scale
	if score > 1.0 {
		return 1.0
	}
	return score
}

// informationDensity counts factual elements (numbers, acronyms and
// versioned terms, citations) per 100 words.
func informationDensity(text string, wordCount int) float64 {
	if wordCount == 0 {
		return 0.0
	}
	numbers := len(numberRegex.FindAllString(text, -1))
	technicalTerms := len(technicalTermRegex.FindAllString(text, -1))
	citations := len(citationRegex.FindAllString(text, -1))
	return float64(numbers+technicalTerms+citations) / float64(wordCount) * 100
}

// specificityScore balances concrete metric mentions against vague
// hedging. With no signal either way it returns the neutral 0.5.
func specificityScore(text, textLower string, wordCount int) float64 {
	if wordCount == 0 {
		return 0.0
	}
	specific := countAll(specificityPatterns, text)
	vague := countAll(vaguenessPatterns, textLower)
	if specific+vague == 0 {
		return 0.5
	}
	return float64(specific) / float64(specific+vague)
}

// evidenceScore is the fraction of five evidence indicators present:
// numbers, numbered references, benchmark names, evaluation language,
// and comparative data.
func evidenceScore(text string) float64 {
	indicators := 0
	if numberRegex.MatchString(text) {
		indicators++
	}
	if numberedRefRegex.MatchString(text) {
		indicators++
	}
	if benchmarkRegex.MatchString(text) {
		indicators++
	}
	if evaluationRegex.MatchString(text) {
		indicators++
	}
	if comparisonRegex.MatchString(text) {
		indicators++
	}
	return float64(indicators) / 5.0
}

func assignTier(overall float64) string {
	switch {
	case overall >= tierExcellentFloor:
		return types.TierExcellent
	case overall >= tierGoodFloor:
		return types.TierGood
	case overall >= tierFairFloor:
		return types.TierFair
	default:
		return types.TierPoor
	}
}

func identifyFlags(text string, promotional, substantive, specificity float64) []string {
	var flags []string

	if promotional > promotionalFlagCutoff {
		flags = append(flags, "high_promotional_language")
	}
	if substantive < substantiveFlagFloor {
		flags = append(flags, "low_technical_content")
	}
	if specificity < specificityFlagFloor {
		flags = append(flags, "vague_claims_without_metrics")
	}
	if superlativeRegex.MatchString(text) && !numberRegex.MatchString(text) {
		flags = append(flags, "superlatives_without_data")
	}
	if intensifierRegex.MatchString(text) && !percentRegex.MatchString(text) {
		flags = append(flags, "qualitative_claims_without_quantification")
	}
	if len(vagueQuantRegex.FindAllString(text, -1)) > vagueTermFlagLimit {
		flags = append(flags, "excessive_vagueness")
	}

	return flags
}

var flagToRecommendation = map[string]string{
	"high_promotional_language":                 "Replace marketing language with specific technical details and metrics",
	"low_technical_content":                     "Include concrete methodologies, benchmarks, and performance data",
	"vague_claims_without_metrics":              "Quantify claims with specific numbers, percentages, or benchmark scores",
	"superlatives_without_data":                 "Support superlative claims with comparative data or third-party evaluations",
	"qualitative_claims_without_quantification": "Provide specific percentage improvements or numerical comparisons",
	"excessive_vagueness":                       "Replace vague terms (various, numerous) with exact counts or ranges",
}

func flagRecommendations(flags []string) []string {
	var recommendations []string
	for _, flag := range flags {
		if rec, ok := flagToRecommendation[flag]; ok {
			recommendations = append(recommendations, rec)
		}
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Documentation quality is good - maintain current level of specificity and evidence")
	}
	return recommendations
}

func insufficientDataScore() types.QualityScore {
	return types.QualityScore{
		QualityTier:     types.TierInsufficientData,
		Flags:           []string{"text_too_short"},
		Recommendations: []string{"Provide more content for quality analysis"},
	}
}
