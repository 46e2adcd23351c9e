// Package equity performs enhanced equity analysis of AI documentation,
// beyond the keyword-coverage audit: protected-characteristic and
// intersectional coverage, formal fairness metrics, quantitative
// evidence, mitigation strategies, and best-practice adherence.
package equity

import (
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

const previewLength = 200

// AnalyzeDocumentEquity runs the full equity analysis for one
// document's chunks.
func AnalyzeDocumentEquity(chunks []types.Chunk, meta types.DocumentMetadata) types.EquityAnalysis {
	docID := meta.DocID
	if docID == "" {
		docID = "unknown"
	}
	title := meta.Title
	if title == "" {
		title = "Unknown"
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}
	fullText := strings.Join(texts, " ")
	fullLower := strings.ToLower(fullText)

	characteristics, charSummary := analyzeProtectedCharacteristics(fullLower)
	intersectional := analyzeIntersectionality(fullLower, chunks)
	metrics := detectFairnessMetrics(fullLower, chunks)
	quantitative := assessQuantitativeEvidence(chunks)
	mitigation := analyzeMitigationStrategies(fullLower, chunks)
	practices := assessBestPractices(fullLower)

	score := calculateEquityScore(charSummary, intersectional, metrics, quantitative, mitigation, practices)

	return types.EquityAnalysis{
		DocID:             docID,
		Title:             title,
		EquityScore:       score,
		Characteristics:   characteristics,
		CharacteristicSum: charSummary,
		Intersectional:    intersectional,
		FairnessMetrics:   metrics,
		Quantitative:      quantitative,
		Mitigation:        mitigation,
		BestPractices:     practices,
		OverallAssessment: assessOverall(score),
		Recommendations:   generateRecommendations(characteristics, charSummary, intersectional, metrics, quantitative, mitigation),
	}
}

func analyzeProtectedCharacteristics(textLower string) (map[string]types.CharacteristicCoverage, types.CharacteristicSummary) {
	coverage := make(map[string]types.CharacteristicCoverage, len(protectedCharacteristics))
	covered := 0

	for _, charType := range characteristicOrder {
		var mentions []string
		for _, keyword := range protectedCharacteristics[charType] {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				mentions = append(mentions, keyword)
			}
		}
		found := mentions
		if len(found) > 5 {
			found = found[:5]
		}
		coverage[charType] = types.CharacteristicCoverage{
			Present:       len(mentions) > 0,
			MentionCount:  len(mentions),
			KeywordsFound: found,
		}
		if len(mentions) > 0 {
			covered++
		}
	}

	total := len(protectedCharacteristics)
	summary := types.CharacteristicSummary{
		TotalCharacteristics:   total,
		CoveredCharacteristics: covered,
		CoveragePercentage:     round1(float64(covered) / float64(total) * 100),
	}
	return coverage, summary
}

// analyzeIntersectionality flags chunks where two or more protected
// characteristic groups co-occur, and checks for explicit
// intersectional language in the full text.
func analyzeIntersectionality(fullLower string, chunks []types.Chunk) types.IntersectionalAnalysis {
	var intersectional []types.IntersectionalChunk

	for i := range chunks {
		chunkLower := strings.ToLower(chunks[i].Text)

		var present []string
		for _, charType := range characteristicOrder {
			for _, keyword := range protectedCharacteristics[charType] {
				if strings.Contains(chunkLower, strings.ToLower(keyword)) {
					present = append(present, charType)
					break
				}
			}
		}

		if len(present) >= 2 {
			intersectional = append(intersectional, types.IntersectionalChunk{
				ChunkID:         chunks[i].ChunkID,
				Characteristics: present,
				TextPreview:     preview(chunkLower),
			})
		}
	}

	explicit := false
	for _, phrase := range intersectionalPhrases {
		if strings.Contains(fullLower, phrase) {
			explicit = true
			break
		}
	}

	sample := intersectional
	if len(sample) > 10 {
		sample = sample[:10]
	}

	var assessment string
	switch {
	case len(intersectional) >= 3:
		assessment = "Strong intersectional consideration"
	case len(intersectional) > 0:
		assessment = "Some intersectional consideration"
	default:
		assessment = "No intersectional analysis detected"
	}

	return types.IntersectionalAnalysis{
		HasAnalysis:      len(intersectional) > 0,
		ExplicitLanguage: explicit,
		ChunkCount:       len(intersectional),
		Chunks:           sample,
		Assessment:       assessment,
	}
}

func detectFairnessMetrics(fullLower string, chunks []types.Chunk) types.FairnessMetrics {
	detected := make(map[string]types.MetricDetection, len(fairnessMetricFamilies))
	present := 0

	for metricType, phrases := range fairnessMetricFamilies {
		var found []string
		for _, phrase := range phrases {
			if strings.Contains(fullLower, phrase) {
				found = append(found, phrase)
			}
		}
		detected[metricType] = types.MetricDetection{
			Present:       len(found) > 0,
			PatternsFound: found,
		}
		if len(found) > 0 {
			present++
		}
	}

	// A detected phrase counts as quantitative when some chunk mentions
	// it alongside numeric data.
	withNumbers := 0
	for _, detection := range detected {
		if !detection.Present {
			continue
		}
		for _, phrase := range detection.PatternsFound {
			for i := range chunks {
				if !strings.Contains(strings.ToLower(chunks[i].Text), phrase) {
					continue
				}
				if hasQuantitativeData(chunks[i].Text) {
					withNumbers++
					break
				}
			}
		}
	}

	total := len(fairnessMetricFamilies)
	var assessment string
	switch {
	case present >= 3:
		assessment = "Comprehensive fairness metrics"
	case present > 0:
		assessment = "Some fairness metrics"
	default:
		assessment = "No formal fairness metrics detected"
	}

	return types.FairnessMetrics{
		Detected: detected,
		Summary: types.FairnessMetricSummary{
			TotalMetricTypes:   total,
			MetricsMentioned:   present,
			MetricsWithNumbers: withNumbers,
			CoveragePercentage: round1(float64(present) / float64(total) * 100),
		},
		Assessment: assessment,
	}
}

func assessQuantitativeEvidence(chunks []types.Chunk) types.QuantitativeEvidence {
	var quantChunks []types.EquityChunkSample
	tables := 0

	for i := range chunks {
		text := chunks[i].Text
		lower := strings.ToLower(text)

		hasEquityMention := false
		for _, kw := range equityKeywords {
			if strings.Contains(lower, kw) {
				hasEquityMention = true
				break
			}
		}
		if !hasEquityMention || !hasQuantitativeData(text) {
			continue
		}

		ctype := chunks[i].ChunkType
		if ctype == "" {
			ctype = types.ChunkTypeText
		}
		if ctype == types.ChunkTypeTable {
			tables++
		}
		quantChunks = append(quantChunks, types.EquityChunkSample{
			ChunkID:   chunks[i].ChunkID,
			ChunkType: ctype,
			Preview:   preview(text),
		})
	}

	sample := quantChunks
	if len(sample) > 5 {
		sample = sample[:5]
	}

	var assessment string
	switch {
	case tables >= 2:
		assessment = "Strong quantitative evidence"
	case len(quantChunks) > 0:
		assessment = "Some quantitative evidence"
	default:
		assessment = "Qualitative only - no quantitative equity data"
	}

	return types.QuantitativeEvidence{
		HasEvidence:        len(quantChunks) > 0,
		QuantitativeChunks: len(quantChunks),
		EquityTables:       tables,
		SampleChunks:       sample,
		Assessment:         assessment,
	}
}

func analyzeMitigationStrategies(fullLower string, chunks []types.Chunk) types.MitigationAnalysis {
	var mentions []string
	for _, keyword := range mitigationKeywords {
		if strings.Contains(fullLower, keyword) {
			mentions = append(mentions, keyword)
		}
	}

	var mitigationChunks []types.EquityChunkSample
	for i := range chunks {
		lower := strings.ToLower(chunks[i].Text)
		for _, keyword := range mitigationKeywords {
			if strings.Contains(lower, keyword) {
				mitigationChunks = append(mitigationChunks, types.EquityChunkSample{
					ChunkID: chunks[i].ChunkID,
					Preview: preview(chunks[i].Text),
				})
				break
			}
		}
	}

	sample := mitigationChunks
	if len(sample) > 5 {
		sample = sample[:5]
	}

	var assessment string
	switch {
	case len(mitigationChunks) >= 3:
		assessment = "Comprehensive mitigation strategies"
	case len(mitigationChunks) > 0:
		assessment = "Some mitigation discussion"
	default:
		assessment = "No mitigation strategies mentioned"
	}

	return types.MitigationAnalysis{
		HasStrategies: len(mentions) > 0,
		KeywordsFound: mentions,
		ChunkCount:    len(mitigationChunks),
		Chunks:        sample,
		Assessment:    assessment,
	}
}

func assessBestPractices(fullLower string) types.BestPractices {
	detected := make(map[string]types.MetricDetection, len(bestPracticePatterns))
	followed := 0

	for practiceType, phrases := range bestPracticePatterns {
		var found []string
		for _, phrase := range phrases {
			if strings.Contains(fullLower, phrase) {
				found = append(found, phrase)
			}
		}
		detected[practiceType] = types.MetricDetection{
			Present:       len(found) > 0,
			PatternsFound: found,
		}
		if len(found) > 0 {
			followed++
		}
	}

	total := len(bestPracticePatterns)
	var assessment string
	switch {
	case followed >= 3:
		assessment = "Strong best practice adherence"
	case followed > 0:
		assessment = "Partial best practice adherence"
	default:
		assessment = "Poor best practice adherence"
	}

	return types.BestPractices{
		Detected: detected,
		Summary: types.BestPracticeSummary{
			TotalBestPractices:  total,
			PracticesFollowed:   followed,
			AdherencePercentage: round1(float64(followed) / float64(total) * 100),
		},
		Assessment: assessment,
	}
}

func preview(text string) string {
	if len(text) > previewLength {
		text = text[:previewLength]
	}
	return text + "..."
}
