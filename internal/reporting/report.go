// Package reporting assembles evidence-based audit reports from
// category scores. Every claim in a report is traceable to actual
// chunks and keyword matches; nothing is invented.
package reporting

import (
	"math"

	"github.com/jonathan/docscope/internal/types"
)

// Threshold pairs for the per-category risk flags.
const (
	highGapScoreCutoff        = 0.25
	highGapImportanceFloor    = 0.9
	mediumGapScoreCutoff      = 0.5
	mediumGapImportanceFloor  = 0.8
	missingQuestionScoreLimit = 0.5
)

// Threshold pairs for the report's critical/high gap lists. These are
// intentionally different from the risk-flag cutoffs above; the two
// classification schemes coexist and are not unified.
const (
	criticalListScoreCutoff     = 0.3
	criticalListImportanceFloor = 0.9
	highListScoreCutoff         = 0.5
	highListImportanceFloor     = 0.7
)

// strengthScoreFloor marks a category as a documentation strength.
const strengthScoreFloor = 0.6

// evidenceChunkSample caps how many matched chunk ids a category
// summary carries for verification.
const evidenceChunkSample = 10

// SummarizeCategoryScores builds per-category summaries from audit
// results. Missing questions are only suggested when coverage is
// actually low.
func SummarizeCategoryScores(scores map[string]types.CategoryScore, schema types.CategorySchema) map[string]types.CategorySummary {
	summary := make(map[string]types.CategorySummary, len(scores))

	for catID, cs := range scores {
		importance := schema.Importance(catID)

		var riskFlag string
		switch {
		case cs.Score < highGapScoreCutoff && importance >= highGapImportanceFloor:
			riskFlag = types.RiskFlagHighGap
		case cs.Score < mediumGapScoreCutoff && importance >= mediumGapImportanceFloor:
			riskFlag = types.RiskFlagMediumGap
		default:
			riskFlag = types.RiskFlagOK
		}

		var missingQuestions []string
		if cs.Score < missingQuestionScoreLimit {
			missingQuestions = schema.Questions(catID)
		}

		evidence := cs.MatchedChunks
		if len(evidence) > evidenceChunkSample {
			evidence = evidence[:evidenceChunkSample]
		}

		var axis string
		if cat, ok := schema[catID]; ok {
			axis = cat.GovernanceAxis
		}

		summary[catID] = types.CategorySummary{
			CategoryID:       catID,
			NameEN:           schema.Name(catID),
			GovernanceAxis:   axis,
			ImportanceWeight: importance,
			CoverageScore:    cs.Score,
			HitCount:         cs.HitCount,
			MatchedKeywords:  cs.MatchedKeywords,
			TableHits:        cs.TableHits,
			TextHits:         cs.TextHits,
			RiskFlag:         riskFlag,
			MissingQuestions: missingQuestions,
			EvidenceChunks:   evidence,
		}
	}

	return summary
}

// GenerateEvidenceBasedReport builds the complete audit report for one
// document.
func GenerateEvidenceBasedReport(docID string, scores map[string]types.CategoryScore, chunks []types.Chunk, meta types.DocumentMetadata, schema types.CategorySchema) types.AuditReport {
	chunkTypes := make(map[string]int)
	for i := range chunks {
		ctype := chunks[i].ChunkType
		if ctype == "" {
			ctype = types.ChunkTypeText
		}
		chunkTypes[ctype]++
	}

	overall := 0.0
	if len(scores) > 0 {
		for _, cs := range scores {
			overall += cs.Score
		}
		overall /= float64(len(scores))
	}

	var criticalGaps, highGaps []types.GapHighlight
	for catID, cs := range scores {
		importance := schema.Importance(catID)
		highlight := types.GapHighlight{
			Category:        schema.Name(catID),
			Score:           cs.Score,
			Importance:      importance,
			MatchedKeywords: cs.MatchedKeywords,
			EvidenceCount:   cs.HitCount,
		}

		switch {
		case cs.Score < criticalListScoreCutoff && importance >= criticalListImportanceFloor:
			criticalGaps = append(criticalGaps, highlight)
		case cs.Score < highListScoreCutoff && importance >= highListImportanceFloor:
			highGaps = append(highGaps, highlight)
		}
	}

	var strengths []types.Strength
	for catID, cs := range scores {
		if cs.Score < strengthScoreFloor {
			continue
		}
		sample := cs.MatchedKeywords
		if len(sample) > 5 {
			sample = sample[:5]
		}
		strengths = append(strengths, types.Strength{
			Category:              schema.Name(catID),
			Score:                 cs.Score,
			EvidenceCount:         cs.HitCount,
			HasTables:             cs.TableHits > 0,
			MatchedKeywordsSample: sample,
		})
	}

	title := meta.Title
	if title == "" {
		title = "Unknown"
	}

	return types.AuditReport{
		Document: types.DocumentInfo{
			DocID:       docID,
			Title:       title,
			Year:        meta.Year,
			DocType:     meta.DocType,
			TotalChunks: len(chunks),
			ChunkTypes:  chunkTypes,
		},
		Coverage: types.Coverage{
			OverallScore:        round3(overall),
			CategoriesEvaluated: len(scores),
		},
		Gaps: types.ReportGaps{
			Critical: criticalGaps,
			High:     highGaps,
		},
		Strengths:       strengths,
		CategoryDetails: SummarizeCategoryScores(scores, schema),
	}
}

// round3 rounds to three decimal places for report presentation.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
