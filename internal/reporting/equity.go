package reporting

import "github.com/jonathan/docscope/internal/types"

// equityCategoryID is the keyword-audit category this analysis singles
// out.
const equityCategoryID = "equity_bias"

const (
	equityBestPracticeFloor  = 0.7
	equityCriticalGapCeiling = 0.3
)

// GenerateEquityFocusedAnalysis builds the corpus-wide equity_bias
// summary from keyword-audit scores. Table hits serve as the proxy for
// quantitative equity data. Critical gaps are only reported for
// artifact-classified documents; low equity coverage in a framework
// paper is expected, not a gap.
func GenerateEquityFocusedAnalysis(allScores map[string]map[string]types.CategoryScore, docMetadata map[string]types.DocumentMetadata) types.EquitySummary {
	analysis := types.EquitySummary{
		Category:          "Equity & Bias",
		TotalDocsAnalyzed: len(allScores),
		CoverageByDoc:     make(map[string]types.EquityCoverage),
	}

	for docID, scores := range allScores {
		cs, ok := scores[equityCategoryID]
		if !ok {
			continue
		}

		if cs.Score > 0 {
			analysis.DocsWithCoverage++
		}
		if cs.TableHits > 0 {
			analysis.DocsWithQuantitative++
		}

		meta := docMetadata[docID]
		title := meta.Title
		if title == "" {
			title = docID
		}

		matched := cs.MatchedKeywords
		if len(matched) > 5 {
			matched = matched[:5]
		}

		analysis.CoverageByDoc[docID] = types.EquityCoverage{
			Title:           title,
			Score:           round3(cs.Score),
			HasQuantitative: cs.TableHits > 0,
			EvidenceCount:   cs.HitCount,
			MatchedKeywords: matched,
		}

		if cs.Score >= equityBestPracticeFloor {
			analysis.BestPractices = append(analysis.BestPractices, types.EquityBestPractice{
				DocID:         docID,
				Title:         title,
				Score:         round3(cs.Score),
				KeywordsFound: cs.MatchedKeywords,
			})
		}

		if cs.Score < equityCriticalGapCeiling && !meta.IsFramework() {
			analysis.CriticalGaps = append(analysis.CriticalGaps, types.EquityCriticalGap{
				DocID:      docID,
				Title:      title,
				Score:      round3(cs.Score),
				HasAnyData: cs.HitCount > 0,
			})
		}
	}

	return analysis
}
