package audit

import (
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// negationPenalty is applied once per chunk in which any keyword match
// was negated, regardless of how many keywords were negated there.
const negationPenalty = 0.1

// AuditChunks scores a document's chunks against every category in the
// schema. Categories with no keywords are skipped entirely. The
// returned scores are derived purely from the inputs and can be
// recomputed at any time.
func AuditChunks(chunks []types.Chunk, schema types.CategorySchema) map[string]types.CategoryScore {
	results := make(map[string]types.CategoryScore)

	for catID, cat := range schema {
		if len(cat.Keywords) == 0 {
			continue
		}

		totalScore := 0.0
		matchedKeywordSet := make(map[string]struct{})
		var matchedChunkIDs []string
		tableHits := 0
		textHits := 0
		penalty := 0.0

		for i := range chunks {
			chunk := &chunks[i]
			if chunk.Text == "" {
				continue
			}

			score, matched, hasNegation := calculateKeywordScore(chunk.Text, cat.Keywords, chunk.ChunkType)

			if score > 0 {
				totalScore += score
				for _, kw := range matched {
					matchedKeywordSet[kw] = struct{}{}
				}
				matchedChunkIDs = append(matchedChunkIDs, chunk.ChunkID)

				if chunk.IsTable() {
					tableHits++
				} else {
					textHits++
				}
			}

			if hasNegation {
				penalty += negationPenalty
			}
		}

		avgScore := 0.0
		if len(chunks) > 0 {
			avgScore = totalScore / float64(len(chunks))
			avgScore -= penalty
			if avgScore < 0 {
				avgScore = 0
			}
		}

		matchedKeywords := make([]string, 0, len(matchedKeywordSet))
		for kw := range matchedKeywordSet {
			matchedKeywords = append(matchedKeywords, kw)
		}
		sort.Strings(matchedKeywords)

		results[catID] = types.CategoryScore{
			Score:           avgScore,
			HitCount:        len(matchedChunkIDs),
			MatchedKeywords: matchedKeywords,
			MatchedChunks:   matchedChunkIDs,
			TableHits:       tableHits,
			TextHits:        textHits,
		}
	}

	return results
}
