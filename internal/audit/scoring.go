// Package audit scores document chunks against governance categories.
package audit

import (
	"regexp"
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

// tableBoost reflects that table chunks carry structured metrics and
// benchmarks rather than prose.
const tableBoost = 1.3

// negationWindowBefore and negationWindowAfter bound the context
// window inspected around a keyword match for negation cues.
const (
	negationWindowBefore = 50
	negationWindowAfter  = 20
)

// negationRegex matches whole-word negation cues such as "no safety
// evaluation" or "not disclosed".
var negationRegex = regexp.MustCompile(
	`(?i)\bno\b|\bnot\b|\bnever\b|\bunavailable\b|\bunknown\b|` +
		`\bnot\s+disclosed\b|\bnot\s+reported\b|\bnot\s+evaluated\b|\bnot\s+measured\b`)

// detectNegationContext reports whether the first occurrence of
// keyword in text sits inside a negation context. The window covers 50
// characters before the match and 20 after it.
func detectNegationContext(text, keyword string) bool {
	textLower := strings.ToLower(text)
	keywordLower := strings.ToLower(keyword)

	idx := strings.Index(textLower, keywordLower)
	if idx < 0 {
		return false
	}

	start := idx - negationWindowBefore
	if start < 0 {
		start = 0
	}
	end := idx + len(keywordLower) + negationWindowAfter
	if end > len(textLower) {
		end = len(textLower)
	}

	return negationRegex.MatchString(textLower[start:end])
}

// calculateKeywordScore computes the keyword match score for a single
// chunk. It returns the score (0-1), the keywords that matched outside
// negation contexts, and whether any match was negated. Negated
// keywords are excluded from the matched set but do not reduce the
// base score of the remaining matches.
func calculateKeywordScore(text string, keywords []string, chunkType string) (float64, []string, bool) {
	textLower := strings.ToLower(text)
	var matched []string
	hasNegation := false

	for _, kw := range keywords {
		if !strings.Contains(textLower, strings.ToLower(kw)) {
			continue
		}
		if detectNegationContext(text, kw) {
			hasNegation = true
		} else {
			matched = append(matched, kw)
		}
	}

	if len(matched) == 0 {
		return 0.0, nil, hasNegation
	}

	// Base score: proportion of the category's keywords matched.
	score := float64(len(matched)) / float64(len(keywords))

	if chunkType == types.ChunkTypeTable {
		score *= tableBoost
	}
	if score > 1.0 {
		score = 1.0
	}

	return score, matched, hasNegation
}
