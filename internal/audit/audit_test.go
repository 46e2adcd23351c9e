package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func testSchema() types.CategorySchema {
	return types.CategorySchema{
		"training_data": {
			HumanNameEN:      "Training Data",
			ImportanceWeight: 0.9,
			Keywords:         []string{"dataset", "corpus"},
		},
		"safety_risk": {
			HumanNameEN:      "Safety & Risk",
			ImportanceWeight: 0.95,
			Keywords:         []string{"red teaming", "safety evaluation"},
		},
		"no_keywords": {
			HumanNameEN:      "Empty Category",
			ImportanceWeight: 0.8,
		},
	}
}

func TestAuditChunks_FullMatchSingleChunk(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "Our dataset was curated from web corpus.", ChunkType: types.ChunkTypeText},
	}

	scores := AuditChunks(chunks, testSchema())

	cs, ok := scores["training_data"]
	require.True(t, ok)
	assert.Equal(t, 1.0, cs.Score)
	assert.Equal(t, 1, cs.HitCount)
	assert.Equal(t, []string{"corpus", "dataset"}, cs.MatchedKeywords)
	assert.Equal(t, []string{"c1"}, cs.MatchedChunks)
	assert.Equal(t, 0, cs.TableHits)
	assert.Equal(t, 1, cs.TextHits)
}

func TestAuditChunks_EmptyKeywordListSkipsCategory(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "anything", ChunkType: types.ChunkTypeText},
	}

	scores := AuditChunks(chunks, testSchema())

	_, found := scores["no_keywords"]
	assert.False(t, found)
}

func TestAuditChunks_NoChunksYieldsZeroScores(t *testing.T) {
	scores := AuditChunks(nil, testSchema())

	cs := scores["training_data"]
	assert.Equal(t, 0.0, cs.Score)
	assert.Equal(t, 0, cs.HitCount)
	assert.Empty(t, cs.MatchedChunks)
}

func TestAuditChunks_EmptyTextChunksSkipped(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "", ChunkType: types.ChunkTypeText},
		{ChunkID: "c2", Text: "The corpus is documented.", ChunkType: types.ChunkTypeText},
	}

	scores := AuditChunks(chunks, testSchema())

	cs := scores["training_data"]
	assert.Equal(t, 1, cs.HitCount)
	assert.Equal(t, []string{"c2"}, cs.MatchedChunks)
	// The empty chunk still counts toward the normalization denominator.
	assert.InDelta(t, 0.25, cs.Score, 1e-9)
}

func TestAuditChunks_NegationPenaltyLowersScore(t *testing.T) {
	negated := []types.Chunk{
		{ChunkID: "c1", Text: "No dataset information disclosed.", ChunkType: types.ChunkTypeText},
	}
	clean := []types.Chunk{
		{ChunkID: "c1", Text: "Extensive dataset information disclosed.", ChunkType: types.ChunkTypeText},
	}

	schema := testSchema()
	negatedScore := AuditChunks(negated, schema)["training_data"]
	cleanScore := AuditChunks(clean, schema)["training_data"]

	// The negated mention contributes no matched keyword and the
	// penalty floors the score at 0.
	assert.Equal(t, 0.0, negatedScore.Score)
	assert.Equal(t, 0, negatedScore.HitCount)
	assert.Less(t, negatedScore.Score, cleanScore.Score)
}

func TestAuditChunks_PenaltyAppliedOncePerNegatedChunk(t *testing.T) {
	schema := types.CategorySchema{
		"safety_risk": {
			HumanNameEN:      "Safety & Risk",
			ImportanceWeight: 0.95,
			Keywords:         []string{"red teaming", "safety evaluation", "incident response"},
		},
	}

	chunks := []types.Chunk{
		// Two negated keywords in this chunk, one clean match far
		// enough from the negation cues to sit outside their windows.
		{ChunkID: "c1", Text: "no red teaming and no safety evaluation were carried out during this release cycle, although incident response procedures are documented thoroughly", ChunkType: types.ChunkTypeText},
	}

	cs := AuditChunks(chunks, schema)["safety_risk"]

	// Per-chunk score 1/3, minus a single 0.1 penalty.
	assert.InDelta(t, 1.0/3.0-0.1, cs.Score, 1e-9)
	assert.Equal(t, []string{"incident response"}, cs.MatchedKeywords)
}

func TestAuditChunks_TableAndTextHitSplit(t *testing.T) {
	chunks := []types.Chunk{
		{ChunkID: "c1", Text: "dataset summary", ChunkType: types.ChunkTypeTable},
		{ChunkID: "c2", Text: "corpus description", ChunkType: types.ChunkTypeText},
		{ChunkID: "c3", Text: "corpus statistics", ChunkType: types.ChunkTypeCode},
	}

	cs := AuditChunks(chunks, testSchema())["training_data"]

	assert.Equal(t, 3, cs.HitCount)
	assert.Equal(t, 1, cs.TableHits)
	// Non-table chunk types all count as text hits.
	assert.Equal(t, 2, cs.TextHits)
	assert.Equal(t, cs.HitCount, len(cs.MatchedChunks))
	assert.Equal(t, cs.HitCount, cs.TableHits+cs.TextHits)
}
