package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func sampleCorpus() *Corpus {
	chunks := []types.Chunk{
		{ChunkID: "a1", DocID: "alpha", Text: "one"},
		{ChunkID: "a2", DocID: "alpha", Text: "two"},
		{ChunkID: "b1", DocID: "beta", Text: "three"},
	}
	metadata := map[string]types.DocumentMetadata{
		"alpha": {DocID: "alpha", Title: "Alpha Card", Year: 2024, DocType: "artifact"},
		"beta":  {DocID: "beta", Title: "Beta Framework", Year: 2022, DocType: "framework paper"},
		"gamma": {DocID: "gamma", Title: "Gamma Card", Year: 2024, DocType: "artifact"},
	}
	return New(chunks, metadata)
}

func TestListDocuments_SortsByYearThenTitle(t *testing.T) {
	docs := sampleCorpus().ListDocuments("")

	require.Len(t, docs, 3)
	assert.Equal(t, "alpha", docs[0].DocID)
	assert.Equal(t, "gamma", docs[1].DocID)
	assert.Equal(t, "beta", docs[2].DocID)
	assert.Equal(t, 2, docs[0].ChunkCount)
	assert.Equal(t, 0, docs[1].ChunkCount)
}

func TestListDocuments_FilterIsSubstringMatch(t *testing.T) {
	docs := sampleCorpus().ListDocuments("FRAMEWORK")

	require.Len(t, docs, 1)
	assert.Equal(t, "beta", docs[0].DocID)
}

func TestNew_NilMetadata(t *testing.T) {
	c := New(nil, nil)
	assert.NotNil(t, c.Metadata)
	assert.Empty(t, c.ListDocuments(""))
}
