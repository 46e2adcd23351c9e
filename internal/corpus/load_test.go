package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChunks_SkipsBlankLines(t *testing.T) {
	chunks, err := LoadChunks(filepath.Join("testdata", "chunks.jsonl"))
	require.NoError(t, err)

	require.Len(t, chunks, 4)
	assert.Equal(t, "gpt_card_0001", chunks[0].ChunkID)
	assert.Equal(t, "table", chunks[1].ChunkType)
}

func TestLoadChunks_MissingFile(t *testing.T) {
	_, err := LoadChunks(filepath.Join("testdata", "nope.jsonl"))
	require.Error(t, err)
}

func TestLoadMetadata_FillsDocID(t *testing.T) {
	metadata, err := LoadMetadata(filepath.Join("testdata", "doc_metadata.json"))
	require.NoError(t, err)

	require.Len(t, metadata, 3)
	assert.Equal(t, "gpt_system_card", metadata["gpt_system_card"].DocID)
	assert.Equal(t, 2023, metadata["nist_framework"].Year)
}

func TestLoad_BuildsCorpus(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "chunks.jsonl"), filepath.Join("testdata", "doc_metadata.json"))
	require.NoError(t, err)

	assert.Len(t, c.Chunks, 4)
	assert.Len(t, c.DocChunks("gpt_system_card"), 2)
	assert.Len(t, c.DocChunks("nist_framework"), 1)
	// The orphan chunk has no doc_id and is not indexed.
	assert.Equal(t, []string{"gpt_system_card", "nist_framework"}, c.DocIDs())
}
