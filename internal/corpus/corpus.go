// Package corpus loads the processed document corpus: chunk records,
// document metadata, and the grouping of chunks by document.
package corpus

import (
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// Corpus holds everything the analyzers need about the loaded
// documents.
type Corpus struct {
	Chunks      []types.Chunk
	Metadata    map[string]types.DocumentMetadata
	ChunksByDoc map[string][]types.Chunk
}

// New groups chunks by document and pairs them with metadata. Chunks
// without a doc_id are dropped from the per-document index but kept in
// Chunks.
func New(chunks []types.Chunk, metadata map[string]types.DocumentMetadata) *Corpus {
	byDoc := make(map[string][]types.Chunk)
	for _, chunk := range chunks {
		if chunk.DocID == "" {
			continue
		}
		byDoc[chunk.DocID] = append(byDoc[chunk.DocID], chunk)
	}
	if metadata == nil {
		metadata = make(map[string]types.DocumentMetadata)
	}
	return &Corpus{
		Chunks:      chunks,
		Metadata:    metadata,
		ChunksByDoc: byDoc,
	}
}

// DocChunks returns the chunks for one document, or nil when the
// document is unknown.
func (c *Corpus) DocChunks(docID string) []types.Chunk {
	return c.ChunksByDoc[docID]
}

// DocIDs returns the ids of all documents that have chunks, sorted.
func (c *Corpus) DocIDs() []string {
	ids := make([]string, 0, len(c.ChunksByDoc))
	for id := range c.ChunksByDoc {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DocumentListing is one row of a corpus document listing.
type DocumentListing struct {
	DocID      string `json:"doc_id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	DocType    string `json:"doc_type"`
	ChunkCount int    `json:"chunk_count"`
}

// ListDocuments lists documents from the metadata, optionally filtered
// by a doc_type substring (case-insensitive), newest year first, then
// by title.
func (c *Corpus) ListDocuments(docTypeFilter string) []DocumentListing {
	var docs []DocumentListing
	for docID, meta := range c.Metadata {
		if docTypeFilter != "" && !containsFold(meta.DocType, docTypeFilter) {
			continue
		}
		docs = append(docs, DocumentListing{
			DocID:      docID,
			Title:      meta.Title,
			Year:       meta.Year,
			DocType:    meta.DocType,
			ChunkCount: len(c.ChunksByDoc[docID]),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Year != docs[j].Year {
			return docs[i].Year > docs[j].Year
		}
		return docs[i].Title < docs[j].Title
	})

	return docs
}
