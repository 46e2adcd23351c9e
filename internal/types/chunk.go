// Package types provides type definitions for structured data used throughout the docscope system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Chunk type values produced by the ingestion tooling.
const (
	ChunkTypeText  = "text"
	ChunkTypeTable = "table"
	ChunkTypeCode  = "code"
)

// Chunk is a unit of document text produced by ingestion. Chunks are
// read-only inputs to the auditors; they are never modified after load.
type Chunk struct {
	ChunkID        string `json:"chunk_id"`
	DocID          string `json:"doc_id"`
	Text           string `json:"text"`
	ChunkType      string `json:"chunk_type"`
	SectionHeading string `json:"section_heading,omitempty"`
	PageNum        int    `json:"page_num,omitempty"`
	LineNum        int    `json:"line_num,omitempty"`
}

// IsTable reports whether the chunk carries tabular content. Table
// chunks are weighted higher during scoring because they tend to hold
// structured metrics and benchmarks.
func (c *Chunk) IsTable() bool {
	return c.ChunkType == ChunkTypeTable
}
