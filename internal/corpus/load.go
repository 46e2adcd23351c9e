package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

// maxChunkLineBytes bounds a single JSONL line; table chunks can be
// large.
const maxChunkLineBytes = 1 << 20

// LoadChunks reads chunk records from a JSONL file, one JSON object
// per line. Blank lines are skipped.
func LoadChunks(path string) ([]types.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunks file: %w", err)
	}
	defer f.Close()

	var chunks []types.Chunk
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxChunkLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var chunk types.Chunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			return nil, fmt.Errorf("failed to parse chunk at %s:%d: %w", path, lineNo, err)
		}
		chunks = append(chunks, chunk)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunks file %s: %w", path, err)
	}

	return chunks, nil
}

// LoadMetadata reads the doc_id -> metadata map from a JSON file. The
// DocID field of each entry is filled from its map key.
func LoadMetadata(path string) (map[string]types.DocumentMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var metadata map[string]types.DocumentMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata JSON %s: %w", path, err)
	}

	for docID, meta := range metadata {
		if meta.DocID == "" {
			meta.DocID = docID
			metadata[docID] = meta
		}
	}

	return metadata, nil
}

// Load reads chunks and metadata and builds the corpus.
func Load(chunksPath, metadataPath string) (*Corpus, error) {
	chunks, err := LoadChunks(chunksPath)
	if err != nil {
		return nil, err
	}
	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}
	return New(chunks, metadata), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
