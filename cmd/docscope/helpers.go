package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/docscope/internal/corpus"
	"github.com/jonathan/docscope/internal/schema"
	"github.com/jonathan/docscope/internal/schemas"
	"github.com/jonathan/docscope/internal/types"
)

// Default input locations, matching the layout produced by the
// ingestion tooling.
const (
	defaultChunksPath   = "data/processed/chunks.jsonl"
	defaultMetadataPath = "data/processed/doc_metadata.json"
	defaultSchemaPath   = "data/processed/category_schema.json"
)

// loadCorpusInputs validates and loads the three corpus input files.
// Validation is skipped with a warning when the repo schemas directory
// cannot be resolved.
func loadCorpusInputs(chunksPath, metadataPath, schemaPath string, skipValidation bool) (*corpus.Corpus, types.CategorySchema, error) {
	if !skipValidation {
		chunkSchema := schemas.ResolveSchemaPath(filepath.Join("schemas", schemas.ChunkSchemaFile))
		if chunkSchema == "" {
			fmt.Fprintf(os.Stderr, "Warning: schemas directory not found, skipping input validation\n")
		} else {
			schemasDir := filepath.Dir(chunkSchema)
			if err := schemas.ValidateCorpusInputs(schemasDir, chunksPath, metadataPath, schemaPath); err != nil {
				return nil, nil, fmt.Errorf("input validation failed: %w", err)
			}
		}
	}

	c, err := corpus.Load(chunksPath, metadataPath)
	if err != nil {
		return nil, nil, err
	}

	catSchema, err := schema.Load(schemaPath)
	if err != nil {
		return nil, nil, err
	}

	return c, catSchema, nil
}

// loadListingInputs loads only the chunks and metadata, for commands
// that never touch the category schema.
func loadListingInputs(chunksPath, metadataPath string, skipValidation bool) (*corpus.Corpus, error) {
	if !skipValidation {
		chunkSchema := schemas.ResolveSchemaPath(filepath.Join("schemas", schemas.ChunkSchemaFile))
		if chunkSchema == "" {
			fmt.Fprintf(os.Stderr, "Warning: schemas directory not found, skipping input validation\n")
		} else {
			schemasDir := filepath.Dir(chunkSchema)
			if err := schemas.ValidateJSONLines(filepath.Join(schemasDir, schemas.ChunkSchemaFile), chunksPath); err != nil {
				return nil, fmt.Errorf("chunks validation failed: %w", err)
			}
			if err := schemas.ValidateJSON(filepath.Join(schemasDir, schemas.DocMetadataSchemaFile), metadataPath); err != nil {
				return nil, fmt.Errorf("metadata validation failed: %w", err)
			}
		}
	}

	return corpus.Load(chunksPath, metadataPath)
}

// writeResult marshals data as indented JSON to outPath, or to stdout
// when outPath is empty.
func writeResult(data any, outPath string) error {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Printf("Saved: %s\n", outPath)
	return nil
}
