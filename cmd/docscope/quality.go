package main

import (
	"fmt"
	"os"

	"github.com/jonathan/docscope/internal/observability"
	"github.com/jonathan/docscope/internal/quality"
	"github.com/jonathan/docscope/internal/types"
	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality [doc_id]",
	Short: "Analyze content quality (substantive vs promotional)",
	Long:  "With a doc_id, analyze one document's chunks for promotional language, substantive technical content, specificity, and evidence. Without one, rank every document by mean quality.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuality,
}

var (
	qualityChunks         string
	qualityMetadata       string
	qualitySchema         string
	qualityOut            string
	qualityVerbose        bool
	qualitySkipValidation bool
)

func init() {
	qualityCmd.Flags().StringVar(&qualityChunks, "chunks", defaultChunksPath, "Path to chunks JSONL file")
	qualityCmd.Flags().StringVar(&qualityMetadata, "metadata", defaultMetadataPath, "Path to document metadata JSON file")
	qualityCmd.Flags().StringVar(&qualitySchema, "schema", defaultSchemaPath, "Path to category schema JSON file")
	qualityCmd.Flags().StringVarP(&qualityOut, "out", "o", "", "Output file (defaults to stdout)")
	qualityCmd.Flags().BoolVarP(&qualityVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON")
	qualityCmd.Flags().BoolVar(&qualitySkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) error {
	c, _, err := loadCorpusInputs(qualityChunks, qualityMetadata, qualitySchema, qualitySkipValidation)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		docID := args[0]
		chunks := c.DocChunks(docID)
		if len(chunks) == 0 {
			return fmt.Errorf("document %q not found in corpus", docID)
		}

		docQuality, err := quality.AnalyzeDocument(chunks)
		if err != nil {
			return err
		}
		if qualityVerbose {
			observability.NewPrinter(os.Stdout).PrintQualityReport(&docQuality)
		}
		return writeResult(docQuality, qualityOut)
	}

	docAnalyses := make(map[string]types.DocumentQuality)
	for _, docID := range c.DocIDs() {
		chunks := c.DocChunks(docID)
		if len(chunks) == 0 {
			continue
		}
		docQuality, err := quality.AnalyzeDocument(chunks)
		if err != nil {
			return fmt.Errorf("quality analysis of %s failed: %w", docID, err)
		}
		docAnalyses[docID] = docQuality
	}

	return writeResult(quality.CompareDocuments(docAnalyses), qualityOut)
}
