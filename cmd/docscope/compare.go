package main

import (
	"github.com/jonathan/docscope/internal/audit"
	"github.com/jonathan/docscope/internal/reporting"
	"github.com/jonathan/docscope/internal/types"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare governance coverage across the corpus",
	Long:  "Compare category coverage across documents. By default the corpus is split into framework papers and real-world artifacts to expose the framework-practice gap; --by-type=false produces per-category statistics over all documents instead.",
	RunE:  runCompare,
}

var (
	compareChunks         string
	compareMetadata       string
	compareSchema         string
	compareByType         bool
	compareOut            string
	compareSkipValidation bool
)

func init() {
	compareCmd.Flags().StringVar(&compareChunks, "chunks", defaultChunksPath, "Path to chunks JSONL file")
	compareCmd.Flags().StringVar(&compareMetadata, "metadata", defaultMetadataPath, "Path to document metadata JSON file")
	compareCmd.Flags().StringVar(&compareSchema, "schema", defaultSchemaPath, "Path to category schema JSON file")
	compareCmd.Flags().BoolVar(&compareByType, "by-type", true, "Split documents into frameworks and artifacts")
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "Output file (defaults to stdout)")
	compareCmd.Flags().BoolVar(&compareSkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	c, catSchema, err := loadCorpusInputs(compareChunks, compareMetadata, compareSchema, compareSkipValidation)
	if err != nil {
		return err
	}

	allScores := make(map[string]map[string]types.CategoryScore)
	for _, docID := range c.DocIDs() {
		chunks := c.DocChunks(docID)
		if len(chunks) == 0 {
			continue
		}
		allScores[docID] = audit.AuditChunks(chunks, catSchema)
	}

	if !compareByType {
		return writeResult(audit.CompareDocuments(allScores, catSchema), compareOut)
	}

	frameworkScores := make(map[string]map[string]types.CategoryScore)
	artifactScores := make(map[string]map[string]types.CategoryScore)
	for docID, scores := range allScores {
		meta := c.Metadata[docID]
		if meta.IsFramework() {
			frameworkScores[docID] = scores
		} else {
			artifactScores[docID] = scores
		}
	}

	comparison := reporting.CompareFrameworkVsArtifactCoverage(
		frameworkScores, artifactScores, c.Metadata, catSchema)
	return writeResult(comparison, compareOut)
}
