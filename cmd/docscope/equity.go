package main

import (
	"fmt"
	"os"

	"github.com/jonathan/docscope/internal/audit"
	"github.com/jonathan/docscope/internal/equity"
	"github.com/jonathan/docscope/internal/observability"
	"github.com/jonathan/docscope/internal/reporting"
	"github.com/jonathan/docscope/internal/types"
	"github.com/spf13/cobra"
)

var equityCmd = &cobra.Command{
	Use:   "equity [doc_id]",
	Short: "Run the enhanced equity analysis",
	Long:  "With a doc_id, run the enhanced equity analysis of one document: protected characteristic coverage, intersectionality, fairness metrics, quantitative evidence, mitigation strategies, and best practices. Without one, produce the corpus-wide equity summary and cross-document comparison.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEquity,
}

var (
	equityChunks         string
	equityMetadata       string
	equitySchema         string
	equityOut            string
	equityVerbose        bool
	equitySkipValidation bool
)

func init() {
	equityCmd.Flags().StringVar(&equityChunks, "chunks", defaultChunksPath, "Path to chunks JSONL file")
	equityCmd.Flags().StringVar(&equityMetadata, "metadata", defaultMetadataPath, "Path to document metadata JSON file")
	equityCmd.Flags().StringVar(&equitySchema, "schema", defaultSchemaPath, "Path to category schema JSON file")
	equityCmd.Flags().StringVarP(&equityOut, "out", "o", "", "Output file (defaults to stdout)")
	equityCmd.Flags().BoolVarP(&equityVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON")
	equityCmd.Flags().BoolVar(&equitySkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(equityCmd)
}

func runEquity(cmd *cobra.Command, args []string) error {
	c, catSchema, err := loadCorpusInputs(equityChunks, equityMetadata, equitySchema, equitySkipValidation)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		docID := args[0]
		chunks := c.DocChunks(docID)
		if len(chunks) == 0 {
			return fmt.Errorf("document %q not found in corpus", docID)
		}

		analysis := equity.AnalyzeDocumentEquity(chunks, c.Metadata[docID])
		if equityVerbose {
			observability.NewPrinter(os.Stdout).PrintEquityAnalysis(&analysis)
		}
		return writeResult(analysis, equityOut)
	}

	allScores := make(map[string]map[string]types.CategoryScore)
	var analyses []types.EquityAnalysis
	for _, docID := range c.DocIDs() {
		chunks := c.DocChunks(docID)
		if len(chunks) == 0 {
			continue
		}
		allScores[docID] = audit.AuditChunks(chunks, catSchema)
		analyses = append(analyses, equity.AnalyzeDocumentEquity(chunks, c.Metadata[docID]))
	}

	result := struct {
		Summary    types.EquitySummary    `json:"equity_summary"`
		Comparison types.EquityComparison `json:"enhanced_comparison"`
	}{
		Summary:    reporting.GenerateEquityFocusedAnalysis(allScores, c.Metadata),
		Comparison: equity.CompareEquityAnalyses(analyses),
	}

	return writeResult(result, equityOut)
}
