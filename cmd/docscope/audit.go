package main

import (
	"fmt"
	"os"

	"github.com/jonathan/docscope/internal/audit"
	"github.com/jonathan/docscope/internal/observability"
	"github.com/jonathan/docscope/internal/reporting"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit <doc_id>",
	Short: "Audit one document against the governance categories",
	Long:  "Audit a single document: score every governance category from keyword evidence, summarize strengths and gaps, and attach a severity-classified gap analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

var (
	auditChunks         string
	auditMetadata       string
	auditSchema         string
	auditGapThreshold   float64
	auditOut            string
	auditVerbose        bool
	auditSkipValidation bool
)

func init() {
	auditCmd.Flags().StringVar(&auditChunks, "chunks", defaultChunksPath, "Path to chunks JSONL file")
	auditCmd.Flags().StringVar(&auditMetadata, "metadata", defaultMetadataPath, "Path to document metadata JSON file")
	auditCmd.Flags().StringVar(&auditSchema, "schema", defaultSchemaPath, "Path to category schema JSON file")
	auditCmd.Flags().Float64Var(&auditGapThreshold, "gap-threshold", audit.DefaultGapThreshold, "Coverage score below which a category counts as a gap")
	auditCmd.Flags().StringVarP(&auditOut, "out", "o", "", "Output file (defaults to stdout)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON")
	auditCmd.Flags().BoolVar(&auditSkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	docID := args[0]

	c, catSchema, err := loadCorpusInputs(auditChunks, auditMetadata, auditSchema, auditSkipValidation)
	if err != nil {
		return err
	}

	chunks := c.DocChunks(docID)
	if len(chunks) == 0 {
		return fmt.Errorf("document %q not found in corpus (known documents: %d)", docID, len(c.ChunksByDoc))
	}

	scores := audit.AuditChunks(chunks, catSchema)
	report := reporting.GenerateEvidenceBasedReport(docID, scores, chunks, c.Metadata[docID], catSchema)
	report.GapAnalysis = audit.GenerateGapAnalysis(scores, catSchema, auditGapThreshold)

	if auditVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAuditReport(&report)
		printer.PrintGapAnalysis(report.GapAnalysis)
	}

	return writeResult(report, auditOut)
}
