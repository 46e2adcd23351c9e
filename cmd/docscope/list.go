package main

import (
	"os"

	"github.com/jonathan/docscope/internal/observability"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus documents",
	Long:  "List the documents in the corpus with year, type, and chunk count, newest first. --type filters by a doc_type substring (e.g. \"artifact\" or \"framework\").",
	RunE:  runList,
}

var (
	listChunks         string
	listMetadata       string
	listType           string
	listOut            string
	listVerbose        bool
	listSkipValidation bool
)

func init() {
	listCmd.Flags().StringVar(&listChunks, "chunks", defaultChunksPath, "Path to chunks JSONL file")
	listCmd.Flags().StringVar(&listMetadata, "metadata", defaultMetadataPath, "Path to document metadata JSON file")
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by doc_type substring")
	listCmd.Flags().StringVarP(&listOut, "out", "o", "", "Output file (defaults to stdout)")
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Print a formatted listing alongside the JSON")
	listCmd.Flags().BoolVar(&listSkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	// The category schema is not needed for listing.
	c, err := loadListingInputs(listChunks, listMetadata, listSkipValidation)
	if err != nil {
		return err
	}

	docs := c.ListDocuments(listType)
	if listVerbose {
		observability.NewPrinter(os.Stdout).PrintDocumentListing(docs)
	}
	return writeResult(docs, listOut)
}
