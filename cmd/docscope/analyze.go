package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/docscope/internal/config"
	"github.com/jonathan/docscope/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline end-to-end",
	Long: `Orchestrates the entire analysis: framework-vs-artifact comparison -> equity analysis -> per-document audits -> category deep dives -> gap summary -> policy recommendations. Writes every analysis as a JSON artifact.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath     string
	analyzeChunks         string
	analyzeMetadata       string
	analyzeSchema         string
	analyzeOutputDir      string
	analyzeGapThreshold   float64
	analyzeWorkers        int
	analyzeVerbose        bool
	analyzeSkipValidation bool
	analyzeDatabaseURL    string
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVar(&analyzeChunks, "chunks", "", "Path to chunks JSONL file")
	analyzeCmd.Flags().StringVar(&analyzeMetadata, "metadata", "", "Path to document metadata JSON file")
	analyzeCmd.Flags().StringVar(&analyzeSchema, "schema", "", "Path to category schema JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "out-dir", "o", "", "Directory for analysis artifacts")
	analyzeCmd.Flags().Float64Var(&analyzeGapThreshold, "gap-threshold", 0, "Coverage score below which a category counts as a gap")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Parallel document analyses (0 = number of CPUs)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeSkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	// Database URL for artifact persistence
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("chunks") {
		cfg.Chunks = analyzeChunks
	}
	if cmd.Flags().Changed("metadata") {
		cfg.Metadata = analyzeMetadata
	}
	if cmd.Flags().Changed("schema") {
		cfg.CategorySchema = analyzeSchema
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("gap-threshold") {
		cfg.GapThreshold = analyzeGapThreshold
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = analyzeWorkers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("skip-validation") {
		cfg.SkipValidation = analyzeSkipValidation
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Chunks:         defaultChunksPath,
		Metadata:       defaultMetadataPath,
		CategorySchema: defaultSchemaPath,
		OutputDir:      "analysis_results",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	c, catSchema, err := loadCorpusInputs(cfg.Chunks, cfg.Metadata, cfg.CategorySchema, cfg.SkipValidation)
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		OutputDir:    cfg.OutputDir,
		GapThreshold: cfg.GapThreshold,
		Workers:      cfg.Workers,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
	}

	results, err := pipeline.Run(ctx, c, catSchema, opts)
	if err != nil {
		return err
	}

	fmt.Printf("\nAnalysis complete: %d documents, %d audits, %d critical gaps\n",
		results.Metadata.TotalDocuments,
		len(results.DocumentAudits),
		results.GapSummary.Summary.TotalCriticalGaps)
	fmt.Printf("Results saved to: %s\n", cfg.OutputDir)

	return nil
}
