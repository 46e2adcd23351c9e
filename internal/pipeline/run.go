// Package pipeline provides the high-level orchestration for the corpus analysis process.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/docscope/internal/audit"
	"github.com/jonathan/docscope/internal/corpus"
	"github.com/jonathan/docscope/internal/db"
	"github.com/jonathan/docscope/internal/equity"
	"github.com/jonathan/docscope/internal/observability"
	"github.com/jonathan/docscope/internal/policy"
	"github.com/jonathan/docscope/internal/quality"
	"github.com/jonathan/docscope/internal/reporting"
	"github.com/jonathan/docscope/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the analysis pipeline
type RunOptions struct {
	OutputDir           string
	GapThreshold        float64
	MaxAuditedArtifacts int
	PriorityCategories  []string
	Workers             int
	Verbose             bool
	DatabaseURL         string
	OnProgress          ProgressCallback
}

// defaultMaxAuditedArtifacts bounds how many artifacts get full
// per-document audits; the most recent ones are taken first.
const defaultMaxAuditedArtifacts = 5

// defaultPriorityCategories receive deep dives when no explicit list
// is configured.
var defaultPriorityCategories = []string{"equity_bias", "safety_risk", "training_data"}

// RunMetadata records the shape of the analyzed corpus.
type RunMetadata struct {
	Timestamp      string `json:"timestamp"`
	TotalDocuments int    `json:"total_documents"`
	TotalChunks    int    `json:"total_chunks"`
	Categories     int    `json:"categories"`
}

// Results holds every analysis artifact produced by one pipeline run.
type Results struct {
	Metadata            RunMetadata                      `json:"metadata"`
	FrameworkComparison types.FrameworkComparison        `json:"framework_vs_artifact"`
	EquitySummary       types.EquitySummary              `json:"equity_analysis"`
	DocumentAudits      map[string]types.AuditReport     `json:"document_audits"`
	CategoryInsights    map[string]CategoryOverview      `json:"category_insights"`
	GapSummary          types.GapSummary                 `json:"gap_summary"`
	EquityComparison    types.EquityComparison           `json:"enhanced_equity_comparison"`
	QualityComparison   types.QualityComparison          `json:"content_quality_comparison"`
	DocumentQuality     map[string]types.DocumentQuality `json:"-"`
	Policy              types.PolicyPackage              `json:"policy_recommendations"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// docAnalyses holds the per-document outputs computed up front.
type docAnalyses struct {
	scores      map[string]types.CategoryScore
	equity      types.EquityAnalysis
	quality     types.DocumentQuality
	hasAnalyses bool
}

// Run orchestrates the full corpus analysis pipeline
func Run(ctx context.Context, c *corpus.Corpus, schema types.CategorySchema, opts RunOptions) (*Results, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	docIDs := c.DocIDs()
	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, opts.OutputDir, len(docIDs))
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			database = nil
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
		}
	}

	// Score every document up front; each later step is a pure
	// aggregation over these results.
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	perDoc := make([]docAnalyses, len(docIDs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, docID := range docIDs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			chunks := c.DocChunks(docID)
			if len(chunks) == 0 {
				return nil
			}
			meta := c.Metadata[docID]

			q, err := quality.AnalyzeDocument(chunks)
			if err != nil {
				return fmt.Errorf("quality analysis of %s failed: %w", docID, err)
			}

			perDoc[i] = docAnalyses{
				scores:      audit.AuditChunks(chunks, schema),
				equity:      equity.AnalyzeDocumentEquity(chunks, meta),
				quality:     q,
				hasAnalyses: true,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	allScores := make(map[string]map[string]types.CategoryScore)
	frameworkScores := make(map[string]map[string]types.CategoryScore)
	artifactScores := make(map[string]map[string]types.CategoryScore)
	equityAnalyses := make([]types.EquityAnalysis, 0, len(docIDs))
	docQuality := make(map[string]types.DocumentQuality)

	for i, docID := range docIDs {
		if !perDoc[i].hasAnalyses {
			continue
		}
		allScores[docID] = perDoc[i].scores
		equityAnalyses = append(equityAnalyses, perDoc[i].equity)
		docQuality[docID] = perDoc[i].quality

		meta := c.Metadata[docID]
		if meta.IsFramework() {
			frameworkScores[docID] = perDoc[i].scores
		} else {
			artifactScores[docID] = perDoc[i].scores
		}
	}

	results := &Results{
		Metadata: RunMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			TotalDocuments: len(c.Metadata),
			TotalChunks:    len(c.Chunks),
			Categories:     len(schema),
		},
		DocumentQuality: docQuality,
	}

	// Step 1: Framework vs artifact comparison
	fmt.Printf("Step 1/6: Comparing framework vs artifact coverage...\n")
	results.FrameworkComparison = reporting.CompareFrameworkVsArtifactCoverage(
		frameworkScores, artifactScores, c.Metadata, schema)
	emitProgress(&opts, db.StepComparativeReport,
		fmt.Sprintf("Compared %d frameworks against %d artifacts",
			results.FrameworkComparison.Frameworks.DocCount,
			results.FrameworkComparison.Artifacts.DocCount), nil)

	// Step 2: Equity-focused coverage analysis
	fmt.Printf("Step 2/6: Analyzing equity and bias coverage...\n")
	results.EquitySummary = reporting.GenerateEquityFocusedAnalysis(allScores, c.Metadata)
	emitProgress(&opts, db.StepEquityAnalysis,
		fmt.Sprintf("Equity coverage found in %d/%d documents",
			results.EquitySummary.DocsWithCoverage, results.EquitySummary.TotalDocsAnalyzed), nil)

	// Step 3: Individual audits of the most recent artifacts
	fmt.Printf("Step 3/6: Auditing individual documents...\n")
	maxAudited := opts.MaxAuditedArtifacts
	if maxAudited <= 0 {
		maxAudited = defaultMaxAuditedArtifacts
	}

	results.DocumentAudits = make(map[string]types.AuditReport)
	var auditOrder []string
	for _, doc := range c.ListDocuments("artifact") {
		if len(auditOrder) >= maxAudited {
			break
		}
		scores, ok := allScores[doc.DocID]
		if !ok {
			continue
		}

		report := reporting.GenerateEvidenceBasedReport(
			doc.DocID, scores, c.DocChunks(doc.DocID), c.Metadata[doc.DocID], schema)
		report.GapAnalysis = audit.GenerateGapAnalysis(scores, schema, opts.GapThreshold)

		results.DocumentAudits[doc.DocID] = report
		auditOrder = append(auditOrder, doc.DocID)

		if opts.Verbose {
			printer.PrintAuditReport(&report)
		}
	}
	emitProgress(&opts, db.StepAuditReport,
		fmt.Sprintf("Audited %d artifacts", len(auditOrder)), nil)

	// Step 4: Category deep dives
	fmt.Printf("Step 4/6: Performing category deep dives...\n")
	priority := opts.PriorityCategories
	if len(priority) == 0 {
		priority = defaultPriorityCategories
	}

	results.CategoryInsights = make(map[string]CategoryOverview)
	for _, catID := range priority {
		overview, err := CategoryDeepDive(catID, schema, allScores)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			continue
		}
		results.CategoryInsights[catID] = overview
	}
	emitProgress(&opts, db.StepCategoryOverview,
		fmt.Sprintf("Deep-dived %d categories", len(results.CategoryInsights)), nil)

	// Step 5: Gap analysis summary
	fmt.Printf("Step 5/6: Generating gap analysis summary...\n")
	results.GapSummary = GenerateGapSummary(results.DocumentAudits, auditOrder)
	if opts.Verbose {
		for _, docID := range auditOrder {
			printer.PrintGapAnalysis(results.DocumentAudits[docID].GapAnalysis)
		}
	}
	emitProgress(&opts, db.StepGapSummary,
		fmt.Sprintf("Found %d critical and %d high gaps",
			results.GapSummary.Summary.TotalCriticalGaps,
			results.GapSummary.Summary.TotalHighGaps), nil)

	// Step 6: Enhanced equity + quality comparisons feeding policy recommendations
	fmt.Printf("Step 6/6: Generating evidence-based policy recommendations...\n")
	results.EquityComparison = equity.CompareEquityAnalyses(equityAnalyses)
	results.QualityComparison = quality.CompareDocuments(docQuality)

	problematic := make([]string, 0, len(results.GapSummary.Summary.MostProblematicCategories))
	for _, cat := range results.GapSummary.Summary.MostProblematicCategories {
		problematic = append(problematic, cat.CategoryName)
	}

	results.Policy = policy.Generate(policy.Inputs{
		AverageEquityScore:    results.EquityComparison.AverageEquityScore,
		TotalCriticalGaps:     results.GapSummary.Summary.TotalCriticalGaps,
		QualityGap:            qualityGap(docQuality, c.Metadata),
		ProblematicCategories: problematic,
	})
	emitProgress(&opts, db.StepPolicyPackage,
		fmt.Sprintf("Derived %s intervention strategy", results.Policy.ExecutiveStrategy.InterventionLevel), nil)

	if err := writeArtifacts(results, opts.OutputDir); err != nil {
		return nil, err
	}

	if database != nil && runID != uuid.Nil {
		saveToDatabase(ctx, database, runID, results)
		if err := database.CompleteRun(ctx, runID, db.RunStatusCompleted); err != nil {
			fmt.Printf("Warning: Failed to complete database run: %v\n", err)
		}
	}

	return results, nil
}

// qualityGap is artifact mean quality minus framework mean quality.
// Negative values mean real-world artifacts read worse than the
// frameworks that govern them.
func qualityGap(docQuality map[string]types.DocumentQuality, metadata map[string]types.DocumentMetadata) float64 {
	var frameworkSum, artifactSum float64
	var frameworkN, artifactN int

	for docID, q := range docQuality {
		meta, ok := metadata[docID]
		if !ok {
			continue
		}
		if meta.IsFramework() {
			frameworkSum += q.DocumentLevel.MeanQualityScore
			frameworkN++
		} else {
			artifactSum += q.DocumentLevel.MeanQualityScore
			artifactN++
		}
	}

	if frameworkN == 0 || artifactN == 0 {
		return 0
	}
	return artifactSum/float64(artifactN) - frameworkSum/float64(frameworkN)
}

// writeArtifacts saves each analysis as its own JSON file plus a
// combined complete_analysis.json. A missing output dir disables
// writing.
func writeArtifacts(results *Results, outputDir string) error {
	if outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{"framework_vs_artifact_comparison.json", results.FrameworkComparison},
		{"equity_focused_analysis.json", results.EquitySummary},
		{"document_audits.json", results.DocumentAudits},
		{"category_deep_dives.json", results.CategoryInsights},
		{"gap_analysis_summary.json", results.GapSummary},
		{"enhanced_equity_comparison.json", results.EquityComparison},
		{"content_quality_comparison.json", results.QualityComparison},
		{"policy_recommendations.json", results.Policy},
		{"complete_analysis.json", results},
	}

	for _, f := range files {
		if err := writeJSON(filepath.Join(outputDir, f.name), f.data); err != nil {
			return err
		}
		fmt.Printf("  Saved: %s\n", f.name)
	}
	return nil
}

func writeJSON(path string, data any) error {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveToDatabase persists run artifacts, warning on failure rather
// than aborting a finished analysis.
func saveToDatabase(ctx context.Context, database *db.DB, runID uuid.UUID, results *Results) {
	_ = database.SaveArtifact(ctx, runID, db.StepComparativeReport, "", results.FrameworkComparison)
	_ = database.SaveArtifact(ctx, runID, db.StepEquityAnalysis, "", results.EquitySummary)
	_ = database.SaveArtifact(ctx, runID, db.StepGapSummary, "", results.GapSummary)
	_ = database.SaveArtifact(ctx, runID, db.StepEquityComparison, "", results.EquityComparison)
	_ = database.SaveArtifact(ctx, runID, db.StepQualityComparison, "", results.QualityComparison)
	_ = database.SaveArtifact(ctx, runID, db.StepPolicyPackage, "", results.Policy)

	for docID, report := range results.DocumentAudits {
		_ = database.SaveArtifact(ctx, runID, db.StepAuditReport, docID, report)
	}
	for catID, overview := range results.CategoryInsights {
		_ = database.SaveArtifact(ctx, runID, db.StepCategoryOverview, catID, overview)
	}
}
