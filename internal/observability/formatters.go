// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/docscope/internal/corpus"
	"github.com/jonathan/docscope/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAuditReport outputs a human-readable summary of a document audit.
func (p *Printer) PrintAuditReport(report *types.AuditReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Document: %s\n", report.Document.Title))
	sb.WriteString(fmt.Sprintf("Chunks:   %d\n", report.Document.TotalChunks))
	sb.WriteString(fmt.Sprintf("Overall:  %.3f across %d categories\n",
		report.Coverage.OverallScore, report.Coverage.CategoriesEvaluated))
	sb.WriteString("\n")

	if len(report.Gaps.Critical) > 0 {
		sb.WriteString("Critical gaps:\n")
		count := min(len(report.Gaps.Critical), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := report.Gaps.Critical[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%.3f)\n", gap.Category, gap.Score))
		}
		if len(report.Gaps.Critical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Gaps.Critical)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(report.Strengths), 3)
		for i := 0; i < count; i++ {
			s := report.Strengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.3f)\n", s.Category, s.Score))
		}
		if len(report.Strengths) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Strengths)-3))
		}
	}

	p.printBox("DOCUMENT AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs the gap analysis for one document, worst
// gaps first.
func (p *Printer) PrintGapAnalysis(gaps map[string]types.Gap) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO COVERAGE GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	ordered := make([]types.Gap, 0, len(gaps))
	for _, gap := range gaps {
		ordered = append(ordered, gap)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].GapSize != ordered[j].GapSize {
			return ordered[i].GapSize > ordered[j].GapSize
		}
		return ordered[i].CategoryID < ordered[j].CategoryID
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(ordered)))

	count := min(len(ordered), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := ordered[i]
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", gap.Name, gap.Severity))
		sb.WriteString(fmt.Sprintf("  score %.3f, gap %.3f\n", gap.CoverageScore, gap.GapSize))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ordered) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(ordered)-maxItemsToShow))
	}

	p.printBox("COVERAGE GAPS", sb.String())
}

// PrintEquityAnalysis outputs the enhanced equity analysis for one document.
func (p *Printer) PrintEquityAnalysis(analysis *types.EquityAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n", analysis.DocID))
	sb.WriteString(fmt.Sprintf("Score:    %.3f\n", analysis.EquityScore))
	sb.WriteString(fmt.Sprintf("Overall:  %s\n", analysis.OverallAssessment))
	sb.WriteString("\n")

	summary := analysis.CharacteristicSum
	sb.WriteString(fmt.Sprintf("Characteristics covered: %d/%d (%.1f%%)\n",
		summary.CoveredCharacteristics, summary.TotalCharacteristics, summary.CoveragePercentage))
	sb.WriteString(fmt.Sprintf("Fairness metrics:        %d (%d with numbers)\n",
		analysis.FairnessMetrics.Summary.MetricsMentioned, analysis.FairnessMetrics.Summary.MetricsWithNumbers))
	sb.WriteString(fmt.Sprintf("Intersectional chunks:   %d\n",
		analysis.Intersectional.ChunkCount))

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(analysis.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := analysis.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(analysis.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Recommendations)-3))
		}
	}

	p.printBox("EQUITY ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs the content quality analysis for one document.
func (p *Printer) PrintQualityReport(quality *types.DocumentQuality) {
	if quality == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chunks analyzed: %d\n", quality.DocumentLevel.ChunksAnalyzed))
	sb.WriteString(fmt.Sprintf("Overall quality: %.3f (std dev %.3f)\n",
		quality.DocumentLevel.MeanQualityScore, quality.DocumentLevel.QualityStdDev))
	sb.WriteString("\n")

	if len(quality.TierDistribution) > 0 {
		sb.WriteString("Tier distribution:\n")
		tiers := make([]string, 0, len(quality.TierDistribution))
		for tier := range quality.TierDistribution {
			tiers = append(tiers, tier)
		}
		sort.Strings(tiers)
		for _, tier := range tiers {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", tier, quality.TierDistribution[tier]))
		}
	}

	if len(quality.CommonIssues) > 0 {
		sb.WriteString("\nCommon issues:\n")
		count := min(len(quality.CommonIssues), 3)
		for i := 0; i < count; i++ {
			issue := quality.CommonIssues[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%d chunks)\n", issue.Flag, issue.AffectedChunks))
		}
	}

	p.printBox("CONTENT QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentListing outputs the corpus document listing.
func (p *Printer) PrintDocumentListing(docs []corpus.DocumentListing) {
	if len(docs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO DOCUMENTS LOADED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total documents: %d\n\n", len(docs)))

	count := min(len(docs), maxItemsToShow)
	for i := 0; i < count; i++ {
		doc := docs[i]
		title := doc.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		sb.WriteString(fmt.Sprintf("  %s, %d chunks\n", doc.DocType, doc.ChunkCount))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(docs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more documents", len(docs)-maxItemsToShow))
	}

	p.printBox("CORPUS DOCUMENTS", sb.String())
}
