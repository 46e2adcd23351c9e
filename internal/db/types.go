package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents an audit run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	CorpusPath  string     `json:"corpus_path"`
	DocCount    int        `json:"doc_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepAuditReport       = "audit_report"
	StepComparativeReport = "comparative_report"
	StepEquityAnalysis    = "equity_analysis"
	StepEquityComparison  = "equity_comparison"
	StepQualityAnalysis   = "quality_analysis"
	StepQualityComparison = "quality_comparison"
	StepGapSummary        = "gap_summary"
	StepCategoryOverview  = "category_overview"
	StepPolicyPackage     = "policy_package"
)

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)
