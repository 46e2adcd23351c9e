package audit

import (
	"fmt"

	"github.com/jonathan/docscope/internal/types"
)

// DefaultGapThreshold is the minimum acceptable coverage score below
// which a category is reported as a gap.
const DefaultGapThreshold = 0.3

// Severity tier cutoffs applied to gap_size × importance_weight.
const (
	severityCriticalCutoff = 0.6
	severityHighCutoff     = 0.3
	severityMediumCutoff   = 0.15
)

// equityCategoryID is the category whose gaps are always elevated to
// at least high severity.
const equityCategoryID = "equity_bias"

// GenerateGapAnalysis identifies categories scoring below minThreshold
// and classifies gap severity. Pass minThreshold <= 0 to use
// DefaultGapThreshold. Equity gaps are never emitted below high
// severity.
func GenerateGapAnalysis(scores map[string]types.CategoryScore, schema types.CategorySchema, minThreshold float64) map[string]types.Gap {
	if minThreshold <= 0 {
		minThreshold = DefaultGapThreshold
	}

	gaps := make(map[string]types.Gap)

	for catID, cs := range scores {
		if cs.Score >= minThreshold {
			continue
		}

		importance := schema.Importance(catID)
		gapSize := minThreshold - cs.Score
		severityRaw := gapSize * importance

		var severity string
		switch {
		case severityRaw >= severityCriticalCutoff:
			severity = types.SeverityCritical
		case severityRaw >= severityHighCutoff:
			severity = types.SeverityHigh
		case severityRaw >= severityMediumCutoff:
			severity = types.SeverityMedium
		default:
			severity = types.SeverityLow
		}

		if catID == equityCategoryID && severity != types.SeverityCritical {
			severity = types.SeverityHigh
		}

		hasQuantitative := cs.TableHits > 0

		gaps[catID] = types.Gap{
			CategoryID:          catID,
			Name:                schema.Name(catID),
			Severity:            severity,
			CoverageScore:       cs.Score,
			Importance:          importance,
			GapSize:             gapSize,
			HasQuantitativeData: hasQuantitative,
			TableEvidence:       cs.TableHits,
			TextEvidence:        cs.TextHits,
			MissingQuestions:    schema.Questions(catID),
			Recommendation:      generateRecommendation(catID, cs, schema, hasQuantitative),
		}
	}

	return gaps
}

// generateRecommendation selects remediation wording for a gap. The
// equity, safety, and training-data categories get bespoke phrasing
// driven by whether any table evidence exists; everything else falls
// back to the category's first question template.
func generateRecommendation(catID string, cs types.CategoryScore, schema types.CategorySchema, hasQuantitative bool) string {
	name := schema.Name(catID)

	switch catID {
	case equityCategoryID:
		if !hasQuantitative {
			return fmt.Sprintf(
				"CRITICAL: %s lacks quantitative fairness metrics. "+
					"Require disaggregated performance data across demographic groups, "+
					"standardized fairness metrics (e.g., equalized odds, demographic parity), "+
					"and transparent reporting of disparate impact.", name)
		}
		return fmt.Sprintf(
			"%s has some quantitative data but coverage is incomplete. "+
				"Expand to include intersectional analysis and document mitigation strategies.", name)

	case "safety_risk":
		if cs.TableHits == 0 {
			return fmt.Sprintf(
				"%s lacks structured safety benchmarks. "+
					"Require standardized red-teaming results, refusal rate tables, "+
					"and incident tracking with severity classifications.", name)
		}
		return fmt.Sprintf(
			"%s has some safety data. "+
				"Enhance with threat model documentation and post-deployment monitoring plans.", name)

	case "training_data":
		return fmt.Sprintf(
			"%s documentation is incomplete. "+
				"Require data provenance, filtering methodology, "+
				"demographic composition, and licensing information.", name)
	}

	if questions := schema.Questions(catID); len(questions) > 0 {
		return fmt.Sprintf("%s needs better documentation. Key questions to address: %s", name, questions[0])
	}

	return fmt.Sprintf("%s requires more comprehensive documentation.", name)
}
