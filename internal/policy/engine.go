// Package policy translates audit findings into actionable policy
// recommendations: an executive strategy, stakeholder-specific
// guidance, implementation and enforcement mechanisms, and an explicit
// trade-off analysis.
package policy

import (
	"fmt"
	"strings"

	"github.com/jonathan/docscope/internal/types"
)

// Inputs carries the corpus-level findings the engine works from.
type Inputs struct {
	// AverageEquityScore is the mean enhanced equity score across
	// analyzed documents.
	AverageEquityScore float64
	// TotalCriticalGaps counts critical-severity gaps across the
	// corpus.
	TotalCriticalGaps int
	// QualityGap is artifact mean quality minus framework mean
	// quality; strongly negative means artifacts lag the frameworks.
	QualityGap float64
	// ProblematicCategories are the most frequently gapped category
	// names, worst first.
	ProblematicCategories []string
}

// Strategy derivation thresholds.
const (
	equityInterventionCutoff = 0.5
	criticalGapEscalation    = 5
	qualityDivergenceFloor   = -0.1
)

// Generate builds the complete policy package from corpus findings.
func Generate(in Inputs) types.PolicyPackage {
	strategy := deriveStrategy(in)
	return types.PolicyPackage{
		ExecutiveStrategy:   strategy,
		StakeholderGuidance: buildStakeholderGuidance(strategy, in),
		Implementation:      implementationPathways(),
		Enforcement:         enforcementMechanisms(),
		TradeOffs:           tradeOffAnalysis(),
	}
}

// deriveStrategy picks the intervention level from the data. Critical
// gap volume outranks the equity trigger.
func deriveStrategy(in Inputs) types.Strategy {
	level := types.InterventionLow
	var narrative []string

	if in.AverageEquityScore < equityInterventionCutoff {
		level = types.InterventionHigh
		narrative = append(narrative,
			"Systemic failure in equity documentation requires mandatory disclosure standards.")
	}
	if in.TotalCriticalGaps > criticalGapEscalation {
		level = types.InterventionCritical
		narrative = append(narrative, fmt.Sprintf(
			"High volume of critical gaps (%d) necessitates immediate procurement pauses for non-compliant vendors.",
			in.TotalCriticalGaps))
	}
	if in.QualityGap < qualityDivergenceFloor {
		narrative = append(narrative,
			"Significant divergence between frameworks and artifacts indicates need for machine-readable standardization.")
	}

	return types.Strategy{
		InterventionLevel: level,
		PrimaryFocus:      "Mandatory Standardization & Equity Disclosure",
		Rationale:         strings.Join(narrative, " "),
		MetricsDriver: types.StrategyMetrics{
			EquityScore:  in.AverageEquityScore,
			CriticalGaps: in.TotalCriticalGaps,
			QualityGap:   in.QualityGap,
		},
	}
}

func buildStakeholderGuidance(strategy types.Strategy, in Inputs) map[string]types.StakeholderGuidance {
	problemCats := in.ProblematicCategories
	if len(problemCats) > 3 {
		problemCats = problemCats[:3]
	}

	// The rejection threshold sits just above the observed average,
	// floored at 0.4.
	rejectBelow := strategy.MetricsDriver.EquityScore + 0.1
	if rejectBelow < 0.4 {
		rejectBelow = 0.4
	}

	return map[string]types.StakeholderGuidance{
		"procurement_officers": {
			Role:   "Gatekeeper",
			Action: "Implement 'Minimum Documentation Thresholds' for vendor contracts.",
			Checklist: []string{
				fmt.Sprintf("Reject models with Equity Score < %.2f", rejectBelow),
				"Require machine-readable (JSON) model cards",
				fmt.Sprintf("Mandate specific coverage of: %s", strings.Join(problemCats, ", ")),
			},
		},
		"regulators": {
			Role:   "Standard Setter",
			Action: "Codify the 'Dataset Nutrition Label' as a legal requirement for High-Risk AI.",
			Focus: []string{
				"Standardize definitions for 'Fairness' and 'Safety' metrics",
				"Enforce third-party audit for models claiming 'Open' status",
				"Penalty structures for deceptive 'PR-speak' in safety documentation",
			},
		},
		"developers": {
			Role:   "Implementer",
			Action: "Adopt 'Documentation-as-Code' workflows.",
			Checklist: []string{
				"Integrate documentation generation into CI/CD pipelines",
				"Map internal eval metrics directly to public documentation fields",
				"Run pre-release 'Documentation Audits' using DocScope",
			},
		},
		"civil_society": {
			Role:   "Watchdog",
			Action: "Conduct independent audits using automated tooling.",
			Focus: []string{
				"Monitor 'Equity Gap' in new releases",
				"Flag 'Regression' where newer models document less than older ones",
				"Demand disaggregated performance data for protected groups",
			},
		},
	}
}

func implementationPathways() []types.ImplementationPathway {
	return []types.ImplementationPathway{
		{
			Mechanism:   "Regulatory Mandate",
			Target:      "High-Risk Foundation Models",
			Description: "Federal requirement for standardized, machine-readable reporting on training data and evaluation.",
			Timeline:    "Immediate (Executive Order) -> 18 Months (Legislation)",
		},
		{
			Mechanism:   "Procurement Standard",
			Target:      "Public Sector AI Acquisition",
			Description: "GSA/OMB requirement: No government contract for models failing the 'Equity Transparency Test'.",
			Timeline:    "Immediate",
		},
		{
			Mechanism:   "Industry Standard",
			Target:      "Open Source Community",
			Description: "Integration of validation checks in Hugging Face / GitHub upload workflows.",
			Timeline:    "6-12 Months",
		},
	}
}

func enforcementMechanisms() []types.EnforcementMechanism {
	return []types.EnforcementMechanism{
		{
			Type:        "Automated Compliance Audits",
			Description: "Regulators use tools like DocScope to scrape and score documentation automatically.",
			Feasibility: "High - Proof of concept demonstrated by this analysis.",
		},
		{
			Type:        "Market Access Barriers",
			Description: "Models without passing documentation scores are barred from government marketplaces.",
			Feasibility: "Medium - Requires procurement policy changes.",
		},
		{
			Type:        "Deceptive Practice Penalties",
			Description: "FTC enforcement against 'Safety Washing' (high promotional score, low evidence score).",
			Feasibility: "High - Fits existing legal authorities.",
		},
	}
}

func tradeOffAnalysis() []types.TradeOff {
	return []types.TradeOff{
		{
			Dimension:     "Innovation Speed vs. Documentation Burden",
			TradeOff:      "Mandatory standardized documentation slows down release cycles.",
			Mitigation:    "Automate 80% of documentation via 'Documentation-as-Code' tools; limit heavy manual requirements to High-Risk systems only.",
			NetAssessment: "Short-term friction yields long-term ecosystem stability and trust.",
		},
		{
			Dimension:     "Transparency vs. Security",
			TradeOff:      "Detailed disclosure of training data or vulnerabilities could aid adversaries.",
			Mitigation:    "Tiered Access: Public 'Scorecards' for general public vs. Confidential 'Full Audits' for regulators/researchers.",
			NetAssessment: "Tiered approach preserves safety while enabling accountability.",
		},
		{
			Dimension:     "Standardization vs. Flexibility",
			TradeOff:      "Rigid templates may not fit novel, emerging architectures (e.g., Agentic systems).",
			Mitigation:    "Modular Standards: Core 'Universal' module + 'Architecture-Specific' extensions (e.g., Agent modules).",
			NetAssessment: "Flexible schema design prevents obsolescence.",
		},
	}
}
