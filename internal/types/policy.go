package types

// Intervention levels derived from corpus-wide audit findings.
const (
	InterventionLow      = "Low"
	InterventionHigh     = "High"
	InterventionCritical = "Critical"
)

// StrategyMetrics holds the data points that drove the strategy
// derivation, for traceability.
type StrategyMetrics struct {
	EquityScore  float64 `json:"equity_score"`
	CriticalGaps int     `json:"critical_gaps"`
	QualityGap   float64 `json:"quality_gap"`
}

// Strategy is the executive-level intervention recommendation.
type Strategy struct {
	InterventionLevel string          `json:"intervention_level"`
	PrimaryFocus      string          `json:"primary_focus"`
	Rationale         string          `json:"rationale"`
	MetricsDriver     StrategyMetrics `json:"metrics_driver"`
}

// StakeholderGuidance is the action list for one stakeholder group.
type StakeholderGuidance struct {
	Role      string   `json:"role"`
	Action    string   `json:"action"`
	Checklist []string `json:"checklist,omitempty"`
	Focus     []string `json:"focus_areas,omitempty"`
}

// ImplementationPathway describes one mechanism for putting the
// recommendations into practice.
type ImplementationPathway struct {
	Mechanism   string `json:"mechanism"`
	Target      string `json:"target"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

// EnforcementMechanism describes one way compliance can be enforced.
type EnforcementMechanism struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Feasibility string `json:"feasibility"`
}

// TradeOff captures the costs and benefits of an intervention
// dimension.
type TradeOff struct {
	Dimension     string `json:"dimension"`
	TradeOff      string `json:"trade_off"`
	Mitigation    string `json:"mitigation"`
	NetAssessment string `json:"net_assessment"`
}

// PolicyPackage is the complete set of policy recommendations derived
// from the analysis results.
type PolicyPackage struct {
	ExecutiveStrategy   Strategy                       `json:"executive_strategy"`
	StakeholderGuidance map[string]StakeholderGuidance `json:"stakeholder_guidance"`
	Implementation      []ImplementationPathway        `json:"implementation_mechanisms"`
	Enforcement         []EnforcementMechanism         `json:"enforcement_design"`
	TradeOffs           []TradeOff                     `json:"trade_off_analysis"`
}
