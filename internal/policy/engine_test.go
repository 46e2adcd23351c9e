package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docscope/internal/types"
)

func TestGenerate_LowIntervention(t *testing.T) {
	pkg := Generate(Inputs{
		AverageEquityScore: 0.7,
		TotalCriticalGaps:  2,
		QualityGap:         0.05,
	})

	strategy := pkg.ExecutiveStrategy
	assert.Equal(t, types.InterventionLow, strategy.InterventionLevel)
	assert.Empty(t, strategy.Rationale)
	assert.Equal(t, "Mandatory Standardization & Equity Disclosure", strategy.PrimaryFocus)
	assert.InDelta(t, 0.7, strategy.MetricsDriver.EquityScore, 1e-9)
}

func TestGenerate_HighInterventionOnLowEquity(t *testing.T) {
	pkg := Generate(Inputs{AverageEquityScore: 0.3})

	strategy := pkg.ExecutiveStrategy
	assert.Equal(t, types.InterventionHigh, strategy.InterventionLevel)
	assert.Contains(t, strategy.Rationale, "Systemic failure in equity documentation")
}

func TestGenerate_CriticalOutranksHigh(t *testing.T) {
	pkg := Generate(Inputs{
		AverageEquityScore: 0.3,
		TotalCriticalGaps:  8,
		QualityGap:         -0.2,
	})

	strategy := pkg.ExecutiveStrategy
	assert.Equal(t, types.InterventionCritical, strategy.InterventionLevel)
	assert.Contains(t, strategy.Rationale, "critical gaps (8)")
	assert.Contains(t, strategy.Rationale, "machine-readable standardization")
}

func TestGenerate_ProcurementChecklistThresholds(t *testing.T) {
	pkg := Generate(Inputs{
		AverageEquityScore:    0.55,
		ProblematicCategories: []string{"Equity & Bias", "Safety & Risk", "Training Data", "Transparency"},
	})

	procurement, ok := pkg.StakeholderGuidance["procurement_officers"]
	require.True(t, ok)
	require.Len(t, procurement.Checklist, 3)
	assert.Equal(t, "Reject models with Equity Score < 0.65", procurement.Checklist[0])
	// Only the top three categories make the mandate.
	assert.Equal(t, "Mandate specific coverage of: Equity & Bias, Safety & Risk, Training Data", procurement.Checklist[2])
}

func TestGenerate_RejectionThresholdFloor(t *testing.T) {
	pkg := Generate(Inputs{AverageEquityScore: 0.1})

	procurement := pkg.StakeholderGuidance["procurement_officers"]
	assert.Equal(t, "Reject models with Equity Score < 0.40", procurement.Checklist[0])
}

func TestGenerate_PackageShape(t *testing.T) {
	pkg := Generate(Inputs{})

	assert.Len(t, pkg.StakeholderGuidance, 4)
	assert.Len(t, pkg.Implementation, 3)
	assert.Len(t, pkg.Enforcement, 3)
	assert.Len(t, pkg.TradeOffs, 3)

	regulators := pkg.StakeholderGuidance["regulators"]
	assert.Equal(t, "Standard Setter", regulators.Role)
	assert.Len(t, regulators.Focus, 3)
}
