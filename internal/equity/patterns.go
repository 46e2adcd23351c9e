package equity

import "regexp"

// characteristicOrder fixes iteration order over the protected
// characteristic groups so summaries and recommendations are
// deterministic.
var characteristicOrder = []string{
	"race_ethnicity",
	"gender",
	"disability",
	"age",
	"language",
	"socioeconomic",
	"geography",
}

// protectedCharacteristics maps each characteristic group to the
// keywords that signal it. Matching is case-insensitive substring.
var protectedCharacteristics = map[string][]string{
	"race_ethnicity": {
		"race", "racial", "ethnicity", "ethnic", "Black", "African American",
		"Hispanic", "Latinx", "Latino", "Latina", "Asian", "Indigenous",
		"Native American", "White", "Caucasian", "multiracial",
	},
	"gender": {
		"gender", "gendered", "sex", "women", "men", "male", "female",
		"nonbinary", "non-binary", "transgender", "cisgender", "LGBTQ",
		"LGBTQIA", "queer",
	},
	"disability": {
		"disability", "disabled", "accessibility", "accessible",
		"visual impairment", "hearing impairment", "mobility",
		"cognitive disability", "neurodiversity", "neurodivergent",
	},
	"age": {
		"age", "elderly", "older adults", "seniors", "children",
		"minors", "youth", "generational",
	},
	"language": {
		"language", "linguistic", "non-English", "multilingual",
		"dialect", "accent", "native speaker", "language barrier",
	},
	"socioeconomic": {
		"socioeconomic", "income", "poverty", "wealth gap",
		"economic disadvantage", "low-income", "affluent",
	},
	"geography": {
		"geography", "geographic", "rural", "urban", "regional",
		"developing countries", "Global South", "remote areas",
	},
}

// fairnessMetricFamilies maps formal fairness-metric families to the
// phrases that signal them.
var fairnessMetricFamilies = map[string][]string{
	"statistical_parity": {
		"demographic parity", "statistical parity", "equal acceptance rates",
	},
	"equalized_odds": {
		"equalized odds", "equal opportunity", "true positive rate parity",
		"false positive rate parity",
	},
	"predictive_parity": {
		"predictive parity", "predictive value parity", "precision parity",
	},
	"calibration": {
		"calibration", "calibrated", "calibration by group",
	},
	"counterfactual": {
		"counterfactual fairness", "individual fairness", "similar treatment",
	},
	"disparate_impact": {
		"disparate impact", "adverse impact", "four-fifths rule", "80% rule",
	},
}

// quantitativePatterns detect numeric evidence: percentages, p-values,
// confidence intervals, ratios, and common benchmark scores.
var quantitativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d+\.?\d*\s*%`),
	regexp.MustCompile(`\b\d+\.?\d*\s*percent`),
	regexp.MustCompile(`\bp\s*[<>=]\s*0?\.\d+`),
	regexp.MustCompile(`\b\d+\.?\d*\s*[±]\s*\d+\.?\d*`),
	regexp.MustCompile(`\b\d+\.?\d*/\d+\.?\d*`),
	regexp.MustCompile(`AUC.*\d+\.?\d*`),
	regexp.MustCompile(`F1.*\d+\.?\d*`),
}

// mitigationKeywords signal bias mitigation strategies.
var mitigationKeywords = []string{
	"mitigation", "mitigate", "mitigated",
	"debiasing", "debias", "debiased",
	"reweighting", "resampling",
	"fairness constraints", "fairness-aware",
	"bias correction", "adjustment",
	"post-processing", "pre-processing",
}

// bestPracticePatterns maps equity documentation best practices to the
// phrases that signal them.
var bestPracticePatterns = map[string][]string{
	"disaggregated_reporting": {
		"disaggregated", "broken down by", "stratified by",
		"subgroup analysis", "per-group performance",
	},
	"stakeholder_engagement": {
		"stakeholder engagement", "community consultation",
		"participatory design", "affected communities",
	},
	"impact_assessment": {
		"impact assessment", "equity impact", "fairness assessment",
		"bias audit", "algorithmic audit",
	},
	"transparency": {
		"transparent", "transparency", "disclosed", "publicly available",
	},
}

// intersectionalPhrases mark explicit intersectional language, as
// opposed to incidental co-occurrence of characteristic groups.
var intersectionalPhrases = []string{
	"intersectional", "intersection", "compound discrimination",
	"multiply marginalized", "overlapping identities",
}

// equityKeywords gate the quantitative-evidence scan to chunks that
// are actually about equity.
var equityKeywords = []string{
	"equity", "bias", "fairness", "disparity", "discrimination",
}

func hasQuantitativeData(text string) bool {
	for _, p := range quantitativePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
