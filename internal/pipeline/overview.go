package pipeline

import (
	"fmt"
	"sort"

	"github.com/jonathan/docscope/internal/types"
)

// CoverageStats summarizes one category's coverage across the corpus.
type CoverageStats struct {
	Mean          float64 `json:"mean"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	DocsEvaluated int     `json:"docs_evaluated"`
}

// CategoryOverview is the deep-dive view of a single governance
// category: its schema definition plus corpus-wide coverage stats.
type CategoryOverview struct {
	CategoryID        string        `json:"category_id"`
	Name              string        `json:"name"`
	GovernanceAxis    string        `json:"governance_axis,omitempty"`
	Importance        float64       `json:"importance"`
	Description       string        `json:"description,omitempty"`
	Examples          []string      `json:"examples"`
	QuestionTemplates []string      `json:"question_templates"`
	OverallCoverage   CoverageStats `json:"overall_coverage"`
}

// CategoryBrief is one category's row in the all-categories summary.
type CategoryBrief struct {
	Name           string  `json:"name"`
	Importance     float64 `json:"importance"`
	GovernanceAxis string  `json:"governance_axis,omitempty"`
}

// SchemaOverview summarizes every category in the schema.
type SchemaOverview struct {
	TotalCategories int                      `json:"total_categories"`
	Categories      map[string]CategoryBrief `json:"categories"`
	GovernanceAxes  []string                 `json:"governance_axes"`
}

// CategoryDeepDive builds the overview of one category, including
// mean/min/max coverage over every document that was scored for it.
// Returns an error naming the available categories when the id is
// unknown.
func CategoryDeepDive(
	categoryID string,
	schema types.CategorySchema,
	docScores map[string]map[string]types.CategoryScore,
) (CategoryOverview, error) {
	cat, ok := schema[categoryID]
	if !ok {
		available := make([]string, 0, len(schema))
		for catID := range schema {
			available = append(available, catID)
		}
		sort.Strings(available)
		return CategoryOverview{}, fmt.Errorf("category %q not found, available: %v", categoryID, available)
	}

	var coverage []float64
	for _, scores := range docScores {
		if cs, ok := scores[categoryID]; ok {
			coverage = append(coverage, cs.Score)
		}
	}

	return CategoryOverview{
		CategoryID:        categoryID,
		Name:              cat.HumanNameEN,
		GovernanceAxis:    cat.GovernanceAxis,
		Importance:        cat.ImportanceWeight,
		Description:       cat.DescriptionEN,
		Examples:          cat.Examples,
		QuestionTemplates: cat.QuestionTemplates,
		OverallCoverage:   coverageStats(coverage),
	}, nil
}

// OverviewAllCategories summarizes the whole schema without coverage
// computation.
func OverviewAllCategories(schema types.CategorySchema) SchemaOverview {
	categories := make(map[string]CategoryBrief, len(schema))
	axes := make(map[string]struct{})
	for catID, cat := range schema {
		categories[catID] = CategoryBrief{
			Name:           cat.HumanNameEN,
			Importance:     cat.ImportanceWeight,
			GovernanceAxis: cat.GovernanceAxis,
		}
		axes[cat.GovernanceAxis] = struct{}{}
	}

	axisList := make([]string, 0, len(axes))
	for axis := range axes {
		axisList = append(axisList, axis)
	}
	sort.Strings(axisList)

	return SchemaOverview{
		TotalCategories: len(categories),
		Categories:      categories,
		GovernanceAxes:  axisList,
	}
}

func coverageStats(coverage []float64) CoverageStats {
	if len(coverage) == 0 {
		return CoverageStats{}
	}

	sum := 0.0
	minV, maxV := coverage[0], coverage[0]
	for _, v := range coverage {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return CoverageStats{
		Mean:          round3(sum / float64(len(coverage))),
		Min:           round3(minV),
		Max:           round3(maxV),
		DocsEvaluated: len(coverage),
	}
}
