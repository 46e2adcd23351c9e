package reporting

import "github.com/jonathan/docscope/internal/types"

// CompareFrameworkVsArtifactCoverage compares category coverage
// between framework/guidance papers and real documentation artifacts.
// The caller is responsible for splitting docScores into the two
// groups using DocumentMetadata.IsFramework. Group means are nil when
// the group has no data for a category; the gap subtraction treats a
// missing mean as 0, so its sign can be dominated by whichever group
// has data.
func CompareFrameworkVsArtifactCoverage(
	frameworkScores map[string]map[string]types.CategoryScore,
	artifactScores map[string]map[string]types.CategoryScore,
	docMetadata map[string]types.DocumentMetadata,
	schema types.CategorySchema,
) types.FrameworkComparison {
	comparison := types.FrameworkComparison{
		Frameworks: types.DocGroup{
			DocCount: len(frameworkScores),
			DocIDs:   docIDsOf(frameworkScores),
		},
		Artifacts: types.DocGroup{
			DocCount: len(artifactScores),
			DocIDs:   docIDsOf(artifactScores),
		},
		Categories: make(map[string]types.CategoryComparison),
	}

	allCategories := make(map[string]struct{})
	for _, scores := range frameworkScores {
		for catID := range scores {
			allCategories[catID] = struct{}{}
		}
	}
	for _, scores := range artifactScores {
		for catID := range scores {
			allCategories[catID] = struct{}{}
		}
	}

	for catID := range allCategories {
		var frameworkCoverage []float64
		for _, scores := range frameworkScores {
			if cs, ok := scores[catID]; ok {
				frameworkCoverage = append(frameworkCoverage, cs.Score)
			}
		}

		var artifactCoverage []float64
		artifactExamples := make(map[string]types.ArtifactExample)
		for docID, scores := range artifactScores {
			cs, ok := scores[catID]
			if !ok {
				continue
			}
			artifactCoverage = append(artifactCoverage, cs.Score)

			title := docID
			if meta, ok := docMetadata[docID]; ok && meta.Title != "" {
				title = meta.Title
			}
			artifactExamples[docID] = types.ArtifactExample{
				Title:     title,
				Score:     round3(cs.Score),
				HitCount:  cs.HitCount,
				HasTables: cs.TableHits > 0,
			}
		}

		if len(frameworkCoverage) == 0 && len(artifactCoverage) == 0 {
			continue
		}

		frameworkMean := meanOrNil(frameworkCoverage)
		artifactMean := meanOrNil(artifactCoverage)

		comparison.Categories[catID] = types.CategoryComparison{
			CategoryName:     schema.Name(catID),
			FrameworkMean:    frameworkMean,
			ArtifactMean:     artifactMean,
			Gap:              round3(orZero(frameworkMean) - orZero(artifactMean)),
			FrameworkCount:   len(frameworkCoverage),
			ArtifactCount:    len(artifactCoverage),
			ArtifactExamples: artifactExamples,
		}
	}

	return comparison
}

func docIDsOf(scores map[string]map[string]types.CategoryScore) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	return ids
}

// meanOrNil returns nil for an empty sample so reports can distinguish
// "no data" from "zero coverage".
func meanOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := round3(sum / float64(len(values)))
	return &m
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0.0
	}
	return *v
}
