package analyzer

import "clauselens/internal/models"

// Aggregate reduces per-clause risk levels to the document gauge: any High
// clause yields High, else any Medium yields Moderate, else Low. Total and
// deterministic; an empty slice is Low.
func Aggregate(results []Result) string {
	max := models.RiskLow
	for _, r := range results {
		max = models.MaxRisk(max, r.Clause.RiskLevel)
		if max == models.RiskHigh {
			break
		}
	}
	return models.GaugeForRisk(max)
}

// CategoryRisk returns the highest clause level in a category, Low when
// the category has no clauses.
func CategoryRisk(clauses []models.Clause) string {
	max := models.RiskLow
	for _, c := range clauses {
		max = models.MaxRisk(max, c.RiskLevel)
	}
	return max
}
