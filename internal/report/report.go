// Package report builds financial report content from caller-supplied facts.
//
// Two paths produce content: template-based fallback generation, which is
// deterministic and never fails, and provider-backed generation, which asks
// an external model for narrative text and degrades to the fallback on any
// error. Both paths return the same six-field Content structure so callers
// never have to care which one ran.
package report

// FinancialFacts is the input to a single generation call. It lives for the
// duration of one request and is never persisted.
type FinancialFacts struct {
	CompanyName      string  `json:"company_name"`
	Revenue          float64 `json:"revenue"`
	Profit           float64 `json:"profit"`
	GrowthPercentage float64 `json:"growth_percentage"`
	SectorTrends     string  `json:"sector_trends"`
	KeyMetrics       string  `json:"key_metrics"`
	Risks            string  `json:"risks"`
	Recommendations  string  `json:"recommendations"`
}

// ProfitMargin returns profit as a percentage of revenue. Zero revenue yields
// a zero margin rather than a division error.
func (f FinancialFacts) ProfitMargin() float64 {
	if f.Revenue <= 0 {
		return 0
	}
	return f.Profit / f.Revenue * 100
}

// Content is the canonical report structure. Every generation path fills all
// six fields; downstream code can rely on none of them being absent.
type Content struct {
	ExecutiveSummary   string   `json:"executive_summary"`
	KeyTrends          string   `json:"key_trends"`
	Risks              string   `json:"risks"`
	Recommendations    string   `json:"recommendations"`
	TopRisks           []string `json:"top_risks"`
	TopRecommendations []string `json:"top_recommendations"`
}
