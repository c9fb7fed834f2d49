package report_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nyashahama/financial-report-backend/internal/report"
)

func sampleFacts() report.FinancialFacts {
	return report.FinancialFacts{
		CompanyName:      "Acme Manufacturing",
		Revenue:          56000000,
		Profit:           8400000,
		GrowthPercentage: 12.5,
		SectorTrends:     "Automation adoption is accelerating",
		KeyMetrics:       "EBITDA up 4% year on year",
		Risks:            "Raw material price swings",
		Recommendations:  "Expand into adjacent markets",
	}
}

func TestFallback_PopulatesAllSixFields(t *testing.T) {
	content := report.Fallback(sampleFacts())

	if content.ExecutiveSummary == "" {
		t.Error("executive summary is empty")
	}
	if content.KeyTrends == "" {
		t.Error("key trends is empty")
	}
	if content.Risks == "" {
		t.Error("risks is empty")
	}
	if content.Recommendations == "" {
		t.Error("recommendations is empty")
	}
	if len(content.TopRisks) == 0 {
		t.Error("top risks is empty")
	}
	if len(content.TopRecommendations) == 0 {
		t.Error("top recommendations is empty")
	}
}

func TestFallback_InterpolatesFacts(t *testing.T) {
	content := report.Fallback(sampleFacts())

	if !strings.Contains(content.ExecutiveSummary, "Acme Manufacturing") {
		t.Errorf("executive summary missing company name: %q", content.ExecutiveSummary)
	}
	if !strings.Contains(content.ExecutiveSummary, "INR 56,000,000.00") {
		t.Errorf("executive summary missing formatted revenue: %q", content.ExecutiveSummary)
	}
	if !strings.Contains(content.ExecutiveSummary, "profit margin of 15.0%") {
		t.Errorf("executive summary missing profit margin: %q", content.ExecutiveSummary)
	}
	if !strings.Contains(content.ExecutiveSummary, "12.5% growth") {
		t.Errorf("executive summary missing growth rate: %q", content.ExecutiveSummary)
	}
	if !strings.Contains(content.KeyTrends, "Automation adoption is accelerating") {
		t.Errorf("key trends missing sector trends: %q", content.KeyTrends)
	}
	if !strings.Contains(content.KeyTrends, "EBITDA up 4% year on year") {
		t.Errorf("key trends missing key metrics: %q", content.KeyTrends)
	}
	if !strings.Contains(content.Risks, "Raw material price swings") {
		t.Errorf("risks missing identified risks: %q", content.Risks)
	}
	if !strings.Contains(content.Recommendations, "Expand into adjacent markets") {
		t.Errorf("recommendations missing caller input: %q", content.Recommendations)
	}
}

func TestFallback_ZeroRevenueYieldsZeroMargin(t *testing.T) {
	facts := sampleFacts()
	facts.Revenue = 0
	facts.Profit = 500000

	content := report.Fallback(facts)

	if !strings.Contains(content.ExecutiveSummary, "profit margin of 0.0%") {
		t.Errorf("expected zero margin for zero revenue, got: %q", content.ExecutiveSummary)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	first := report.Fallback(sampleFacts())
	second := report.Fallback(sampleFacts())

	if !reflect.DeepEqual(first, second) {
		t.Error("same facts produced different content")
	}
}

func TestFallback_FixedTopLists(t *testing.T) {
	content := report.Fallback(sampleFacts())

	wantRisks := []string{
		"Market volatility and economic uncertainty",
		"Competitive pressure and market share erosion",
		"Operational inefficiencies and cost escalation",
	}
	wantRecs := []string{
		"Diversify revenue streams and market presence",
		"Implement advanced analytics for decision making",
		"Strengthen operational risk management processes",
	}

	if !reflect.DeepEqual(content.TopRisks, wantRisks) {
		t.Errorf("top risks = %v, want %v", content.TopRisks, wantRisks)
	}
	if !reflect.DeepEqual(content.TopRecommendations, wantRecs) {
		t.Errorf("top recommendations = %v, want %v", content.TopRecommendations, wantRecs)
	}
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name    string
		revenue float64
		profit  float64
		want    float64
	}{
		{"typical", 56000000, 8400000, 15},
		{"zero revenue", 0, 500000, 0},
		{"negative revenue", -1000, 500, 0},
		{"loss", 100000, -20000, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := report.FinancialFacts{Revenue: tt.revenue, Profit: tt.profit}
			if got := f.ProfitMargin(); got != tt.want {
				t.Errorf("ProfitMargin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{56000000, "INR 56,000,000.00"},
		{1234567.891, "INR 1,234,567.89"},
		{0, "INR 0.00"},
		{999.9, "INR 999.90"},
	}

	for _, tt := range tests {
		if got := report.FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.5%"},
		{0, "0.0%"},
		{15.04, "15.0%"},
		{-3.25, "-3.2%"},
	}

	for _, tt := range tests {
		if got := report.FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
