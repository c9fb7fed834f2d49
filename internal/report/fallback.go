package report

import "fmt"

// Fallback synthesizes a complete report from the facts alone using fixed
// templates. It is pure: the same facts always produce byte-identical
// content, and it performs no I/O. It serves every request when no provider
// is configured and is the recovery path for every provider failure.
func Fallback(facts FinancialFacts) Content {
	margin := FormatPercent(facts.ProfitMargin())
	growth := FormatPercent(facts.GrowthPercentage)

	return Content{
		ExecutiveSummary: fmt.Sprintf(
			"%s demonstrates solid financial performance with revenue of %s and profit of %s, "+
				"resulting in a profit margin of %s. The company shows %s growth, indicating "+
				"positive market momentum.\n\n"+
				"Key sector trends and strategic positioning require attention to maintain "+
				"competitive advantage. Management should focus on optimizing operational "+
				"efficiency while addressing identified risks to ensure sustainable growth trajectory.",
			facts.CompanyName, FormatMoney(facts.Revenue), FormatMoney(facts.Profit), margin, growth,
		),

		KeyTrends: fmt.Sprintf(
			"Current market analysis reveals %s growth rate, which positions %s favorably "+
				"within the sector. Sector trends indicate: %s\n\n"+
				"Key performance metrics show: %s\n\n"+
				"The financial fundamentals demonstrate stability with current profit margins "+
				"at %s. Revenue diversification and market expansion opportunities should be "+
				"evaluated to strengthen the company's competitive position.",
			growth, facts.CompanyName, facts.SectorTrends, facts.KeyMetrics, margin,
		),

		Risks: fmt.Sprintf(
			"Primary risk factors identified include: %s\n\n"+
				"Financial risk assessment indicates potential vulnerabilities in market "+
				"volatility exposure. Operational risks related to supply chain dependencies "+
				"and competitive pressures require proactive management strategies.\n\n"+
				"Regulatory changes and economic uncertainties pose additional challenges that "+
				"could impact future performance if not adequately addressed through strategic planning.",
			facts.Risks,
		),

		Recommendations: fmt.Sprintf(
			"Strategic recommendations for %s: %s\n\n"+
				"1. Implement enhanced financial controls and monitoring systems\n"+
				"2. Diversify revenue streams to reduce market concentration risk\n"+
				"3. Invest in technology infrastructure to improve operational efficiency\n"+
				"4. Develop comprehensive risk management framework\n"+
				"5. Strengthen market position through strategic partnerships\n\n"+
				"These initiatives should be prioritized based on resource availability and strategic impact.",
			facts.CompanyName, facts.Recommendations,
		),

		TopRisks: []string{
			"Market volatility and economic uncertainty",
			"Competitive pressure and market share erosion",
			"Operational inefficiencies and cost escalation",
		},

		TopRecommendations: []string{
			"Diversify revenue streams and market presence",
			"Implement advanced analytics for decision making",
			"Strengthen operational risk management processes",
		},
	}
}
