package report

import (
	"fmt"
	"strings"
)

// The model is prompted to respond in this exact JSON shape so we can parse
// it without regex heuristics. The four narrative values are strings; the two
// top_* values are string arrays.
const promptInstructions = `Create a professional financial report with the following sections:
1. Executive Summary (2-3 paragraphs)
2. Key Trends Analysis (detailed analysis)
3. Risk Assessment (comprehensive risk analysis)
4. Strategic Recommendations (actionable recommendations)
5. Top 3 Critical Risks (list format)
6. Top 3 Priority Recommendations (list format)

Respond ONLY with valid JSON matching this exact schema, no markdown fences, no preamble:
{
  "executive_summary": "...",
  "key_trends": "...",
  "risks": "...",
  "recommendations": "...",
  "top_risks": ["...", "...", "..."],
  "top_recommendations": ["...", "...", "..."]
}

Make the content professional, data-driven, and suitable for C-level executives.`

// buildPrompt serialises the facts into the single prompt sent to the
// provider.
func buildPrompt(facts FinancialFacts) string {
	var sb strings.Builder

	sb.WriteString("You are a senior financial analyst creating an executive-level financial report.\n")
	sb.WriteString("Generate a comprehensive financial report based on the following company data:\n\n")

	fmt.Fprintf(&sb, "Company: %s\n", facts.CompanyName)
	fmt.Fprintf(&sb, "Revenue: %s\n", FormatMoney(facts.Revenue))
	fmt.Fprintf(&sb, "Profit: %s\n", FormatMoney(facts.Profit))
	fmt.Fprintf(&sb, "Growth Percentage: %s\n", FormatPercent(facts.GrowthPercentage))
	fmt.Fprintf(&sb, "Sector Trends: %s\n", facts.SectorTrends)
	fmt.Fprintf(&sb, "Key Metrics: %s\n", facts.KeyMetrics)
	fmt.Fprintf(&sb, "Identified Risks: %s\n", facts.Risks)
	fmt.Fprintf(&sb, "Recommendations: %s\n\n", facts.Recommendations)

	sb.WriteString(promptInstructions)

	return sb.String()
}
