package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/nyashahama/financial-report-backend/internal/ai"
)

// Source identifies which path produced the content of a Result.
type Source string

const (
	// SourceProvider marks content parsed from a provider response.
	SourceProvider Source = "provider"
	// SourceFallback marks content built from the fallback templates.
	SourceFallback Source = "fallback"
)

// Result is the outcome of one generation call. Content is always fully
// populated regardless of Source.
type Result struct {
	Content Content
	Source  Source
}

// Generator produces report content, preferring the provider and degrading
// to the fallback templates. A nil provider is valid and means every call is
// served by the fallback.
type Generator struct {
	provider ai.Provider
	logger   *slog.Logger
}

func NewGenerator(provider ai.Provider, logger *slog.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

// Generate builds report content for the given facts. It never returns an
// error: a missing provider, a failed call, or an unusable response all
// resolve to the fallback templates for the same facts, and the Result's
// Source records which path ran. At most one provider call is made per
// invocation; the context bounds that call.
func (g *Generator) Generate(ctx context.Context, facts FinancialFacts) Result {
	if g.provider == nil {
		g.logger.Warn("report: no provider configured, using fallback templates")
		return Result{Content: Fallback(facts), Source: SourceFallback}
	}

	raw, err := g.provider.GenerateText(ctx, buildPrompt(facts))
	if err != nil {
		g.logger.Warn("report: provider call failed, using fallback templates", "error", err)
		return Result{Content: Fallback(facts), Source: SourceFallback}
	}

	content, err := parseProviderContent(raw)
	if err != nil {
		g.logger.Warn("report: provider response unusable, using fallback templates", "error", err)
		return Result{Content: Fallback(facts), Source: SourceFallback}
	}

	return Result{Content: content, Source: SourceProvider}
}

// ─── RESPONSE PARSING ─────────────────────────────────────────────────────────

// parseProviderContent turns a provider response into Content. The response
// must be a JSON object. A missing field is replaced with a placeholder
// naming it; a bare-string top_risks or top_recommendations is wrapped into a
// one-element list; unknown keys are ignored. Anything else (prose, an
// array, a null field value, a non-string narrative or list entry) is an
// error, and the caller falls back wholesale rather than mixing provider and
// template content.
func parseProviderContent(raw string) (Content, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return Content{}, fmt.Errorf("report: empty provider response")
	}

	fields, err := unmarshalObject(cleaned)
	if err != nil {
		return Content{}, err
	}

	var (
		c        Content
		fieldErr error
	)

	str := func(key string) string {
		rawVal, ok := fields[key]
		if !ok {
			return missingFieldPlaceholder(key)
		}
		var s string
		if isNullValue(rawVal) || json.Unmarshal(rawVal, &s) != nil {
			fieldErr = fmt.Errorf("report: field %q is not a string", key)
			return ""
		}
		return s
	}

	list := func(key string) []string {
		rawVal, ok := fields[key]
		if !ok {
			return []string{missingFieldPlaceholder(key)}
		}
		if isNullValue(rawVal) {
			fieldErr = fmt.Errorf("report: field %q is neither a list nor a string", key)
			return nil
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(rawVal, &elems); err == nil {
			items := make([]string, 0, len(elems))
			for _, e := range elems {
				var s string
				if isNullValue(e) || json.Unmarshal(e, &s) != nil {
					fieldErr = fmt.Errorf("report: field %q holds a non-string entry", key)
					return nil
				}
				items = append(items, s)
			}
			return items
		}
		var single string
		if err := json.Unmarshal(rawVal, &single); err == nil {
			return []string{single}
		}
		fieldErr = fmt.Errorf("report: field %q is neither a list nor a string", key)
		return nil
	}

	c.ExecutiveSummary = str("executive_summary")
	c.KeyTrends = str("key_trends")
	c.Risks = str("risks")
	c.Recommendations = str("recommendations")
	c.TopRisks = list("top_risks")
	c.TopRecommendations = list("top_recommendations")

	if fieldErr != nil {
		return Content{}, fieldErr
	}
	return c, nil
}

// unmarshalObject parses s into a JSON object, retrying once through a repair
// pass for the almost-JSON models produce (trailing commas, single quotes,
// unescaped newlines). Text that does not even open an object is rejected
// without repair: arrays and prose are shape failures, not repair candidates.
func unmarshalObject(s string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err == nil && fields != nil {
		return fields, nil
	}

	if !strings.HasPrefix(s, "{") {
		return nil, fmt.Errorf("report: provider response is not a JSON object (raw: %.200s)", s)
	}

	repaired, err := jsonrepair.RepairJSON(s)
	if err != nil {
		return nil, fmt.Errorf("report: repair provider response: %w (raw: %.200s)", err, s)
	}
	if err := json.Unmarshal([]byte(repaired), &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("report: provider response is not a JSON object (raw: %.200s)", s)
	}
	return fields, nil
}

// isNullValue reports whether raw holds the JSON null literal. Unmarshal
// accepts null for string and slice targets without error, leaving the zero
// value, so null has to be rejected explicitly or it would pass as an empty
// string or nil list.
func isNullValue(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// stripFences removes the markdown fences models sometimes wrap around JSON
// despite instructions.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}

// missingFieldPlaceholder is the text substituted for a field the provider
// omitted, e.g. "Analysis for Executive Summary not available."
func missingFieldPlaceholder(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return fmt.Sprintf("Analysis for %s not available.", strings.Join(words, " "))
}
