// Package pdf renders report payloads into paginated A4 documents.
//
// Rendering is split in two stages. BuildDocument maps a loosely-typed
// payload to an ordered sequence of typed blocks, applying all section
// gating, defaults, and truncation rules; it never fails, whatever the shape
// of the input. WritePDF lays the blocks out with automatic pagination. The
// split keeps the structural rules testable without decoding PDF bytes.
package pdf

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nyashahama/financial-report-backend/internal/report"
)

// BlockKind discriminates the block types a Document is built from.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockParagraph
	BlockListItem
	BlockSpacer
)

// Block is one unit of document flow. Which fields are meaningful depends on
// Kind: Text for everything textual, Label for the bold prefix of metadata
// paragraphs, Number for list items, Gap for spacers.
type Block struct {
	Kind   BlockKind
	Text   string
	Label  string
	Number int
	Gap    float64
}

// Document is an ordered block sequence ready for layout.
type Document struct {
	Blocks []Block
}

// Section order is fixed: title, metadata, financial overview, then the six
// narrative and list sections. Narrative sections are gated on key presence
// alone (a present-but-empty value still renders its heading); the two top
// lists additionally require a non-empty value.
//
// BuildDocument accepts any payload shape. Wrong-typed values degrade
// (numbers are stringified, a scalar where a list is expected becomes a
// plain paragraph) but never error.
func BuildDocument(data map[string]any) *Document {
	d := &Document{}

	title := "Financial Report"
	if v, ok := data["report_title"]; ok {
		title = asString(v)
	}
	d.add(Block{Kind: BlockTitle, Text: title})
	d.add(Block{Kind: BlockSpacer, Gap: 20})

	d.add(Block{Kind: BlockParagraph, Label: "Company:", Text: stringOr(data, "company_name", "Company")})
	d.add(Block{Kind: BlockParagraph, Label: "Prepared for:", Text: stringOr(data, "executive_name", "Executive")})
	d.add(Block{Kind: BlockParagraph, Label: "Date:", Text: time.Now().Format("January 02, 2006")})
	d.add(Block{Kind: BlockSpacer, Gap: 30})

	if _, ok := data["revenue"]; ok {
		d.add(Block{Kind: BlockHeading, Text: "Financial Overview"})
		d.add(Block{Kind: BlockParagraph, Label: "Revenue:", Text: report.FormatMoney(asFloat(data["revenue"]))})
		d.add(Block{Kind: BlockParagraph, Label: "Profit:", Text: report.FormatMoney(asFloat(data["profit"]))})
		d.add(Block{Kind: BlockParagraph, Label: "Growth:", Text: report.FormatPercent(asFloat(data["growth_percentage"]))})
		d.add(Block{Kind: BlockSpacer, Gap: 20})
	}

	d.narrative(data, "executive_summary", "Executive Summary", 15)
	d.narrative(data, "key_trends", "Key Trends Analysis", 15)
	d.topList(data, "top_risks", "Top 3 Critical Risks")
	d.narrative(data, "risks", "Risk Assessment", 15)
	d.topList(data, "top_recommendations", "Top 3 Priority Recommendations")
	d.narrative(data, "recommendations", "Strategic Recommendations", 0)

	return d
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// narrative emits a heading plus one paragraph when key is present. Newlines
// in the value survive into the block and render as explicit line breaks.
func (d *Document) narrative(data map[string]any, key, heading string, trailingGap float64) {
	v, ok := data[key]
	if !ok {
		return
	}

	d.add(Block{Kind: BlockHeading, Text: heading})
	d.add(Block{Kind: BlockParagraph, Text: asString(v)})
	if trailingGap > 0 {
		d.add(Block{Kind: BlockSpacer, Gap: trailingGap})
	}
}

// topList emits a heading plus at most three numbered entries. A scalar value
// degrades to a single plain paragraph.
func (d *Document) topList(data map[string]any, key, heading string) {
	v, ok := data[key]
	if !ok || !hasContent(v) {
		return
	}

	d.add(Block{Kind: BlockHeading, Text: heading})

	if items, ok := asStringList(v); ok {
		for i, item := range items {
			if i == 3 {
				break
			}
			d.add(Block{Kind: BlockListItem, Number: i + 1, Text: item})
		}
	} else {
		d.add(Block{Kind: BlockParagraph, Text: asString(v)})
	}

	d.add(Block{Kind: BlockSpacer, Gap: 15})
}

// ─── VALUE COERCION ───────────────────────────────────────────────────────────
// Payloads arrive from JSON decoding (everything is string/float64/[]any) or
// from typed callers; these helpers accept both without erroring.

func asString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v any) float64 {
	switch vv := v.(type) {
	case float64:
		return vv
	case float32:
		return float64(vv)
	case int:
		return float64(vv)
	case int64:
		return float64(vv)
	case json.Number:
		f, _ := vv.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(vv, 64)
		return f
	}
	return 0
}

func asStringList(v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []any:
		out := make([]string, len(vv))
		for i, item := range vv {
			out[i] = asString(item)
		}
		return out, true
	}
	return nil, false
}

// hasContent reports whether v would render anything: empty strings and
// empty lists are treated the same as an absent key.
func hasContent(v any) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case string:
		return vv != ""
	case []string:
		return len(vv) > 0
	case []any:
		return len(vv) > 0
	}
	return true
}

// stringOr returns the value under key, or fallback when the key is absent.
// A present-but-empty value is returned as-is.
func stringOr(data map[string]any, key, fallback string) string {
	v, ok := data[key]
	if !ok {
		return fallback
	}
	return asString(v)
}
