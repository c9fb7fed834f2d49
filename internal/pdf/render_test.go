package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nyashahama/financial-report-backend/internal/pdf"
)

func TestWritePDF_ProducesWellFormedOutput(t *testing.T) {
	doc := pdf.BuildDocument(fullPayload())

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with the PDF magic, got %.8q", out)
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("output missing the end-of-file marker")
	}
}

func TestWritePDF_EmptyPayloadStillRenders(t *testing.T) {
	doc := pdf.BuildDocument(map[string]any{})

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("title-and-metadata-only document should still render")
	}
}

func TestWritePDF_LongReportSpansMultiplePages(t *testing.T) {
	payload := fullPayload()
	payload["executive_summary"] = strings.Repeat("A very long paragraph about operational performance. ", 400)

	doc := pdf.BuildDocument(payload)

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The page tree carries /Count <pages>; one page means pagination broke.
	if bytes.Contains(buf.Bytes(), []byte("/Count 1")) {
		t.Error("long report should paginate onto multiple pages")
	}
}

func TestWritePDF_NonLatinTextDoesNotError(t *testing.T) {
	payload := fullPayload()
	payload["executive_summary"] = "Revenue reached ₹56,000,000 (≈ INR 56M), strong growth."

	doc := pdf.BuildDocument(payload)

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		t.Fatalf("characters outside the font codepage must not fail rendering: %v", err)
	}
}
