package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Fixed A4 geometry and type scale for exported reports. Sizes are in points.
const (
	marginSide   = 72
	marginTop    = 72
	marginBottom = 18

	titleSize    = 24
	titleLeading = 28
	titleGap     = 30 // below the title

	headingSize    = 16
	headingLeading = 19
	headingBefore  = 20
	headingAfter   = 12

	bodySize     = 11
	bodyLeading  = 14
	paragraphGap = 12

	listLeading  = 14
	listGap      = 6
	listIndent   = 20 // item text, from the left margin
	numberIndent = 10 // hanging number, from the left margin
)

// WritePDF lays the document out on A4 pages and streams the finished PDF to
// w. Page breaks are automatic. Text is translated to the built-in font
// codepage; characters outside it are substituted rather than erroring.
func (d *Document) WritePDF(w io.Writer) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(marginSide, marginTop, marginSide)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, b := range d.Blocks {
		switch b.Kind {
		case BlockTitle:
			doc.SetFont("Helvetica", "B", titleSize)
			doc.SetTextColor(44, 62, 80)
			doc.MultiCell(0, titleLeading, tr(b.Text), "", "C", false)
			doc.Ln(titleGap)

		case BlockHeading:
			doc.Ln(headingBefore)
			doc.SetFont("Helvetica", "B", headingSize)
			doc.SetTextColor(52, 73, 94)
			doc.MultiCell(0, headingLeading, tr(b.Text), "", "L", false)
			doc.Ln(headingAfter)

		case BlockParagraph:
			doc.SetTextColor(0, 0, 0)
			if b.Label != "" {
				doc.SetFont("Helvetica", "B", bodySize)
				doc.Write(bodyLeading, tr(b.Label)+" ")
				doc.SetFont("Helvetica", "", bodySize)
				doc.Write(bodyLeading, tr(b.Text))
				doc.Ln(bodyLeading + paragraphGap)
			} else {
				doc.SetFont("Helvetica", "", bodySize)
				doc.MultiCell(0, bodyLeading, tr(b.Text), "", "J", false)
				doc.Ln(paragraphGap)
			}

		case BlockListItem:
			doc.SetFont("Helvetica", "", bodySize)
			doc.SetTextColor(0, 0, 0)
			doc.SetX(marginSide + numberIndent)
			doc.CellFormat(listIndent-numberIndent, listLeading,
				fmt.Sprintf("%d.", b.Number), "", 0, "L", false, 0, "")
			// MultiCell keeps wrapped lines at the current X, giving the
			// hanging-number layout.
			doc.MultiCell(0, listLeading, tr(b.Text), "", "L", false)
			doc.Ln(listGap)

		case BlockSpacer:
			doc.Ln(b.Gap)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	return nil
}
