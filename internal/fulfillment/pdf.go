package fulfillment

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays the lines out one per row under a centred title.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(path, title string, lines []string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(200, 10, tr(title), "", 1, "C", false, 0, "")
	for _, line := range lines {
		pdf.CellFormat(200, 10, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
