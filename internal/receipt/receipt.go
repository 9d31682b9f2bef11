package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"product-order-system/pkg/models"

	"github.com/go-pdf/fpdf"
)

// Generator renders a saved order into a downloadable document. Callers
// treat a nil Generator or a failed Generate as an expected condition and
// fall back to ExportCSV.
type Generator interface {
	Generate(order *models.SavedOrder) (string, error)
}

const nameWidth = 35

// PDFGenerator writes fixed-layout A4 receipts into a directory.
type PDFGenerator struct {
	dir string
}

func NewPDFGenerator(dir string) *PDFGenerator {
	return &PDFGenerator{dir: dir}
}

func (g *PDFGenerator) Generate(order *models.SavedOrder) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir receipts dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, fmt.Sprintf("Receipt - Order %s", order.OrderID), "", 1, "C", false, 0, "")
	pdf.CellFormat(200, 6, "Generated: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "LineTotal", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, line := range order.Lines {
		name := line.Product
		if len(name) > nameWidth {
			name = name[:nameWidth]
		}
		pdf.CellFormat(80, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, line.Price.StringFixed(2), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Qty), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, line.LineTotal.StringFixed(2), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.CellFormat(130, 8, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, order.Totals.Subtotal.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.CellFormat(130, 8, "Discount:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "-"+order.Totals.Discount.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.CellFormat(130, 10, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, order.Totals.Total.StringFixed(2), "", 1, "L", false, 0, "")

	outPath := filepath.Join(g.dir, fmt.Sprintf("receipt_%s.pdf", order.OrderID))
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return outPath, nil
}
