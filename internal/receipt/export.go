package receipt

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"product-order-system/internal/ledger"
	"product-order-system/pkg/models"
)

// ExportCSV renders order lines as a plain delimited export with the
// ledger's column layout. This is the download artifact when PDF receipts
// are unavailable.
func ExportCSV(lines []models.OrderLine) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ledger.Header); err != nil {
		return nil, err
	}
	for _, line := range lines {
		record := []string{
			line.OrderID,
			line.Timestamp,
			line.Product,
			line.Supplier,
			line.Price.String(),
			strconv.Itoa(line.Qty),
			line.Weight,
			line.LineTotal.String(),
			line.DiscountPct.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
