package ledger

import (
	"context"
	"fmt"
	"strconv"

	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
)

// Header is the ledger column layout. Rows are only ever appended in this
// shape; nothing rewrites, reorders or deletes a row once written.
var Header = []string{"OrderID", "Timestamp", "Product", "Supplier", "Price", "Qty", "Weight", "LineTotal", "DiscountPct"}

// Store is the durable order ledger. Append must keep prior rows intact
// and in their original order.
type Store interface {
	Append(ctx context.Context, lines []models.OrderLine) error
	ReadAll(ctx context.Context) ([]models.OrderLine, error)
}

func toRecord(line models.OrderLine) []string {
	return []string{
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
}

func fromRecord(record []string) (models.OrderLine, error) {
	if len(record) < len(Header) {
		return models.OrderLine{}, fmt.Errorf("ledger row has %d columns, want %d", len(record), len(Header))
	}
	price, err := decimal.NewFromString(record[4])
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("ledger price %q: %w", record[4], err)
	}
	qty, err := strconv.Atoi(record[5])
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("ledger qty %q: %w", record[5], err)
	}
	lineTotal, err := decimal.NewFromString(record[7])
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("ledger line total %q: %w", record[7], err)
	}
	discount, err := decimal.NewFromString(record[8])
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("ledger discount %q: %w", record[8], err)
	}
	return models.OrderLine{
		OrderID:     record[0],
		Timestamp:   record[1],
		Product:     record[2],
		Supplier:    record[3],
		Price:       price,
		Qty:         qty,
		Weight:      record[6],
		LineTotal:   lineTotal,
		DiscountPct: discount,
	}, nil
}
