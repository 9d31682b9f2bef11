package order

import (
	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals derives the display/persistence totals from cart lines and
// a discount percentage. Pure; an empty cart yields zeros. No rounding is
// applied here, presentation rounds for display only.
func ComputeTotals(lines []models.CartLine, discountPct decimal.Decimal) models.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	discount := subtotal.Mul(discountPct).Div(hundred)
	return models.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}
