package order

import (
	"testing"

	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func line(total string) models.CartLine {
	return models.CartLine{LineTotal: decimal.RequireFromString(total)}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, decimal.NewFromInt(25))
	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Discount.IsZero())
	require.True(t, totals.Total.IsZero())
}

func TestComputeTotals_SubtotalIsSumOfLineTotals(t *testing.T) {
	lines := []models.CartLine{line("100"), line("250.50"), line("0.25")}
	totals := ComputeTotals(lines, decimal.Zero)
	require.True(t, totals.Subtotal.Equal(decimal.RequireFromString("350.75")))
	require.True(t, totals.Discount.IsZero())
	require.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestComputeTotals_DiscountIdentity(t *testing.T) {
	lines := []models.CartLine{line("200")}
	for _, pct := range []string{"0", "5", "10", "33.5", "100"} {
		discountPct := decimal.RequireFromString(pct)
		totals := ComputeTotals(lines, discountPct)

		wantDiscount := totals.Subtotal.Mul(discountPct).Div(decimal.NewFromInt(100))
		require.True(t, totals.Discount.Equal(wantDiscount), "pct %s", pct)
		require.True(t, totals.Total.Equal(totals.Subtotal.Sub(totals.Discount)), "pct %s", pct)
	}
}

func TestComputeTotals_FullDiscount(t *testing.T) {
	totals := ComputeTotals([]models.CartLine{line("123.45")}, decimal.NewFromInt(100))
	require.True(t, totals.Total.IsZero())
	require.True(t, totals.Discount.Equal(totals.Subtotal))
}

// Butter scenario: 2 x 290.0 at 10% off.
func TestComputeTotals_ButterScenario(t *testing.T) {
	unit := decimal.NewFromFloat(290.0)
	lineTotal := unit.Mul(decimal.NewFromInt(2))
	require.True(t, lineTotal.Equal(decimal.NewFromInt(580)))

	totals := ComputeTotals([]models.CartLine{{LineTotal: lineTotal}}, decimal.NewFromInt(10))
	require.True(t, totals.Subtotal.Equal(decimal.NewFromInt(580)))
	require.True(t, totals.Discount.Equal(decimal.NewFromInt(58)))
	require.True(t, totals.Total.Equal(decimal.NewFromInt(522)))
}
