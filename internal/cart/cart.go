package cart

import (
	"errors"

	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
)

var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// Cart is the in-progress selection for one session. It is an explicit
// object handed through the call chain; nothing here is process-global.
// One logical actor mutates a cart at a time.
type Cart struct {
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line item. The line total is computed eagerly and stored
// with the line.
func (c *Cart) Add(product, supplier string, unitPrice decimal.Decimal, quantity int, weight string) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	c.lines = append(c.lines, models.CartLine{
		Product:   product,
		Supplier:  supplier,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Weight:    weight,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return nil
}

// Clear empties the cart. Called explicitly or after a successful save.
func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot returns a copy of the lines in insertion order.
func (c *Cart) Snapshot() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}
