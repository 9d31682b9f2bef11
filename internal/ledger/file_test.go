package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLine(orderID, product string, qty int) models.OrderLine {
	price := decimal.NewFromInt(100)
	return models.OrderLine{
		OrderID:     orderID,
		Timestamp:   "2026-08-31 12:00:00",
		Product:     product,
		Supplier:    "Supplier",
		Price:       price,
		Qty:         qty,
		Weight:      "500g",
		LineTotal:   price.Mul(decimal.NewFromInt(int64(qty))),
		DiscountPct: decimal.NewFromInt(5),
	}
}

func TestFileStore_ReadMissingLedger(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "orders.csv"), logger.NewLogger("test"))

	lines, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestFileStore_AppendRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "orders.csv"), logger.NewLogger("test"))
	ctx := context.Background()

	first := []models.OrderLine{testLine("AAAA1111", "Cheese", 1), testLine("AAAA1111", "Butter", 2)}
	require.NoError(t, store.Append(ctx, first))

	second := []models.OrderLine{testLine("BBBB2222", "Bread", 3)}
	require.NoError(t, store.Append(ctx, second))

	lines, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	// Existing rows keep their order; new rows follow.
	require.Equal(t, "AAAA1111", lines[0].OrderID)
	require.Equal(t, "Cheese", lines[0].Product)
	require.Equal(t, "AAAA1111", lines[1].OrderID)
	require.Equal(t, "BBBB2222", lines[2].OrderID)

	require.Equal(t, 2, lines[1].Qty)
	require.Equal(t, "500g", lines[1].Weight)
	require.True(t, lines[1].LineTotal.Equal(decimal.NewFromInt(200)))
	require.True(t, lines[2].DiscountPct.Equal(decimal.NewFromInt(5)))
}

func TestFileStore_AppendNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	store := NewFileStore(path, logger.NewLogger("test"))

	require.NoError(t, store.Append(context.Background(), nil))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "empty append must not create the ledger")
}

func TestFileStore_HeaderWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	store := NewFileStore(path, logger.NewLogger("test"))

	require.NoError(t, store.Append(context.Background(), []models.OrderLine{testLine("CCCC3333", "Cheese", 1)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "OrderID,Timestamp,Product,Supplier,Price,Qty,Weight,LineTotal,DiscountPct")
}
