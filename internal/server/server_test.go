package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"product-order-system/internal/config"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		CatalogPath:   filepath.Join(dir, "catalog.csv"),
		LedgerPath:    filepath.Join(dir, "orders.csv"),
		LedgerBackend: config.BackendFile,
		ReceiptsDir:   filepath.Join(dir, "receipts"),
		ReceiptsOff:   true,
	}

	s := NewServer(context.Background(), cfg, 0, logger.NewLogger("test"))
	require.NoError(t, s.initializeLedger())
	s.Configure()

	ts := httptest.NewServer(s.mux)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestOrderFlow(t *testing.T) {
	ts := newTestServer(t)

	// The catalog bootstraps on first access.
	var cat models.CatalogResponse
	resp := doJSON(t, http.MethodGet, ts.URL+"/products", nil, &cat)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, cat.Products)
	require.NotEmpty(t, cat.Categories)

	// Add two units of Butter.
	var cartResp models.CartResponse
	resp = doJSON(t, http.MethodPost, ts.URL+"/cart/items", models.AddToCartRequest{
		ProductName: "Butter",
		Supplier:    "Amul Dairy",
		UnitPrice:   decimal.NewFromFloat(290.0),
		Quantity:    2,
		Weight:      "100g",
	}, &cartResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cartResp.Lines, 1)
	require.True(t, cartResp.Lines[0].LineTotal.Equal(decimal.NewFromInt(580)))

	// Totals at 10% discount.
	resp = doJSON(t, http.MethodGet, ts.URL+"/cart?discount_pct=10", nil, &cartResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, cartResp.Subtotal.Equal(decimal.NewFromInt(580)))
	require.True(t, cartResp.Discount.Equal(decimal.NewFromInt(58)))
	require.True(t, cartResp.Total.Equal(decimal.NewFromInt(522)))

	// Save the order.
	var saved models.SavedOrder
	resp = doJSON(t, http.MethodPost, ts.URL+"/orders", models.SaveOrderRequest{
		DiscountPct: decimal.NewFromInt(10),
	}, &saved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, saved.Lines, 1)
	require.Empty(t, saved.ReceiptPath, "receipts are disabled in this config")

	// The cart is empty afterwards.
	resp = doJSON(t, http.MethodGet, ts.URL+"/cart", nil, &cartResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, cartResp.Lines)

	// Saving again is rejected: empty cart.
	resp = doJSON(t, http.MethodPost, ts.URL+"/orders", models.SaveOrderRequest{}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The fallback export serves the saved rows.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/orders/"+saved.OrderID+"/export", nil)
	require.NoError(t, err)
	exportResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer exportResp.Body.Close()
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	require.Equal(t, "text/csv", exportResp.Header.Get("Content-Type"))

	// Report sees one order.
	var report []models.DailySummary
	resp = doJSON(t, http.MethodGet, ts.URL+"/orders/report", nil, &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, report, 1)
	require.Equal(t, 1, report[0].Orders)
	require.True(t, report[0].Revenue.Equal(decimal.NewFromInt(580)))
}

func TestAddToCart_Validation(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/cart/items", models.AddToCartRequest{
		ProductName: "Butter",
		UnitPrice:   decimal.NewFromInt(290),
		Quantity:    0,
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, ts.URL+"/cart/items", models.AddToCartRequest{
		UnitPrice: decimal.NewFromInt(290),
		Quantity:  1,
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddProduct(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/products", models.AddProductRequest{
		Code:     "Veg_Product_9_Carrot",
		Name:     "Carrot",
		Supplier: "Green Farms",
		Price:    decimal.NewFromInt(25),
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// No required code: inline failure.
	resp = doJSON(t, http.MethodPost, ts.URL+"/products", models.AddProductRequest{Name: "Nameless"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The cache notices the appended row.
	var cat models.CatalogResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/products?q=carrot", nil, &cat)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cat.Products, 1)
	require.Equal(t, "Veg", cat.Products[0].Category)
}
