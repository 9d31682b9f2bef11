package models

import "github.com/shopspring/decimal"

// Product is one catalog row after normalization.
type Product struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Supplier         string          `json:"supplier"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	WeightApplicable bool            `json:"weight_applicable"`
	Weight           string          `json:"weight,omitempty"`
	Image            string          `json:"image,omitempty"`
}

// CartLine is one unsaved line item. LineTotal is computed when the line
// is added and never recomputed.
type CartLine struct {
	Product   string          `json:"product"`
	Supplier  string          `json:"supplier"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Weight    string          `json:"weight,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderLine is one persisted ledger row: a CartLine snapshot with the
// order-level fields attached.
type OrderLine struct {
	OrderID     string          `json:"order_id"`
	Timestamp   string          `json:"timestamp"`
	Product     string          `json:"product"`
	Supplier    string          `json:"supplier"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
	Weight      string          `json:"weight,omitempty"`
	LineTotal   decimal.Decimal `json:"line_total"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// SavedOrder is what a successful save returns: the new rows plus the
// totals they were computed with, for receipt rendering.
type SavedOrder struct {
	OrderID     string      `json:"order_id"`
	CreatedAt   string      `json:"created_at"`
	Lines       []OrderLine `json:"lines"`
	Totals      Totals      `json:"totals"`
	ReceiptPath string      `json:"receipt_path,omitempty"`
}

// DailySummary is one row of the orders report.
type DailySummary struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type AddToCartRequest struct {
	ProductName string          `json:"product_name"`
	Supplier    string          `json:"supplier"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Weight      string          `json:"weight,omitempty"`
}

type SaveOrderRequest struct {
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

type AddProductRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Supplier string          `json:"supplier"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
}

type CartResponse struct {
	Lines    []CartLine      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type CatalogResponse struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}
