package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"product-order-system/internal/cart"
	"product-order-system/internal/ledger"
	"product-order-system/internal/metrics"
	"product-order-system/internal/receipt"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrDiscountRange = errors.New("discount must be between 0 and 100")
	ErrOrderNotFound = errors.New("order not found")
)

const timestampLayout = "2006-01-02 15:04:05"

type Service struct {
	store    ledger.Store
	receipts receipt.Generator
	mylog    *logger.Logger
	met      *metrics.Registry
}

// NewService wires the ledger store and an optional receipt generator.
// A nil generator means receipts are unavailable; saves still succeed and
// callers fall back to the delimited export.
func NewService(store ledger.Store, receipts receipt.Generator, mylog *logger.Logger, met *metrics.Registry) *Service {
	return &Service{
		store:    store,
		receipts: receipts,
		mylog:    mylog,
		met:      met,
	}
}

// NewOrderID returns an 8-character uppercase token: the first segment of
// a random v4 UUID. Ledger-wide uniqueness is not checked before writing.
func NewOrderID() string {
	segment, _, _ := strings.Cut(uuid.NewString(), "-")
	return strings.ToUpper(segment)
}

// Save snapshots the cart into the ledger under a fresh order id and
// clears the cart. Saving an empty cart is rejected before anything is
// written. Store failures propagate and leave the cart intact.
func (s *Service) Save(ctx context.Context, c *cart.Cart, discountPct decimal.Decimal) (*models.SavedOrder, error) {
	start := time.Now()

	lines := c.Snapshot()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return nil, ErrDiscountRange
	}

	orderID := NewOrderID()
	createdAt := time.Now().Format(timestampLayout)

	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{
			OrderID:     orderID,
			Timestamp:   createdAt,
			Product:     line.Product,
			Supplier:    line.Supplier,
			Price:       line.UnitPrice,
			Qty:         line.Quantity,
			Weight:      line.Weight,
			LineTotal:   line.LineTotal,
			DiscountPct: discountPct,
		})
	}

	if err := s.store.Append(ctx, orderLines); err != nil {
		s.mylog.Error("order_save_failed", "Failed to append order to ledger", err, "order_id", orderID)
		return nil, fmt.Errorf("append order %s: %w", orderID, err)
	}
	c.Clear()

	saved := &models.SavedOrder{
		OrderID:   orderID,
		CreatedAt: createdAt,
		Lines:     orderLines,
		Totals:    ComputeTotals(lines, discountPct),
	}

	if s.receipts != nil {
		path, err := s.receipts.Generate(saved)
		if err != nil {
			// Expected degradation: the order is saved either way.
			s.mylog.Warn("receipt_failed", "Receipt generation failed, falling back to export",
				"order_id", orderID, "err", err.Error())
		} else {
			saved.ReceiptPath = path
			if s.met != nil {
				s.met.ReceiptsGenerated.Inc()
			}
		}
	}

	if s.met != nil {
		s.met.OrdersSaved.Inc()
		s.met.LinesAppended.Add(float64(len(orderLines)))
		s.met.SaveLatencySec.Observe(time.Since(start).Seconds())
	}
	s.mylog.Info("order_saved", "Order saved to ledger",
		"order_id", orderID, "lines", len(orderLines), "total", saved.Totals.Total.StringFixed(2))

	return saved, nil
}

// OrderLines returns the ledger rows belonging to one order.
func (s *Service) OrderLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	all, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var lines []models.OrderLine
	for _, line := range all {
		if line.OrderID == orderID {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrOrderNotFound
	}
	return lines, nil
}

// Report aggregates the ledger into per-day revenue and distinct order
// counts, newest date first.
func (s *Service) Report(ctx context.Context) ([]models.DailySummary, error) {
	all, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	revenue := make(map[string]decimal.Decimal)
	orders := make(map[string]map[string]bool)
	for _, line := range all {
		date := line.Timestamp
		if len(date) >= 10 {
			date = date[:10]
		}
		revenue[date] = revenue[date].Add(line.LineTotal)
		if orders[date] == nil {
			orders[date] = make(map[string]bool)
		}
		orders[date][line.OrderID] = true
	}

	summaries := make([]models.DailySummary, 0, len(revenue))
	for date, rev := range revenue {
		summaries = append(summaries, models.DailySummary{
			Date:    date,
			Revenue: rev,
			Orders:  len(orders[date]),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date > summaries[j].Date })
	return summaries, nil
}
