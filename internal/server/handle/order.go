package handle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"product-order-system/internal/cart"
	"product-order-system/internal/order"
	"product-order-system/internal/receipt"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"
)

type OrderHandler struct {
	orders *order.Service
	carts  *cart.Registry
	mylog  *logger.Logger
}

func NewOrderHandler(orders *order.Service, carts *cart.Registry, mylog *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		carts:  carts,
		mylog:  mylog,
	}
}

// Save handles the save_order action: persists the session cart and clears
// it. An empty cart is rejected without touching the ledger.
func (oh *OrderHandler) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SaveOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			oh.mylog.Error("parse_failed", "Failed to parse save request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		c := oh.carts.Get(sessionID(r))
		saved, err := oh.orders.Save(r.Context(), c, req.DiscountPct)
		if err != nil {
			if errors.Is(err, order.ErrEmptyCart) || errors.Is(err, order.ErrDiscountRange) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to save order"))
			return
		}

		jsonResponse(w, http.StatusOK, saved)
	}
}

// Export serves one order's ledger rows as a delimited download, the
// fallback artifact when no PDF receipt exists.
func (oh *OrderHandler) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := r.PathValue("id")

		lines, err := oh.orders.OrderLines(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			oh.mylog.Error("export_failed", "Failed to read ledger for export", err, "order_id", orderID)
			jsonError(w, http.StatusInternalServerError, errors.New("failed to export order"))
			return
		}

		data, err := receipt.ExportCSV(lines)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, errors.New("failed to export order"))
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=order_%s.csv", orderID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// Report serves the daily revenue summary.
func (oh *OrderHandler) Report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := oh.orders.Report(r.Context())
		if err != nil {
			oh.mylog.Error("report_failed", "Failed to build orders report", err)
			jsonError(w, http.StatusInternalServerError, errors.New("failed to build report"))
			return
		}
		jsonResponse(w, http.StatusOK, summaries)
	}
}
