package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-order-system/internal/cart"
	"product-order-system/internal/order"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
)

var errProductNameRequired = errors.New("product_name is required")

// defaultSession is used when the client does not scope itself with an
// X-Session-ID header.
const defaultSession = "default"

type CartHandler struct {
	carts *cart.Registry
	mylog *logger.Logger
}

func NewCartHandler(carts *cart.Registry, mylog *logger.Logger) *CartHandler {
	return &CartHandler{carts: carts, mylog: mylog}
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return defaultSession
}

// AddItem handles the add_to_cart action.
func (ch *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddToCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ch.mylog.Error("parse_failed", "Failed to parse cart line", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if req.ProductName == "" {
			jsonError(w, http.StatusBadRequest, errProductNameRequired)
			return
		}

		c := ch.carts.Get(sessionID(r))
		if err := c.Add(req.ProductName, req.Supplier, req.UnitPrice, req.Quantity, req.Weight); err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		ch.mylog.Debug("cart_line_added", "Line added to cart",
			"product", req.ProductName, "quantity", req.Quantity, "cart_size", c.Len())
		jsonResponse(w, http.StatusOK, cartView(c, decimal.Zero))
	}
}

// Get serves the cart snapshot with totals for the requested discount.
func (ch *CartHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discountPct := decimal.Zero
		if raw := r.URL.Query().Get("discount_pct"); raw != "" {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				jsonError(w, http.StatusBadRequest, errors.New("invalid discount_pct"))
				return
			}
			discountPct = d
		}

		c := ch.carts.Get(sessionID(r))
		jsonResponse(w, http.StatusOK, cartView(c, discountPct))
	}
}

// Clear handles the clear_cart action.
func (ch *CartHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := ch.carts.Get(sessionID(r))
		c.Clear()
		ch.mylog.Debug("cart_cleared", "Cart cleared", "session", sessionID(r))
		jsonResponse(w, http.StatusOK, nil)
	}
}

func cartView(c *cart.Cart, discountPct decimal.Decimal) models.CartResponse {
	lines := c.Snapshot()
	totals := order.ComputeTotals(lines, discountPct)
	return models.CartResponse{
		Lines:    lines,
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Total:    totals.Total,
	}
}
