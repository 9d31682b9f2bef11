package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"product-order-system/internal/cart"
	"product-order-system/internal/catalog"
	"product-order-system/internal/config"
	"product-order-system/internal/ledger"
	"product-order-system/internal/metrics"
	"product-order-system/internal/order"
	"product-order-system/internal/receipt"
	"product-order-system/internal/server/handle"
	"product-order-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var ErrUnknownBackend = errors.New("unknown ledger backend")

type Server struct {
	mux   *http.ServeMux
	cfg   *config.Config
	srv   *http.Server
	port  int
	mylog *logger.Logger
	met   *metrics.Registry
	store ledger.Store
	ctx   context.Context
	mu    sync.Mutex
}

func NewServer(ctx context.Context, cfg *config.Config, port int, mylog *logger.Logger) *Server {
	return &Server{
		ctx:   ctx,
		cfg:   cfg,
		port:  port,
		mylog: mylog,
		met:   metrics.NewRegistry(),
		mux:   http.NewServeMux(),
	}
}

// Run initializes the ledger store and routes, then listens until the
// context is cancelled or the listener fails.
func (s *Server) Run() error {
	if err := s.initializeLedger(); err != nil {
		s.mylog.Error("ledger_init_failed", "Failed to initialize ledger store", err)
		return err
	}
	s.mylog.Info("ledger_ready", "Ledger store initialized", "backend", s.cfg.LedgerBackend)

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.mux,
	}
	s.mu.Unlock()

	s.mylog.Info("server_started", "Server is running", "port", s.port)
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("graceful_shutdown_started", "Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("graceful_shutdown_failed", "Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if closer, ok := s.store.(interface{ Close() }); ok {
		closer.Close()
		s.mylog.Info("ledger_closed", "Ledger store closed")
	}

	s.mylog.Info("graceful_shutdown_completed", "HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) initializeLedger() error {
	switch s.cfg.LedgerBackend {
	case config.BackendFile:
		s.store = ledger.NewFileStore(s.cfg.LedgerPath, s.mylog)
		return nil
	case config.BackendPostgres:
		connStr := ledger.ConnString(s.cfg.PGUser, s.cfg.PGPassword, s.cfg.PGHost, s.cfg.PGPort, s.cfg.PGDBName, s.cfg.PGSSLmode)
		store, err := ledger.NewPostgresStore(connStr, s.mylog)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.EnsureSchema(s.ctx); err != nil {
			return fmt.Errorf("failed to ensure ledger schema: %w", err)
		}
		s.store = store
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBackend, s.cfg.LedgerBackend)
	}
}

// Configure sets up the HTTP handlers: catalog, cart actions, order save
// and report, and the metrics endpoint.
func (s *Server) Configure() {
	mapping := catalog.Mapping{
		Code:     s.cfg.ColCode,
		Name:     s.cfg.ColName,
		Supplier: s.cfg.ColSupplier,
		Price:    s.cfg.ColPrice,
		Weight:   s.cfg.ColWeight,
		Image:    s.cfg.ColImage,
	}
	loader := catalog.NewLoader(mapping, s.mylog, s.met)
	carts := cart.NewRegistry()

	var receipts receipt.Generator
	if !s.cfg.ReceiptsOff {
		receipts = receipt.NewPDFGenerator(s.cfg.ReceiptsDir)
	}
	orderService := order.NewService(s.store, receipts, s.mylog, s.met)

	catalogHandler := handle.NewCatalogHandler(loader, s.cfg.CatalogPath, s.mylog)
	cartHandler := handle.NewCartHandler(carts, s.mylog)
	orderHandler := handle.NewOrderHandler(orderService, carts, s.mylog)

	s.mux.Handle("GET /products", catalogHandler.List())
	s.mux.Handle("POST /products", catalogHandler.Add())
	s.mux.Handle("POST /cart/items", cartHandler.AddItem())
	s.mux.Handle("GET /cart", cartHandler.Get())
	s.mux.Handle("DELETE /cart", cartHandler.Clear())
	s.mux.Handle("POST /orders", orderHandler.Save())
	s.mux.Handle("GET /orders/report", orderHandler.Report())
	s.mux.Handle("GET /orders/{id}/export", orderHandler.Export())
	s.mux.Handle("GET /metrics", s.met.Handler())
}
