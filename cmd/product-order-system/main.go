package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"product-order-system/internal/config"
	"product-order-system/internal/server"
	"product-order-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("product-order-system", flag.ExitOnError)
	port := fs.Int("port", 3000, "HTTP port for the order service")
	catalogPath := fs.String("catalog", "", "Path to the catalog file (overrides CATALOG_PATH)")
	ledgerPath := fs.String("ledger", "", "Path to the ledger file (overrides LEDGER_PATH)")
	_ = fs.Parse(os.Args[1:])

	mylog := logger.NewLogger("product-order-system")

	cfg, err := config.LoadConfig()
	if err != nil {
		mylog.Error("config_load_failed", "Failed to load config", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *ledgerPath != "" {
		cfg.LedgerPath = *ledgerPath
	}
	if *port <= 0 || *port >= 65536 {
		mylog.Error("invalid_port", "Port must be in [1, 65535]", nil, "port", *port)
		os.Exit(1)
	}

	srv := server.NewServer(ctx, cfg, *port, mylog)

	// Run server in goroutine
	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- srv.Run()
	}()

	// Wait for signal or server crash
	select {
	case <-ctx.Done():
		mylog.Info("shutdown_signal_received", "Shutdown signal received")
		if err := srv.Stop(context.Background()); err != nil {
			os.Exit(1)
		}
	case err := <-runErrCh:
		if err != nil {
			mylog.Error("service_failed", "Server failed unexpectedly", err)
			os.Exit(1)
		}
		mylog.Info("server_stopped", "Server exited normally")
	}
}
