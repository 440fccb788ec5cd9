// Command server exposes the sales reports over HTTP as streaming CSV
// downloads. Reports are recomputed from the datasets on every request;
// nothing is cached or persisted.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tmoller/salesreports/internal/config"
	"github.com/tmoller/salesreports/internal/dataset"
	"github.com/tmoller/salesreports/internal/logging"
	"github.com/tmoller/salesreports/internal/report"
	"github.com/tmoller/salesreports/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"orders", cfg.Datasets.OrdersPath,
		"products", cfg.Datasets.ProductsPath,
		"customers", cfg.Datasets.CustomersPath,
	)

	sources := report.Sources{
		Orders:    dataset.FileSource{Path: cfg.Datasets.OrdersPath},
		Products:  dataset.FileSource{Path: cfg.Datasets.ProductsPath},
		Customers: dataset.FileSource{Path: cfg.Datasets.CustomersPath},
	}

	slog.Info("reports registered", "count", report.Count())

	server := web.NewServer(cfg, sources)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
