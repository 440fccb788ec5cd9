// Command reportgen reads the orders, products, and customers datasets
// and writes the three report files in one shot: order_prices.csv,
// product_customers.csv, and customer_ranking.csv.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tmoller/salesreports/internal/config"
	"github.com/tmoller/salesreports/internal/dataset"
	"github.com/tmoller/salesreports/internal/logging"
	"github.com/tmoller/salesreports/internal/report"
)

func main() {
	reportKey := flag.String("report", "", "generate only this report key (default: all)")
	outDir := flag.String("out", "", "output directory (overrides REPORT_OUT_DIR)")
	flag.Parse()

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	dir := cfg.Datasets.OutDir
	if *outDir != "" {
		dir = *outDir
	}

	gen := report.NewGenerator(report.Sources{
		Orders:    dataset.FileSource{Path: cfg.Datasets.OrdersPath},
		Products:  dataset.FileSource{Path: cfg.Datasets.ProductsPath},
		Customers: dataset.FileSource{Path: cfg.Datasets.CustomersPath},
	}, dir)

	slog.Info("generating reports",
		"orders", cfg.Datasets.OrdersPath,
		"products", cfg.Datasets.ProductsPath,
		"customers", cfg.Datasets.CustomersPath,
		"out_dir", dir,
	)

	if *reportKey != "" {
		if _, _, err := gen.Generate(*reportKey); err != nil {
			slog.Error("report generation failed", "report", *reportKey, "error", err)
			os.Exit(1)
		}
		return
	}

	if _, err := gen.GenerateAll(); err != nil {
		slog.Error("report generation failed", "error", err)
		os.Exit(1)
	}
}
