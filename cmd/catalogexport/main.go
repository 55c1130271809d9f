package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/locvowork/decant_storefront/internal/bootstrap"
	"github.com/locvowork/decant_storefront/internal/config"
	"github.com/locvowork/decant_storefront/internal/logger"
	"github.com/locvowork/decant_storefront/internal/service"
)

func main() {
	if err := config.LoadEnvConfig(); err != nil {
		log.Fatal(err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)

	source := bootstrap.CatalogSourceFromEnv()

	// Define flags
	pflag.StringVarP(&source.Kind, "source", "s", source.Kind, "Catalog source: static, xlsx, sheets")
	pflag.StringVar(&source.XLSXPath, "xlsx-path", source.XLSXPath, "Workbook read by the xlsx source")
	pflag.StringVar(&source.XLSXSheet, "xlsx-sheet", source.XLSXSheet, "Sheet read by the xlsx source")
	output := pflag.StringP("output", "o", service.CatalogExportFilename, "Workbook to write")
	pflag.Parse()

	source.Kind = strings.ToLower(source.Kind)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Catalog Export")
	fmt.Println(strings.Repeat("=", 50))

	if err := run(ctx, source, *output); err != nil {
		logger.ErrorLog(ctx, "Catalog export failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, source bootstrap.CatalogSource, output string) error {
	fetchCtx, cancel := context.WithTimeout(ctx, config.DefaultEnvConfig.CATALOG_FETCH_TIMEOUT)
	defer cancel()

	repo, err := source.Repository(fetchCtx)
	if err != nil {
		return err
	}

	products := service.NewProductService(repo)
	if err := products.Load(fetchCtx); err != nil {
		return err
	}

	catalog := products.GetAll()
	if len(catalog) == 0 {
		return fmt.Errorf("catalog source %q returned no products", source.Kind)
	}
	fmt.Printf("Loaded %d products from %s source\n", len(catalog), source.Kind)

	exporter, err := service.NewCatalogExporter(catalog)
	if err != nil {
		return err
	}
	if err := exporter.ExportToExcel(ctx, output); err != nil {
		return err
	}

	stats := products.Statistics()
	fmt.Printf("Wrote %s: %d products, %d brands, %d best sellers, %d new arrivals\n",
		output, stats.TotalProducts, stats.Brands, stats.BestSellers, stats.NewArrivals)
	return nil
}
