package bootstrap

import (
	"context"
	"fmt"

	"github.com/locvowork/decant_storefront/internal/config"
	"github.com/locvowork/decant_storefront/internal/database"
	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
	"github.com/locvowork/decant_storefront/internal/repository"
)

// CatalogSource selects where the product catalog is read from.
type CatalogSource struct {
	Kind      string
	XLSXPath  string
	XLSXSheet string
	Sheets    database.SheetsConfig
}

// CatalogSourceFromEnv builds the source from the loaded env config.
func CatalogSourceFromEnv() CatalogSource {
	cfg := config.DefaultEnvConfig
	return CatalogSource{
		Kind:      cfg.CATALOG_SOURCE,
		XLSXPath:  cfg.CATALOG_XLSX_PATH,
		XLSXSheet: cfg.CATALOG_XLSX_SHEET,
		Sheets: database.SheetsConfig{
			ServiceAccountEmail: cfg.GOOGLE_SERVICE_ACCOUNT_EMAIL,
			PrivateKey:          cfg.GOOGLE_PRIVATE_KEY,
			SpreadsheetID:       cfg.GOOGLE_SHEET_ID,
			Range:               cfg.GOOGLE_SHEET_RANGE,
		},
	}
}

// Repository returns the product repository for the selected source. An empty
// kind means the built-in catalog.
func (s CatalogSource) Repository(ctx context.Context) (domain.ProductRepository, error) {
	switch s.Kind {
	case "", config.CatalogSourceStatic:
		return repository.NewStaticProductRepository(), nil
	case config.CatalogSourceXLSX:
		reader := repository.NewXLSXRowReader(s.XLSXPath, s.XLSXSheet)
		return repository.NewSheetProductRepository(reader, s.XLSXPath), nil
	case config.CatalogSourceSheets:
		client, err := database.NewSheetsClient(ctx, s.Sheets)
		if err != nil {
			// A misconfigured sheet serves an empty catalog, same as a failed fetch.
			logger.ErrorLog(ctx, "Failed to create sheets client: %v", err)
			return repository.NewSheetProductRepository(unavailableRows{err: err}, "Google Sheets"), nil
		}
		return repository.NewSheetProductRepository(client, "Google Sheets"), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", s.Kind)
	}
}

// unavailableRows stands in for a sheet source that could not be reached.
type unavailableRows struct {
	err error
}

func (u unavailableRows) ReadRows(context.Context) ([][]string, error) {
	return nil, u.err
}
