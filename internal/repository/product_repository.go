package repository

import (
	"context"
	"slices"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
)

var (
	_ domain.ProductRepository = (*StaticProductRepository)(nil)
	_ domain.ProductRepository = (*SheetProductRepository)(nil)
)

// StaticProductRepository serves the built-in catalog.
type StaticProductRepository struct {
	products []domain.Product
}

// NewStaticProductRepository returns a repository over the built-in catalog.
func NewStaticProductRepository() *StaticProductRepository {
	return &StaticProductRepository{products: staticCatalog}
}

// GetAll returns a copy of the built-in catalog.
func (r *StaticProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

// RowReader yields the raw rows of a catalog sheet, header row included.
type RowReader interface {
	ReadRows(ctx context.Context) ([][]string, error)
}

// SheetProductRepository builds the catalog from spreadsheet rows.
type SheetProductRepository struct {
	reader RowReader
	source string
}

// NewSheetProductRepository wraps reader. source names the sheet in logs.
func NewSheetProductRepository(reader RowReader, source string) *SheetProductRepository {
	return &SheetProductRepository{reader: reader, source: source}
}

// GetAll reads and maps every data row. A failed read is logged and gives an
// empty catalog, so callers never see an error.
func (r *SheetProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.reader.ReadRows(ctx)
	if err != nil {
		logger.ErrorLog(ctx, "Error fetching catalog from %s: %v", r.source, err)
		return []domain.Product{}, nil
	}
	if len(rows) == 0 {
		logger.WarnLog(ctx, "No data found in %s", r.source)
		return []domain.Product{}, nil
	}

	products := ProductsFromRows(rows[1:])
	logger.InfoLog(ctx, "Loaded %d products from %s", len(products), r.source)
	return products, nil
}
