package service

import (
	_ "embed"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/repository"
	"github.com/locvowork/decant_storefront/pkg/simpleexcel"
)

// CatalogExportFilename is the attachment name used for downloads.
const CatalogExportFilename = "catalog.xlsx"

const catalogSectionID = "catalog"

//go:embed layouts/catalog.yaml
var catalogLayout []byte

// NewCatalogExporter lays products out in the positional catalog sheet format,
// so the workbook can be loaded back as an xlsx catalog source.
func NewCatalogExporter(products []domain.Product) (*simpleexcel.DataExporter, error) {
	exporter, err := simpleexcel.NewDataExporterFromYAML(catalogLayout)
	if err != nil {
		return nil, err
	}
	exporter.BindSectionData(catalogSectionID, repository.ToCatalogRows(products))
	return exporter, nil
}
