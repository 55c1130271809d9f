package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/locvowork/decant_storefront/internal/domain"
)

// Catalog sheet columns A..Q.
const (
	colID = iota
	colName
	colBrand
	colPrice
	colOriginalPrice
	colImage
	colCategory
	colType
	colBestSeller
	colNew
	colDescription
	colTopNotes
	colMiddleNotes
	colBaseNotes
	colLongevity
	colSillage
	colOccasion
)

const (
	defaultLongevity = "8-10 hours"
	defaultSillage   = "Moderate"
)

// CatalogRow is a product flattened into the catalog sheet layout.
type CatalogRow struct {
	ID            string
	Name          string
	Brand         string
	Price         float64
	OriginalPrice float64
	Image         string
	Category      string
	Type          string
	IsBestSeller  string
	IsNew         string
	Description   string
	TopNotes      string
	MiddleNotes   string
	BaseNotes     string
	Longevity     string
	Sillage       string
	Occasion      string
}

// ToCatalogRow flattens p. List fields are joined with ", " so the row maps
// back to the same product.
func ToCatalogRow(p domain.Product) CatalogRow {
	return CatalogRow{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      string(p.Category),
		Type:          string(p.Type),
		IsBestSeller:  strconv.FormatBool(p.IsBestSeller),
		IsNew:         strconv.FormatBool(p.IsNew),
		Description:   p.Description,
		TopNotes:      strings.Join(p.Notes.Top, ", "),
		MiddleNotes:   strings.Join(p.Notes.Middle, ", "),
		BaseNotes:     strings.Join(p.Notes.Base, ", "),
		Longevity:     p.Longevity,
		Sillage:       p.Sillage,
		Occasion:      strings.Join(p.Occasion, ", "),
	}
}

// ToCatalogRows flattens every product, keeping order.
func ToCatalogRows(products []domain.Product) []CatalogRow {
	rows := make([]CatalogRow, len(products))
	for i, p := range products {
		rows[i] = ToCatalogRow(p)
	}
	return rows
}

// ProductsFromRows maps data rows (header already removed) to products.
func ProductsFromRows(rows [][]string) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for i, row := range rows {
		products = append(products, ProductFromRow(row, i+1))
	}
	return products
}

// ProductFromRow maps one positional row. n is the 1-based data row number,
// used for the fallback id. Short rows read as if padded with empty cells.
func ProductFromRow(row []string, n int) domain.Product {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	p := domain.Product{
		ID:            orDefault(cell(colID), fmt.Sprintf("perfume-%d", n)),
		Name:          cell(colName),
		Brand:         cell(colBrand),
		Price:         parsePrice(cell(colPrice)),
		OriginalPrice: parsePrice(cell(colOriginalPrice)),
		Image:         cell(colImage),
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentFresh,
		IsBestSeller:  strings.EqualFold(cell(colBestSeller), "true"),
		IsNew:         strings.EqualFold(cell(colNew), "true"),
		Description:   cell(colDescription),
		Notes: domain.Notes{
			Top:    splitList(cell(colTopNotes)),
			Middle: splitList(cell(colMiddleNotes)),
			Base:   splitList(cell(colBaseNotes)),
		},
		Longevity: orDefault(cell(colLongevity), defaultLongevity),
		Sillage:   orDefault(cell(colSillage), defaultSillage),
		Occasion:  splitList(cell(colOccasion)),
	}

	if c, ok := domain.ParseCategory(cell(colCategory)); ok {
		p.Category = c
	}
	if t, ok := domain.ParseScentType(cell(colType)); ok {
		p.Type = t
	}
	return p
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// parsePrice reads a sheet number. Thousands separators are accepted and
// anything unparsable reads as 0.
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
