package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
	"github.com/locvowork/decant_storefront/internal/service"
	"github.com/locvowork/decant_storefront/internal/service/serviceutils"
	"github.com/locvowork/decant_storefront/pkg/simpleexcel"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListHandler handles GET /api/products
func (h *ProductHandler) ListHandler(c echo.Context) error {
	q, err := parseCatalogQuery(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid catalog query", err)
	}

	products := h.productService.Filter(q)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Products listed successfully", ProductListResponse{
		Products:      products,
		Count:         len(products),
		ActiveFilters: q.HasActiveFilters(),
	})
}

// GetHandler handles GET /api/products/:id
func (h *ProductHandler) GetHandler(c echo.Context) error {
	product, err := h.productService.GetByID(c.Param("id"))
	if err != nil {
		return productLookupError(c, err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Product retrieved successfully", ProductDetailResponse{
		Product: product,
		Similar: h.productService.Similar(product, service.DefaultSimilarLimit),
	})
}

// BestSellersHandler handles GET /api/products/best-sellers
func (h *ProductHandler) BestSellersHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Best sellers listed successfully", h.productService.BestSellers())
}

// NewArrivalsHandler handles GET /api/products/new-arrivals
func (h *ProductHandler) NewArrivalsHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "New arrivals listed successfully", h.productService.NewArrivals())
}

// BrandsHandler handles GET /api/brands
func (h *ProductHandler) BrandsHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Brands listed successfully", h.productService.Brands())
}

// SearchHandler handles GET /api/search?q=
func (h *ProductHandler) SearchHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Search completed", h.productService.Search(c.QueryParam("q")))
}

// StatisticsHandler handles GET /api/catalog/statistics
func (h *ProductHandler) StatisticsHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Catalog statistics computed", h.productService.Statistics())
}

// ExportHandler handles GET /api/catalog/export
func (h *ProductHandler) ExportHandler(c echo.Context) error {
	products := h.productService.GetAll()

	exporter, err := service.NewCatalogExporter(products)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to prepare catalog export", err)
	}

	excelBytes, err := exporter.ToBytes()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}
	logger.InfoLog(c.Request().Context(), "Exported %d products", len(products))

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, service.CatalogExportFilename))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(excelBytes)))
	return c.Blob(http.StatusOK, simpleexcel.ContentTypeXLSX, excelBytes)
}

// productLookupError maps catalog lookup failures to 404 or 500.
func productLookupError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Product not found", err)
	}
	return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to look up product", err)
}

func parseCatalogQuery(c echo.Context) (service.CatalogQuery, error) {
	q := service.CatalogQuery{
		Search: c.QueryParam("q"),
		Sort:   domain.ParseSortOption(c.QueryParam("sort")),
	}

	if v := c.QueryParam("category"); v != "" && !strings.EqualFold(v, "all") {
		category, ok := domain.ParseCategory(v)
		if !ok {
			return q, fmt.Errorf("unknown category %q", v)
		}
		q.Category = category
	}

	if v := c.QueryParam("type"); v != "" && !strings.EqualFold(v, "all") {
		scentType, ok := domain.ParseScentType(v)
		if !ok {
			return q, fmt.Errorf("unknown type %q", v)
		}
		q.Type = scentType
	}

	var err error
	if q.MinPrice, err = parsePriceParam(c, "min_price"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parsePriceParam(c, "max_price"); err != nil {
		return q, err
	}
	if q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		return q, fmt.Errorf("min_price %v is above max_price %v", q.MinPrice, q.MaxPrice)
	}

	for _, b := range c.QueryParams()["brand"] {
		if b = strings.TrimSpace(b); b != "" {
			q.Brands = append(q.Brands, b)
		}
	}
	return q, nil
}

func parsePriceParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a non-negative number, got %q", name, raw)
	}
	return v, nil
}
