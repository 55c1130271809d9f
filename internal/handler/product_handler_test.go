package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/service"
	"github.com/locvowork/decant_storefront/pkg/simpleexcel"
)

func productIDs(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductHandler_List(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantIDs    []string
		wantActive bool
	}{
		{
			name:   "category sorted by price",
			target: "/api/products?category=feminine&sort=price-low",
			wantIDs: []string{
				"la-vie-est-belle", "black-opium", "pdm-delina",
			},
			wantActive: true,
		},
		{
			name:       "all is no filter",
			target:     "/api/products?category=all&type=all&brand=Tom+Ford",
			wantIDs:    []string{"oud-wood", "lost-cherry"},
			wantActive: true,
		},
		{
			name:       "search matches brand",
			target:     "/api/products?q=dior",
			wantIDs:    []string{"sauvage"},
			wantActive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var got ProductListResponse
			env := decode(t, rec, &got)
			assert.True(t, env.Success)
			assert.Equal(t, tt.wantIDs, productIDs(got.Products))
			assert.Equal(t, len(tt.wantIDs), got.Count)
			assert.Equal(t, tt.wantActive, got.ActiveFilters)
		})
	}

	t.Run("no query lists the whole catalog", func(t *testing.T) {
		var got ProductListResponse
		decode(t, s.do(t, http.MethodGet, "/api/products", ""), &got)
		assert.Equal(t, 12, got.Count)
		assert.False(t, got.ActiveFilters)
	})
}

func TestProductHandler_ListRejectsBadQuery(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/api/products?category=kids",
		"/api/products?type=aquatic",
		"/api/products?min_price=-1",
		"/api/products?max_price=cheap",
		"/api/products?min_price=5000&max_price=100",
	} {
		t.Run(target, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decode(t, rec, nil)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/products/aventus", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got ProductDetailResponse
	decode(t, rec, &got)
	assert.Equal(t, "Aventus", got.Product.Name)
	assert.Equal(t, []string{"bleu-de-chanel", "sauvage", "acqua-di-gio-profumo"}, productIDs(got.Similar))

	rec = s.do(t, http.MethodGet, "/api/products/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "Product not found", env.Message)
}

func TestProductHandler_Collections(t *testing.T) {
	s := newTestServer(t)

	var best []domain.Product
	decode(t, s.do(t, http.MethodGet, "/api/products/best-sellers", ""), &best)
	assert.Len(t, best, 6)
	for _, p := range best {
		assert.True(t, p.IsBestSeller, p.ID)
	}

	var arrivals []domain.Product
	decode(t, s.do(t, http.MethodGet, "/api/products/new-arrivals", ""), &arrivals)
	for _, p := range arrivals {
		assert.True(t, p.IsNew, p.ID)
	}

	var brands []string
	decode(t, s.do(t, http.MethodGet, "/api/brands", ""), &brands)
	assert.Contains(t, brands, "Tom Ford")
	assert.IsIncreasing(t, brands)

	var found []domain.Product
	decode(t, s.do(t, http.MethodGet, "/api/search?q=woody", ""), &found)
	assert.Equal(t, []string{"oud-wood", "bleu-de-chanel", "byredo-gypsy-water", "le-labo-santal-33"}, productIDs(found))

	var none []domain.Product
	decode(t, s.do(t, http.MethodGet, "/api/search?q=+", ""), &none)
	assert.Empty(t, none)
}

func TestProductHandler_Statistics(t *testing.T) {
	s := newTestServer(t)

	var stats service.CatalogStatistics
	decode(t, s.do(t, http.MethodGet, "/api/catalog/statistics", ""), &stats)
	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, 3, stats.ByCategory[domain.CategoryFeminine])
	assert.Equal(t, 3200.0, stats.MinPrice)
	assert.Equal(t, 7200.0, stats.MaxPrice)
}

func TestProductHandler_Export(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/catalog/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, simpleexcel.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), service.CatalogExportFilename)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, "aventus", rows[1][0])
}
