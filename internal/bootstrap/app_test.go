package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/decant_storefront/internal/config"
	"github.com/locvowork/decant_storefront/internal/database"
	"github.com/locvowork/decant_storefront/internal/repository"
	"github.com/locvowork/decant_storefront/internal/service"
)

func newWiredApp(t *testing.T) *App {
	t.Helper()
	app := NewApp()
	require.NoError(t, app.Wire(context.Background(), repository.NewStaticProductRepository(), database.NewMemoryStorage(), time.Second))
	return app
}

func serve(app *App, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestApp_Routes(t *testing.T) {
	app := newWiredApp(t)

	rec := serve(app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/products/best-sellers", "", http.StatusOK},
		{http.MethodGet, "/api/products/sauvage", "", http.StatusOK},
		{http.MethodGet, "/api/brands", "", http.StatusOK},
		{http.MethodGet, "/api/search?q=oud", "", http.StatusOK},
		{http.MethodGet, "/api/catalog/statistics", "", http.StatusOK},
		{http.MethodPost, "/api/cart/items", `{"product_id":"sauvage","quantity":2}`, http.StatusCreated},
		{http.MethodGet, "/api/cart", "", http.StatusOK},
		{http.MethodPost, "/api/wishlist/items/oud-wood/toggle", "", http.StatusOK},
		{http.MethodGet, "/api/checkout", "", http.StatusNotImplemented},
		{http.MethodGet, "/api/nowhere", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(app, tt.method, tt.target, tt.body).Code)
		})
	}

	assert.Equal(t, 2, app.Cart.ItemCount())
	assert.True(t, app.Wishlist.Contains("oud-wood"))

	rec = serve(app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "storefront_catalog_products 12")
	assert.Contains(t, body, "storefront_cart_items 2")
	assert.Contains(t, body, "storefront_wishlist_items 1")
	assert.Contains(t, body, `route="/api/products/:id"`)
}

func TestApp_WireRestoresShopperState(t *testing.T) {
	storage := database.NewMemoryStorage()
	require.NoError(t, storage.SetItem(service.WishlistStorageKey, `[{"id":"aventus","name":"Aventus"}]`))

	app := NewApp()
	require.NoError(t, app.Wire(context.Background(), repository.NewStaticProductRepository(), storage, 0))
	assert.True(t, app.Wishlist.Contains("aventus"))
	assert.Zero(t, app.Cart.ItemCount())
}

func TestCatalogSource_Repository(t *testing.T) {
	ctx := context.Background()

	t.Run("static", func(t *testing.T) {
		for _, kind := range []string{"", config.CatalogSourceStatic} {
			repo, err := CatalogSource{Kind: kind}.Repository(ctx)
			require.NoError(t, err)
			assert.IsType(t, &repository.StaticProductRepository{}, repo)
		}
	})

	t.Run("xlsx reads an exported workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.xlsx")
		static, err := repository.NewStaticProductRepository().GetAll(ctx)
		require.NoError(t, err)
		exporter, err := service.NewCatalogExporter(static)
		require.NoError(t, err)
		require.NoError(t, exporter.ExportToExcel(ctx, path))

		repo, err := CatalogSource{Kind: config.CatalogSourceXLSX, XLSXPath: path, XLSXSheet: "Sheet1"}.Repository(ctx)
		require.NoError(t, err)
		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, len(static))
	})

	t.Run("sheets without credentials serves an empty catalog", func(t *testing.T) {
		repo, err := CatalogSource{Kind: config.CatalogSourceSheets}.Repository(ctx)
		require.NoError(t, err)
		assert.IsType(t, &repository.SheetProductRepository{}, repo)

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)

		app := NewApp()
		require.NoError(t, app.Wire(ctx, repo, database.NewMemoryStorage(), time.Second))
		rec := serve(app, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := CatalogSource{Kind: "postgres"}.Repository(ctx)
		assert.ErrorContains(t, err, "unknown catalog source")
	})
}

func TestApp_LogsHandlerErrors(t *testing.T) {
	app := newWiredApp(t)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var warned bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["level"] == "warn" && strings.Contains(entry["message"].(string), "/api/nowhere 404") {
			warned = true
			assert.NotEmpty(t, entry["request_id"])
		}
	}
	assert.True(t, warned, buf.String())

	metricsRec := serve(app, http.MethodGet, "/metrics", "")
	assert.Contains(t, metricsRec.Body.String(), `code="404"`)
}
