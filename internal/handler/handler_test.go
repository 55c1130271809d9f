package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/decant_storefront/internal/database"
	"github.com/locvowork/decant_storefront/internal/repository"
	"github.com/locvowork/decant_storefront/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type gaugeRecorder struct {
	cart, wishlist int
}

func (g *gaugeRecorder) SetCartItems(n int)     { g.cart = n }
func (g *gaugeRecorder) SetWishlistItems(n int) { g.wishlist = n }

type testServer struct {
	e        *echo.Echo
	storage  *database.MemoryStorage
	cart     *service.CartStore
	wishlist *service.WishlistStore
	gauges   *gaugeRecorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	products := service.NewProductService(repository.NewStaticProductRepository())
	require.NoError(t, products.Load(context.Background()))

	storage := database.NewMemoryStorage()
	s := &testServer{
		e:        echo.New(),
		storage:  storage,
		cart:     service.NewCartStore(storage),
		wishlist: service.NewWishlistStore(storage),
		gauges:   &gaugeRecorder{},
	}

	ph := NewProductHandler(products)
	ch := NewCartHandler(s.cart, products, s.gauges)
	wh := NewWishlistHandler(s.wishlist, products, s.gauges)

	api := s.e.Group("/api")
	api.GET("/products", ph.ListHandler)
	api.GET("/products/best-sellers", ph.BestSellersHandler)
	api.GET("/products/new-arrivals", ph.NewArrivalsHandler)
	api.GET("/products/:id", ph.GetHandler)
	api.GET("/brands", ph.BrandsHandler)
	api.GET("/search", ph.SearchHandler)
	api.GET("/catalog/statistics", ph.StatisticsHandler)
	api.GET("/catalog/export", ph.ExportHandler)

	api.GET("/cart", ch.GetHandler)
	api.POST("/cart/items", ch.AddItemHandler)
	api.PATCH("/cart/items/:productId", ch.UpdateItemHandler)
	api.DELETE("/cart/items/:productId", ch.RemoveItemHandler)
	api.DELETE("/cart", ch.ClearHandler)
	api.GET("/checkout", ch.CheckoutHandler)

	api.GET("/wishlist", wh.GetHandler)
	api.POST("/wishlist/items", wh.AddItemHandler)
	api.POST("/wishlist/items/:productId/toggle", wh.ToggleHandler)
	api.DELETE("/wishlist/items/:productId", wh.RemoveItemHandler)
	api.DELETE("/wishlist", wh.ClearHandler)
	return s
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// decode unpacks the envelope and, when out is non-nil, its data field.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
