package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/decant_storefront/internal/config"
	"github.com/locvowork/decant_storefront/internal/database"
	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/handler"
	"github.com/locvowork/decant_storefront/internal/logger"
	"github.com/locvowork/decant_storefront/internal/metrics"
	"github.com/locvowork/decant_storefront/internal/service"
)

type App struct {
	Echo    *echo.Echo
	Metrics *metrics.Metrics

	Products *service.ProductService
	Cart     *service.CartStore
	Wishlist *service.WishlistStore
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo:    e,
		Metrics: metrics.New(),
	}
}

// Initialize loads config, the catalog and the shopper state, then wires the
// HTTP surface.
func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	storage, err := database.NewFileStorage(config.DefaultEnvConfig.STORAGE_DIR)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo, err := CatalogSourceFromEnv().Repository(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog source: %w", err)
	}

	return a.Wire(ctx, repo, storage, config.DefaultEnvConfig.CATALOG_FETCH_TIMEOUT)
}

// Wire builds services and handlers on top of repo and storage. The catalog
// is loaded once, bounded by fetchTimeout when it is positive.
func (a *App) Wire(ctx context.Context, repo domain.ProductRepository, storage domain.LocalStorage, fetchTimeout time.Duration) error {
	loadCtx := ctx
	if fetchTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
	}

	a.Products = service.NewProductService(repo)
	if err := a.Products.Load(loadCtx); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	a.Metrics.SetCatalogProducts(len(a.Products.GetAll()))

	a.Cart = service.NewCartStore(storage)
	a.Wishlist = service.NewWishlistStore(storage)

	productHandler := handler.NewProductHandler(a.Products)
	cartHandler := handler.NewCartHandler(a.Cart, a.Products, a.Metrics)
	wishlistHandler := handler.NewWishlistHandler(a.Wishlist, a.Products, a.Metrics)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(productHandler, cartHandler, wishlistHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	a.Echo.Use(requestLogger())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(a.Metrics.Middleware())
}

func (a *App) RegisterRoutes(productHandler *handler.ProductHandler, cartHandler *handler.CartHandler, wishlistHandler *handler.WishlistHandler) {
	a.Echo.GET("/health", healthHandler)
	a.Echo.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))

	api := a.Echo.Group("/api")

	api.GET("/products", productHandler.ListHandler)
	api.GET("/products/best-sellers", productHandler.BestSellersHandler)
	api.GET("/products/new-arrivals", productHandler.NewArrivalsHandler)
	api.GET("/products/:id", productHandler.GetHandler)
	api.GET("/brands", productHandler.BrandsHandler)
	api.GET("/search", productHandler.SearchHandler)

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("/statistics", productHandler.StatisticsHandler)
	catalogGroup.GET("/export", productHandler.ExportHandler)

	cartGroup := api.Group("/cart")
	cartGroup.GET("", cartHandler.GetHandler)
	cartGroup.DELETE("", cartHandler.ClearHandler)
	cartGroup.POST("/items", cartHandler.AddItemHandler)
	cartGroup.PATCH("/items/:productId", cartHandler.UpdateItemHandler)
	cartGroup.DELETE("/items/:productId", cartHandler.RemoveItemHandler)
	api.GET("/checkout", cartHandler.CheckoutHandler)

	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.GET("", wishlistHandler.GetHandler)
	wishlistGroup.DELETE("", wishlistHandler.ClearHandler)
	wishlistGroup.POST("/items", wishlistHandler.AddItemHandler)
	wishlistGroup.POST("/items/:productId/toggle", wishlistHandler.ToggleHandler)
	wishlistGroup.DELETE("/items/:productId", wishlistHandler.RemoveItemHandler)
}

// Run serves until ctx is cancelled, then shuts the server down within
// SHUTDOWN_TIMEOUT.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + config.DefaultEnvConfig.APP_PORT
		logger.InfoLog(ctx, "Starting server on %s", addr)
		if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.InfoLog(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultEnvConfig.SHUTDOWN_TIMEOUT)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger writes one zerolog line per request, tagged with its request id.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				logger.WarnLog(ctx, "%s %s %d %s: %v", v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			logger.InfoLog(ctx, "%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}
