package main

//go:generate swag init --dir ../../ --generalInfo cmd/inventory-admin/main.go --output ../../docs --parseInternal

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/retail-inventory-admin/docs"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/admin"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/client"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/handlers"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/config"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/health"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/inventory"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/metrics"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/realtime"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/reports"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/storage"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/telemetry"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

//	@title						Retail Inventory Admin API
//	@version					1.0
//	@description				Admin surface over the retail REST API: low-stock alerts, stock movements, catalog, orders, users and sales reports.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				"Bearer <ADMIN_TOKEN>"

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Root context, cancelled on shutdown. Background reconciliation and the
	// realtime listener live exactly as long as it does.
	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTracing, err := telemetry.Setup(rootCtx, cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Client state setup
	redisClient, err := newRedisClient(rootCtx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var store storage.Store = storage.NewMemoryStore()
	if redisClient != nil {
		store = storage.NewRedisStore(redisClient, storage.Namespace)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing client state store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Client state store closed")
		}
	}()

	clientState := storage.NewClientState(store)

	if cfg.API.Token != "" {
		if err := clientState.SetToken(rootCtx, cfg.API.Token); err != nil {
			slog.Error("❌ Error storing the session token", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	policy := catalog.BlockUnderAllocation
	if cfg.Catalog.AllowUnderAllocation {
		policy = catalog.AllowUnderAllocation
	}

	apiClient := client.New(cfg.API.BaseURL, clientState, client.WithTimeout(cfg.API.Timeout))

	inventoryService := inventory.NewInventoryService(apiClient, inventory.NewAlertStore(), inventory.ReconcilerConfig{
		VerifyDelay:     cfg.Reconcile.VerifyDelay,
		RefreshSchedule: cfg.Reconcile.RefreshSchedule,
	})
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	catalogService := catalog.NewCatalogService(apiClient, policy)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reportService := reports.NewReportService(apiClient)
	reportHandler := handlers.NewReportHandler(reportService)
	orderService := admin.NewOrderService(apiClient)
	orderHandler := handlers.NewOrderHandler(orderService)
	userService := admin.NewUserService(apiClient)
	userHandler := handlers.NewUserHandler(userService)
	sessionHandler := handlers.NewSessionHandler(clientState)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
	})
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("client initialized",
		slog.String("env", cfg.Env),
		slog.String("api", cfg.API.BaseURL),
		slog.String("storage", cfg.Storage.Backend),
		slog.String("version", "1.0.0"),
	)

	// Realtime updates
	listener := realtime.NewListener(cfg.Realtime.URL,
		realtime.WithTokenSource(clientState),
		realtime.WithReconnectDelay(cfg.Realtime.ReconnectDelay, cfg.Realtime.MaxReconnectDelay),
	)

	refreshStock := func(ctx context.Context, _ realtime.Event) {
		logRefresh(ctx, "alerts", inventoryService.RefreshAlerts(ctx))
		logRefresh(ctx, "current_stock", inventoryService.RefreshCurrentStock(ctx))
	}
	refreshProducts := func(ctx context.Context, _ realtime.Event) {
		logRefresh(ctx, "products", catalogService.RefreshProducts(ctx))
		logRefresh(ctx, "alerts", inventoryService.RefreshAlerts(ctx))
	}
	refreshOrders := func(ctx context.Context, _ realtime.Event) {
		logRefresh(ctx, "orders", orderService.RefreshOrders(ctx))
		logRefresh(ctx, "sales_performance", reportService.RefreshPerformance(ctx))
	}

	listener.On(realtime.EventInventoryUpdated, refreshStock)
	listener.On(realtime.EventLowStockAlertsRefresh, refreshStock)
	listener.On(realtime.EventProductUpdated, refreshProducts)
	listener.On(realtime.EventNewProduct, refreshProducts)
	listener.On(realtime.EventProductDeleted, refreshProducts)
	listener.On(realtime.EventOrderUpdated, refreshOrders)
	listener.On(realtime.EventNewOrder, refreshOrders)
	listener.On(realtime.EventAdminNotification, func(ctx context.Context, event realtime.Event) {
		middleware.LoggerFromContext(ctx).Info("📣 Admin notification", slog.String("payload", string(event.Payload)))
	})

	// Polling keeps the cached views fresh when no events arrive
	poller := realtime.NewPoller(cfg.Polling.Interval,
		realtime.Task{Name: "alerts", Run: inventoryService.RefreshAlerts},
		realtime.Task{Name: "current_stock", Run: inventoryService.RefreshCurrentStock},
		realtime.Task{Name: "sales_performance", Run: reportService.RefreshPerformance},
	)

	go func() {
		if err := listener.Run(rootCtx); err != nil {
			slog.Error("❌ Realtime listener stopped", slog.String("error", err.Error()))
		}
	}()

	go func() {
		if err := poller.Run(rootCtx); err != nil {
			slog.Error("❌ Poller stopped", slog.String("error", err.Error()))
		}
	}()

	go inventoryService.WatchAlerts(rootCtx, inventory.AlertLogger(slog.Default().With(slog.String("component", "alerts"))))

	// Initial load; failures are logged and the views fill on the next refresh
	go func() {
		ctx := middleware.WithLogger(rootCtx, slog.Default())
		logRefresh(ctx, "alerts", inventoryService.RefreshAlerts(ctx))
		logRefresh(ctx, "current_stock", inventoryService.RefreshCurrentStock(ctx))
		logRefresh(ctx, "products", catalogService.RefreshProducts(ctx))
		logRefresh(ctx, "categories", catalogService.RefreshCategories(ctx))
	}()

	// Setup router
	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Use(middleware.RequestLogging)
	if redisClient != nil {
		limiter := storage.NewRateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		router.Use(func(next http.Handler) http.Handler { return middleware.RateLimit(limiter, next) })
	}

	router.Handle("/metrics", metrics.Handler())
	router.Handle("/health", healthHandler.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	handlers.RegisterRoutes(router, handlers.Routes{
		Inventory:  inventoryHandler,
		Catalog:    catalogHandler,
		Orders:     orderHandler,
		Users:      userHandler,
		Reports:    reportHandler,
		Session:    sessionHandler,
		Policy:     policy,
		Lifetime:   func() context.Context { return rootCtx },
		AdminToken: cfg.AdminHTTP.Token,
	})

	handler := metrics.Middleware(router)

	// Setup server
	server := http.Server{
		Addr:              cfg.AdminHTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Admin server started", slog.String("address", cfg.AdminHTTP.Addr))

	done := make(chan os.Signal, 1)

	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Stop pending reconciliation, the listener and the poller first
	stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	inventoryService.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

// newRedisClient returns nil when client state is kept in memory.
func newRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {

	if cfg.Storage.Backend != "redis" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, err
	}

	opts.DB = cfg.RedisConnect.DB

	redisClient := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, err
	}

	slog.Info("✅ Connected to redis", slog.String("host", cfg.RedisConnect.Host))

	return redisClient, nil
}

func logRefresh(ctx context.Context, view string, err error) {
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("⚠️ Refresh failed", slog.String("view", view), slog.String("error", err.Error()))
	}
}
