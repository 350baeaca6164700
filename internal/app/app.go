// Package app wires together all dependencies and runs the storefront
// session service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/23prakashjha/Grocery-App/internal/catalog"
	"github.com/23prakashjha/Grocery-App/internal/checkout"
	"github.com/23prakashjha/Grocery-App/internal/client"
	"github.com/23prakashjha/Grocery-App/internal/config"
	"github.com/23prakashjha/Grocery-App/internal/event"
	handler "github.com/23prakashjha/Grocery-App/internal/handler/http"
	"github.com/23prakashjha/Grocery-App/internal/service"
	"github.com/23prakashjha/Grocery-App/internal/session"
	"github.com/23prakashjha/Grocery-App/pkg/health"
	"github.com/23prakashjha/Grocery-App/pkg/httpclient"
	pkgkafka "github.com/23prakashjha/Grocery-App/pkg/kafka"
	"github.com/23prakashjha/Grocery-App/pkg/tracing"
)

// App holds the wired application.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	storefront *service.Storefront
	sessions   *session.Manager
	producer   *pkgkafka.Producer
	httpServer *http.Server

	tracerShutdown func(context.Context) error
}

// NewApp creates the application, wiring clients, breakers, the catalog view
// and the session manager.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing is off unless configured.
	var tracerShutdown func(context.Context) error
	if cfg.TracingEnabled {
		tcfg := tracing.DefaultConfig("storefront")
		tcfg.Enabled = true
		tcfg.OTLPEndpoint = cfg.OTLPEndpoint
		tcfg.Environment = cfg.Environment

		shutdown, err := tracing.InitTracer(ctx, tcfg)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		tracerShutdown = shutdown
		logger.Info("tracing enabled", slog.String("endpoint", cfg.OTLPEndpoint))
	}

	// One retrying client per downstream, each behind its own breaker so a
	// dead order service cannot trip the catalog path.
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.ClientTimeout

	catalogHTTP := httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg), httpclient.DefaultCircuitBreakerConfig("catalog"), logger)
	addressHTTP := httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg), httpclient.DefaultCircuitBreakerConfig("address"), logger)
	orderHTTP := httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg), httpclient.DefaultCircuitBreakerConfig("order"), logger)

	catalogClient := client.NewCatalogClient(cfg.CatalogServiceURL, catalogHTTP)
	addressClient := client.NewAddressClient(cfg.AddressServiceURL, addressHTTP)
	orderClient := client.NewOrderClient(cfg.OrderServiceURL, orderHTTP)

	// Kafka producer for storefront events.
	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	view := catalog.NewView()
	sessions := session.NewManager(addressClient, orderClient)
	storefront := service.NewStorefront(
		sessions,
		view,
		catalogClient,
		checkout.NewCalculator(cfg.TaxRatePercent),
		event.NewProducer(producer),
		logger,
		cfg.Currency,
	)

	// Prime the catalog snapshot. Starting with an empty catalog is fine;
	// the refresh loop will fill it once the catalog service is reachable.
	if n, err := storefront.RefreshCatalog(ctx); err != nil {
		logger.Warn("initial catalog refresh failed", slog.String("error", err.Error()))
	} else {
		logger.Info("catalog primed", slog.Int("products", n))
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", func(ctx context.Context) error {
		return catalogClient.Ping(ctx)
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	router := handler.NewRouter(storefront, healthHandler, logger, cfg.PprofAllowedCIDRs)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		storefront:     storefront,
		sessions:       sessions,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and the background loops, blocking until the
// context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.refreshCatalogLoop(ctx)
	go a.purgeSessionsLoop(ctx)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// refreshCatalogLoop re-fetches the catalog snapshot on the configured
// interval so vanished and repriced products converge without restarts.
func (a *App) refreshCatalogLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.CatalogRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshCtx, cancel := context.WithTimeout(ctx, a.cfg.ClientTimeout)
			if _, err := a.storefront.RefreshCatalog(refreshCtx); err != nil {
				a.logger.Warn("catalog refresh failed", slog.String("error", err.Error()))
			}
			cancel()
		}
	}
}

// purgeSessionsLoop drops sessions idle past the TTL.
func (a *App) purgeSessionsLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SessionTTL / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := a.sessions.Purge(a.cfg.SessionTTL); removed > 0 {
				a.logger.Info("purged idle sessions",
					slog.Int("removed", removed),
					slog.Int("remaining", a.sessions.Len()),
				)
			}
		}
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
