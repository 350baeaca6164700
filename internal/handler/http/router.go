package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/23prakashjha/Grocery-App/internal/service"
	"github.com/23prakashjha/Grocery-App/pkg/health"
	"github.com/23prakashjha/Grocery-App/pkg/middleware"
)

// NewRouter creates the chi router with all storefront routes registered.
func NewRouter(
	svc *service.Storefront,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	cartHandler := NewCartHandler(svc, logger)
	addressHandler := NewAddressHandler(svc, logger)
	checkoutHandler := NewCheckoutHandler(svc, logger)
	catalogHandler := NewCatalogHandler(svc, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/cart", func(r chi.Router) {
			r.Use(SessionRequired)

			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.UpdateItem)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Use(SessionRequired)

			r.Get("/", addressHandler.GetAddresses)
			r.Put("/selected", addressHandler.SelectAddress)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(SessionRequired)

			r.Get("/", checkoutHandler.GetCheckout)
			r.Put("/payment", checkoutHandler.SetPayment)
			r.Post("/order", checkoutHandler.SubmitOrder)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.GetProducts)
			r.Post("/refresh", catalogHandler.Refresh)
		})
	})

	return r
}
