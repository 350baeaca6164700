package http

import (
	"log/slog"
	"net/http"

	"github.com/23prakashjha/Grocery-App/internal/service"
	"github.com/23prakashjha/Grocery-App/pkg/httputil"
)

// CatalogHandler exposes the catalog snapshot and its refresh trigger.
type CatalogHandler struct {
	service *service.Storefront
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog HTTP handler.
func NewCatalogHandler(svc *service.Storefront, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// GetProducts handles GET /api/v1/catalog
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Refresh handles POST /api/v1/catalog/refresh
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.RefreshCatalog(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]int{"products": n}})
}
