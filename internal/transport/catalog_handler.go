package transport

import (
	"net/http"

	"mesnato/internal/catalog"
	"mesnato/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only product catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cat *catalog.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		logger:  logger,
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.CatalogCORS())
		r.Get("/", h.List)
		r.Get("/bestsellers", h.BestSellers)
	})
}

// List returns the full catalog in display order
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Products())
}

// BestSellers returns the featured selection
func (h *CatalogHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.BestSellers())
}
