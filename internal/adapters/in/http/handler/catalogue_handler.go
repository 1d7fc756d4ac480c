// internal/adapters/in/http/handler/catalogue_handler.go
package handler

import (
	"net/http"
	"strings"

	"agendalog/internal/domain/catalogue"
)

// CatalogueHandler serves the static equipment/container catalogues.
//
// Routes (under /catalogues):
//   - GET /catalogues/equipment
//   - GET /catalogues/containers
type CatalogueHandler struct {
	cat *catalogue.Catalogue
}

func NewCatalogueHandler(cat *catalogue.Catalogue) http.Handler {
	return &CatalogueHandler{cat: cat}
}

func (h *CatalogueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.cat == nil {
		writeErr(w, http.StatusInternalServerError, "catalogue handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	switch {
	case strings.HasSuffix(path, "/equipment"):
		writeJSON(w, http.StatusOK, h.cat.OfKind(catalogue.KindEquipment))
	case strings.HasSuffix(path, "/containers"):
		writeJSON(w, http.StatusOK, h.cat.OfKind(catalogue.KindContainer))
	default:
		writeErr(w, http.StatusNotFound, "unknown catalogue")
	}
}
