// internal/adapters/in/http/handler/lookup_handler.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	usecase "agendalog/internal/application/usecase"
	"agendalog/internal/domain/lookup"
)

// LookupHandler proxies the tax-id address lookup.
//
// Routes (under /lookup):
//   - GET /lookup/cnpj?taxId=...
type LookupHandler struct {
	uc *usecase.LookupUsecase
}

func NewLookupHandler(uc *usecase.LookupUsecase) http.Handler {
	return &LookupHandler{uc: uc}
}

func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "lookup handler is not configured")
		return
	}
	if !strings.HasSuffix(strings.TrimRight(r.URL.Path, "/"), "/cnpj") {
		writeErr(w, http.StatusNotFound, "unknown lookup route")
		return
	}

	taxID := r.URL.Query().Get("taxId")
	formatted, err := h.uc.Lookup(r.Context(), taxID)
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrInvalidTaxID):
			writeErr(w, http.StatusBadRequest, "CNPJ inválido.")
		default:
			// Collaborator failures collapse into one generic, retryable message.
			writeErr(w, http.StatusBadGateway, "Não foi possível buscar o endereço. Tente novamente.")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": formatted})
}
