// internal/adapters/in/http/handler/client_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "agendalog/internal/application/usecase"
)

// ClientHandler serves the read-only client directory.
//
// Routes (under /clients):
//   - GET /clients
//   - GET /clients/{id}
type ClientHandler struct {
	uc *usecase.ClientUsecase
}

func NewClientHandler(uc *usecase.ClientUsecase) http.Handler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "client handler is not configured")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/clients"), "/")
	if rest == "" {
		list, err := h.uc.List(r.Context())
		if err != nil {
			log.Printf("[client_handler] list failed: %v", err)
			writeErr(w, http.StatusInternalServerError, "could not load clients")
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	c, err := h.uc.Get(r.Context(), rest)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			writeErr(w, http.StatusNotFound, "client not found")
		case errors.Is(err, usecase.ErrClientInvalidArgument):
			writeErr(w, http.StatusBadRequest, "invalid client id")
		default:
			log.Printf("[client_handler] get failed id=%s: %v", rest, err)
			writeErr(w, http.StatusInternalServerError, "could not load client")
		}
		return
	}
	writeJSON(w, http.StatusOK, c)
}
