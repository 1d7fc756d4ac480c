// internal/adapters/in/http/handler/schedule_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "agendalog/internal/application/usecase"
)

// ScheduleHandler turns a draft into a submitted schedule.
//
// Routes (under /schedules):
//   - POST /schedules {sessionId}
//
// CreatedBy comes from the X-User-Id header (filled by the auth middleware
// when enabled).
type ScheduleHandler struct {
	uc *usecase.ScheduleUsecase
}

func NewScheduleHandler(uc *usecase.ScheduleUsecase) http.Handler {
	return &ScheduleHandler{uc: uc}
}

func (h *ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "schedule handler is not configured")
		return
	}

	var body struct {
		SessionID string `json:"sessionId"`
	}
	if !decode(w, r, &body) {
		return
	}
	createdBy := strings.TrimSpace(r.Header.Get("X-User-Id"))

	rec, validationErrs, err := h.uc.Submit(r.Context(), body.SessionID, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleFormNotFound):
			writeErr(w, http.StatusNotFound, "form session not found")
		case errors.Is(err, usecase.ErrScheduleInvalidArgument):
			writeErr(w, http.StatusBadRequest, "invalid request")
		default:
			log.Printf("[schedule_handler] submit failed session=%s: %v", body.SessionID, err)
			writeErr(w, http.StatusInternalServerError, "could not save the schedule")
		}
		return
	}
	if len(validationErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": validationErrs})
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}
