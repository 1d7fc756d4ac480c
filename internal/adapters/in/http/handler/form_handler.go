// internal/adapters/in/http/handler/form_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "agendalog/internal/application/usecase"
	"agendalog/internal/domain/catalogue"
	formdom "agendalog/internal/domain/form"
)

// FormHandler serves draft form sessions.
//
// Routes (under /forms):
//   - GET    /forms/{sid}
//   - PUT    /forms/{sid}/client           {clientId, clientName}
//   - PUT    /forms/{sid}/address          {address}
//   - PUT    /forms/{sid}/delivery-date    {date: "2006-01-02"}
//   - PUT    /forms/{sid}/observations     {observations}
//   - DELETE /forms/{sid}/entries/{kind}/{entryId}
//   - POST   /forms/{sid}/editor/open      {kind, index?}
//   - POST   /forms/{sid}/editor/select    {catalogueId}
//   - PUT    /forms/{sid}/editor/quantity  {text}
//   - POST   /forms/{sid}/editor/commit
//   - POST   /forms/{sid}/editor/dismiss
//   - GET    /forms/{sid}/editor/options
//   - GET    /forms/{sid}/validate
type FormHandler struct {
	uc *usecase.FormUsecase
}

func NewFormHandler(uc *usecase.FormUsecase) http.Handler {
	return &FormHandler{uc: uc}
}

func (h *FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "form handler is not configured")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/forms"), "/")
	segs := strings.Split(rest, "/")
	if rest == "" || segs[0] == "" {
		writeErr(w, http.StatusBadRequest, "session id is required")
		return
	}
	sid := segs[0]
	sub := strings.Join(segs[1:], "/")

	ctx := r.Context()

	switch {
	case sub == "" && r.Method == http.MethodGet:
		f, err := h.uc.GetOrCreate(ctx, sid)
		h.respondForm(w, f, err)

	case sub == "client" && r.Method == http.MethodPut:
		var body struct {
			ClientID   string `json:"clientId"`
			ClientName string `json:"clientName"`
		}
		if !decode(w, r, &body) {
			return
		}
		f, err := h.uc.SetClient(ctx, sid, body.ClientID, body.ClientName)
		h.respondForm(w, f, err)

	case sub == "address" && r.Method == http.MethodPut:
		var body struct {
			Address string `json:"address"`
		}
		if !decode(w, r, &body) {
			return
		}
		f, err := h.uc.SetAddress(ctx, sid, body.Address)
		h.respondForm(w, f, err)

	case sub == "delivery-date" && r.Method == http.MethodPut:
		var body struct {
			Date string `json:"date"`
		}
		if !decode(w, r, &body) {
			return
		}
		d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(body.Date), time.Local)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		f, err := h.uc.SetDeliveryDate(ctx, sid, d)
		h.respondForm(w, f, err)

	case sub == "observations" && r.Method == http.MethodPut:
		var body struct {
			Observations string `json:"observations"`
		}
		if !decode(w, r, &body) {
			return
		}
		f, err := h.uc.SetObservations(ctx, sid, body.Observations)
		h.respondForm(w, f, err)

	case strings.HasPrefix(sub, "entries/") && r.Method == http.MethodDelete:
		parts := strings.Split(sub, "/")
		if len(parts) != 3 {
			writeErr(w, http.StatusBadRequest, "expected entries/{kind}/{entryId}")
			return
		}
		f, err := h.uc.RemoveEntry(ctx, sid, catalogue.Kind(parts[1]), parts[2])
		h.respondForm(w, f, err)

	case sub == "editor/open" && r.Method == http.MethodPost:
		var body struct {
			Kind  string `json:"kind"`
			Index *int   `json:"index"`
		}
		if !decode(w, r, &body) {
			return
		}
		kind := catalogue.Kind(body.Kind)
		var f *formdom.Form
		var err error
		if body.Index != nil {
			f, err = h.uc.OpenEditorForEdit(ctx, sid, kind, *body.Index)
		} else {
			f, err = h.uc.OpenEditorForCreate(ctx, sid, kind)
		}
		h.respondForm(w, f, err)

	case sub == "editor/select" && r.Method == http.MethodPost:
		var body struct {
			CatalogueID string `json:"catalogueId"`
		}
		if !decode(w, r, &body) {
			return
		}
		f, err := h.uc.SelectEditorItem(ctx, sid, body.CatalogueID)
		h.respondForm(w, f, err)

	case sub == "editor/quantity" && r.Method == http.MethodPut:
		var body struct {
			Text string `json:"text"`
		}
		if !decode(w, r, &body) {
			return
		}
		f, err := h.uc.SetEditorQuantityText(ctx, sid, body.Text)
		h.respondForm(w, f, err)

	case sub == "editor/commit" && r.Method == http.MethodPost:
		f, err := h.uc.CommitEditor(ctx, sid)
		h.respondForm(w, f, err)

	case sub == "editor/dismiss" && r.Method == http.MethodPost:
		f, err := h.uc.DismissEditor(ctx, sid)
		h.respondForm(w, f, err)

	case sub == "editor/options" && r.Method == http.MethodGet:
		opts, err := h.uc.EditorOptions(ctx, sid)
		if err != nil {
			h.respondForm(w, nil, err)
			return
		}
		writeJSON(w, http.StatusOK, opts)

	case sub == "validate" && r.Method == http.MethodGet:
		errs, err := h.uc.Validate(ctx, sid)
		if err != nil {
			h.respondForm(w, nil, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"errors": errs})

	default:
		writeErr(w, http.StatusNotFound, "unknown form route")
	}
}

// respondForm maps usecase/domain errors onto statuses. Editor commit errors
// are user-correctable: 422 with a client-facing message, editor stays open.
func (h *FormHandler) respondForm(w http.ResponseWriter, f *formdom.Form, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, f)
		return
	}
	switch {
	case errors.Is(err, usecase.ErrFormNotFound):
		writeErr(w, http.StatusNotFound, "form session not found")
	case errors.Is(err, formdom.ErrNoItemChosen):
		writeErr(w, http.StatusUnprocessableEntity, "Selecione um item do catálogo.")
	case errors.Is(err, formdom.ErrInvalidQuantity):
		writeErr(w, http.StatusUnprocessableEntity, "Informe uma quantidade válida.")
	case errors.Is(err, formdom.ErrEditorClosed):
		writeErr(w, http.StatusConflict, "editor is not open")
	case errors.Is(err, formdom.ErrBadIndex),
		errors.Is(err, usecase.ErrFormInvalidArgument):
		writeErr(w, http.StatusBadRequest, "invalid request")
	default:
		log.Printf("[form_handler] error: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
