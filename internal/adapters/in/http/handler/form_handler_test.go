package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	usecase "agendalog/internal/application/usecase"
	"agendalog/internal/domain/catalogue"
	formdom "agendalog/internal/domain/form"
)

type memFormRepo struct {
	forms map[string]formdom.Form
}

func (r *memFormRepo) GetByID(_ context.Context, id string) (*formdom.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, nil
	}
	cp := f
	return &cp, nil
}

func (r *memFormRepo) Upsert(_ context.Context, f *formdom.Form) error {
	r.forms[f.ID] = *f
	return nil
}

func (r *memFormRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalogue.New([]catalogue.Entry{
		{ID: "e1", Kind: catalogue.KindEquipment, Label: "Poliguindaste", Icon: "truck"},
	})
	assert.NoError(t, err)
	uc := usecase.NewFormUsecase(&memFormRepo{forms: map[string]formdom.Form{}}, cat)
	return NewFormHandler(uc)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestFormHandlerCreateAndCommitFlow(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/forms/sess-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/forms/sess-1/editor/open", `{"kind":"equipment"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/forms/sess-1/editor/select", `{"catalogueId":"e1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, "/forms/sess-1/editor/quantity", `{"text":"3"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/forms/sess-1/editor/commit", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var f formdom.Form
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Len(t, f.Equipment, 1)
	assert.Equal(t, 3, f.Equipment[0].Quantity)
	assert.Equal(t, formdom.EditorClosed, f.Editor.State)
}

func TestFormHandlerCommitWithoutChoiceIs422(t *testing.T) {
	h := newTestHandler(t)

	_ = do(t, h, http.MethodGet, "/forms/sess-1", "")
	_ = do(t, h, http.MethodPost, "/forms/sess-1/editor/open", `{"kind":"equipment"}`)

	rec := do(t, h, http.MethodPost, "/forms/sess-1/editor/commit", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Selecione um item do catálogo.", body["error"])
}

func TestFormHandlerUnknownSessionIs404(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/forms/ghost/editor/commit", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormHandlerBadDate(t *testing.T) {
	h := newTestHandler(t)

	_ = do(t, h, http.MethodGet, "/forms/sess-1", "")
	rec := do(t, h, http.MethodPut, "/forms/sess-1/delivery-date", `{"date":"31-08-2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormHandlerMissingSessionID(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/forms/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
