package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendalog/internal/domain/catalogue"
	"agendalog/internal/domain/selection"
)

func testCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c, err := catalogue.New([]catalogue.Entry{
		{ID: "e1", Kind: catalogue.KindEquipment, Label: "Poliguindaste", Icon: "truck"},
		{ID: "e2", Kind: catalogue.KindEquipment, Label: "Guindaste", Icon: "crane"},
		{ID: "c1", Kind: catalogue.KindContainer, Label: "Caçamba", Icon: "dumpster", Capacity: "3m³"},
		{ID: "c2", Kind: catalogue.KindContainer, Label: "Caçamba", Icon: "dumpster", Capacity: "5m³"},
	})
	assert.NoError(t, err)
	return c
}

func TestOpenForCreateDefaults(t *testing.T) {
	s := OpenForCreate(catalogue.KindEquipment)

	assert.Equal(t, EditorCreating, s.State)
	assert.Equal(t, catalogue.KindEquipment, s.Kind)
	assert.Empty(t, s.ChosenID)
	assert.Equal(t, "1", s.QuantityText)
}

func TestSetQuantityTextStripsNonDigits(t *testing.T) {
	s := OpenForCreate(catalogue.KindEquipment)

	tests := []struct {
		in   string
		want string
	}{
		{"3", "3"},
		{"a3b", "3"},
		{"1.5", "15"},
		{"-2", "2"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range tests {
		out, err := s.SetQuantityText(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, out.QuantityText, "input %q", tc.in)
	}
}

func TestQuantityParsing(t *testing.T) {
	s := OpenForCreate(catalogue.KindContainer)

	s.QuantityText = "4"
	n, err := s.Quantity()
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, bad := range []string{"", "0"} {
		s.QuantityText = bad
		_, err := s.Quantity()
		assert.ErrorIs(t, err, ErrInvalidQuantity, "buffer %q", bad)
	}
}

func TestEditorClosedRejectsInput(t *testing.T) {
	s := ClosedSession()

	_, err := s.SelectItem(catalogue.Entry{ID: "e1"})
	assert.ErrorIs(t, err, ErrEditorClosed)

	_, err = s.SetQuantityText("3")
	assert.ErrorIs(t, err, ErrEditorClosed)
}

func TestOpenForEditPrefersStoredCatalogueID(t *testing.T) {
	cat := testCatalogue(t)
	list := selection.List{
		{ID: "s1", CatalogueID: "c2", Label: "Caçamba", Capacity: "5m³", Quantity: 2, Status: selection.StatusAvailable},
	}

	s, err := OpenForEdit(catalogue.KindContainer, 0, list, cat)
	assert.NoError(t, err)
	assert.Equal(t, EditorEditing, s.State)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, "c2", s.ChosenID)
	assert.Equal(t, "2", s.QuantityText)
}

func TestOpenForEditFallsBackToLabelResolution(t *testing.T) {
	cat := testCatalogue(t)
	// legacy entry: no catalogue id, only the denormalized label/capacity
	list := selection.List{
		{ID: "s1", Label: "Caçamba", Capacity: "5m³", Quantity: 3, Status: selection.StatusAvailable},
	}

	s, err := OpenForEdit(catalogue.KindContainer, 0, list, cat)
	assert.NoError(t, err)
	assert.Equal(t, "c2", s.ChosenID)
}

func TestOpenForEditOutOfRange(t *testing.T) {
	cat := testCatalogue(t)

	_, err := OpenForEdit(catalogue.KindEquipment, 0, nil, cat)
	assert.ErrorIs(t, err, ErrBadIndex)
}

func TestOptionsExcludeAlreadySelected(t *testing.T) {
	cat := testCatalogue(t)
	list := selection.List{
		{ID: "s1", CatalogueID: "e1", Label: "Poliguindaste", Quantity: 1, Status: selection.StatusAvailable},
	}

	s := OpenForCreate(catalogue.KindEquipment)
	opts := s.Options(cat, list)

	assert.Len(t, opts, 1)
	assert.Equal(t, "e2", opts[0].ID)
}

func TestOptionsKeepEntryUnderEdit(t *testing.T) {
	cat := testCatalogue(t)
	list := selection.List{
		{ID: "s1", CatalogueID: "e1", Label: "Poliguindaste", Quantity: 1, Status: selection.StatusAvailable},
		{ID: "s2", CatalogueID: "e2", Label: "Guindaste", Quantity: 1, Status: selection.StatusAvailable},
	}

	s, err := OpenForEdit(catalogue.KindEquipment, 0, list, cat)
	assert.NoError(t, err)

	opts := s.Options(cat, list)
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	// the edited entry stays visible, the other selected one does not
	assert.Equal(t, []string{"e1"}, ids)
}

func TestOptionsClosedEditor(t *testing.T) {
	cat := testCatalogue(t)
	assert.Nil(t, ClosedSession().Options(cat, nil))
}

var testNow = time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
