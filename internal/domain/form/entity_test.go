package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agendalog/internal/domain/catalogue"
	"agendalog/internal/domain/selection"
)

func TestNewFormDefaults(t *testing.T) {
	f, err := NewForm("sess-1", testNow)
	assert.NoError(t, err)

	assert.Equal(t, "sess-1", f.ID)
	assert.Empty(t, f.Equipment)
	assert.Empty(t, f.Containers)
	assert.Equal(t, EditorClosed, f.Editor.State)
	// delivery date starts at today's midnight
	assert.Equal(t, testNow.Year(), f.DeliveryDate.Year())
	assert.Equal(t, 0, f.DeliveryDate.Hour())
	assert.Equal(t, testNow.Add(DefaultFormTTL), f.ExpiresAt)

	_, err = NewForm("  ", testNow)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestCommitEditorCreatesEquipmentEntry(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindEquipment, testNow)
	assert.NoError(t, f.SelectEditorItem(mustByID(t, cat, "e1"), testNow))
	assert.NoError(t, f.SetEditorQuantityText("3", testNow))
	assert.NoError(t, f.CommitEditor(cat, testNow))

	assert.Equal(t, EditorClosed, f.Editor.State)
	assert.Len(t, f.Equipment, 1)

	e := f.Equipment[0]
	assert.Equal(t, "Poliguindaste", e.Label)
	assert.Equal(t, 3, e.Quantity)
	assert.Equal(t, selection.StatusAvailable, e.Status)
	assert.Equal(t, "e1", e.CatalogueID)
	assert.NotEmpty(t, e.ID)
}

func TestCommitEditorEditKeepsEntryID(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindContainer, testNow)
	assert.NoError(t, f.SelectEditorItem(mustByID(t, cat, "c2"), testNow))
	assert.NoError(t, f.SetEditorQuantityText("2", testNow))
	assert.NoError(t, f.CommitEditor(cat, testNow))
	origID := f.Containers[0].ID

	assert.NoError(t, f.OpenEditorForEdit(catalogue.KindContainer, 0, cat, testNow))
	assert.NoError(t, f.SetEditorQuantityText("5", testNow))
	assert.NoError(t, f.CommitEditor(cat, testNow))

	assert.Len(t, f.Containers, 1, "edit must not create a new entry")
	assert.Equal(t, origID, f.Containers[0].ID)
	assert.Equal(t, 5, f.Containers[0].Quantity)
}

func TestCommitEditorRejectsMissingChoice(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindEquipment, testNow)
	err := f.CommitEditor(cat, testNow)

	assert.ErrorIs(t, err, ErrNoItemChosen)
	assert.Equal(t, EditorCreating, f.Editor.State, "editor stays open")
	assert.Empty(t, f.Equipment)
}

func TestCommitEditorRejectsEmptyQuantityText(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindEquipment, testNow)
	assert.NoError(t, f.SelectEditorItem(mustByID(t, cat, "e1"), testNow))
	assert.NoError(t, f.SetEditorQuantityText("", testNow))

	err := f.CommitEditor(cat, testNow)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, EditorCreating, f.Editor.State, "editor stays open")
	assert.Empty(t, f.Equipment, "no list mutation on rejected commit")
}

func TestDismissEditorLeavesListsAlone(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindEquipment, testNow)
	assert.NoError(t, f.SelectEditorItem(mustByID(t, cat, "e1"), testNow))
	f.DismissEditor(testNow)

	assert.Equal(t, EditorClosed, f.Editor.State)
	assert.Empty(t, f.Equipment)
}

func TestRemoveEntry(t *testing.T) {
	cat := testCatalogue(t)
	f, _ := NewForm("sess-1", testNow)

	f.OpenEditorForCreate(catalogue.KindEquipment, testNow)
	assert.NoError(t, f.SelectEditorItem(mustByID(t, cat, "e2"), testNow))
	assert.NoError(t, f.CommitEditor(cat, testNow))
	id := f.Equipment[0].ID

	f.RemoveEntry(catalogue.KindEquipment, id, testNow)
	assert.Empty(t, f.Equipment)

	// second removal is a no-op
	f.RemoveEntry(catalogue.KindEquipment, id, testNow)
	assert.Empty(t, f.Equipment)
}

func mustByID(t *testing.T, cat *catalogue.Catalogue, id string) catalogue.Entry {
	t.Helper()
	e, err := cat.ByID(id)
	assert.NoError(t, err)
	return e
}
