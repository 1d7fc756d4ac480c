// internal/domain/form/editor.go
package form

import (
	"errors"
	"strconv"
	"strings"

	"agendalog/internal/domain/catalogue"
	"agendalog/internal/domain/selection"
)

var (
	ErrEditorClosed    = errors.New("form: editor is not open")
	ErrNoItemChosen    = errors.New("form: no catalogue item chosen")
	ErrInvalidQuantity = errors.New("form: quantity must be a positive integer")
	ErrBadIndex        = errors.New("form: editing index out of range")
)

// EditorState is the lifecycle position of the selection editor.
type EditorState string

const (
	EditorClosed   EditorState = "closed"
	EditorCreating EditorState = "creating"
	EditorEditing  EditorState = "editing"
)

// Session is the transient modal state for adding or editing one selection
// entry. The state/kind/index triple is a tagged variant: Index is meaningful
// only while State == EditorEditing, Kind only while the editor is open.
type Session struct {
	State        EditorState    `json:"state" firestore:"state"`
	Kind         catalogue.Kind `json:"kind,omitempty" firestore:"kind,omitempty"`
	Index        int            `json:"index" firestore:"index"`
	ChosenID     string         `json:"chosenId,omitempty" firestore:"chosenId,omitempty"`
	QuantityText string         `json:"quantityText" firestore:"quantityText"`
}

// ClosedSession returns the editor at rest.
func ClosedSession() Session {
	return Session{State: EditorClosed}
}

// OpenForCreate enters create mode with no chosen item and quantity "1".
func OpenForCreate(kind catalogue.Kind) Session {
	return Session{
		State:        EditorCreating,
		Kind:         kind,
		ChosenID:     "",
		QuantityText: "1",
	}
}

// OpenForEdit enters edit mode for list[index], pre-selecting the catalogue
// entry and pre-filling the quantity buffer from the existing entry.
//
// Resolution prefers the stored catalogue id; entries written before the id
// was recorded fall back to re-resolving by denormalized label (and capacity
// for containers).
func OpenForEdit(kind catalogue.Kind, index int, list selection.List, cat *catalogue.Catalogue) (Session, error) {
	if index < 0 || index >= len(list) {
		return ClosedSession(), ErrBadIndex
	}
	existing := list[index]

	chosenID := ""
	if existing.CatalogueID != "" {
		if e, err := cat.ByID(existing.CatalogueID); err == nil {
			chosenID = e.ID
		}
	}
	if chosenID == "" {
		if e, err := cat.ByLabelCapacity(kind, existing.Label, existing.Capacity); err == nil {
			chosenID = e.ID
		}
	}

	return Session{
		State:        EditorEditing,
		Kind:         kind,
		Index:        index,
		ChosenID:     chosenID,
		QuantityText: strconv.Itoa(existing.Quantity),
	}, nil
}

// SelectItem records the chosen catalogue entry.
func (s Session) SelectItem(entry catalogue.Entry) (Session, error) {
	if s.State == EditorClosed {
		return s, ErrEditorClosed
	}
	s.ChosenID = entry.ID
	return s, nil
}

// SetQuantityText stores the quantity buffer. Non-digit characters are
// stripped rather than rejected, and the buffer may be left empty while the
// user is still typing.
func (s Session) SetQuantityText(text string) (Session, error) {
	if s.State == EditorClosed {
		return s, ErrEditorClosed
	}
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s.QuantityText = b.String()
	return s, nil
}

// Quantity parses the buffer. A blank buffer or a parsed value below 1 is
// invalid.
func (s Session) Quantity() (int, error) {
	t := strings.TrimSpace(s.QuantityText)
	if t == "" {
		return 0, ErrInvalidQuantity
	}
	n, err := strconv.Atoi(t)
	if err != nil || n < 1 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// Options is the catalogue slice offered while the editor is open: every
// entry of the active kind except those already selected in the target list.
// The entry currently being edited stays visible so it can be re-saved.
func (s Session) Options(cat *catalogue.Catalogue, list selection.List) []catalogue.Entry {
	if s.State == EditorClosed {
		return nil
	}

	editedID := ""
	if s.State == EditorEditing && s.Index >= 0 && s.Index < len(list) {
		editedID = resolveCatalogueID(s.Kind, list[s.Index], cat)
	}

	taken := make(map[string]bool, len(list))
	for _, e := range list {
		if id := resolveCatalogueID(s.Kind, e, cat); id != "" {
			taken[id] = true
		}
	}

	all := cat.OfKind(s.Kind)
	out := make([]catalogue.Entry, 0, len(all))
	for _, e := range all {
		if taken[e.ID] && e.ID != editedID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func resolveCatalogueID(kind catalogue.Kind, e selection.Entry, cat *catalogue.Catalogue) string {
	if e.CatalogueID != "" {
		return e.CatalogueID
	}
	if found, err := cat.ByLabelCapacity(kind, e.Label, e.Capacity); err == nil {
		return found.ID
	}
	return ""
}
