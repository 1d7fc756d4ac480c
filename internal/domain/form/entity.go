// internal/domain/form/entity.go
package form

import (
	"errors"
	"strings"
	"time"

	"agendalog/internal/domain/catalogue"
	"agendalog/internal/domain/selection"
)

var (
	ErrInvalidForm = errors.New("form: invalid")
)

// DefaultFormTTL is the inactivity window after which a draft becomes eligible
// for auto deletion (Firestore TTL should be configured on expiresAt).
const DefaultFormTTL = 7 * 24 * time.Hour

// Form is one scheduling form session ("draft").
//   - docId = session id (Firestore)
//   - owned exclusively by the mobile session that created it
//   - ExpiresAt refreshed on each mutation
type Form struct {
	// ID is the Firestore docId (= session id).
	ID string `json:"id" firestore:"id"`

	ClientID     string    `json:"clientId" firestore:"clientId"`
	ClientName   string    `json:"clientName" firestore:"clientName"`
	Address      string    `json:"address" firestore:"address"`
	DeliveryDate time.Time `json:"deliveryDate" firestore:"deliveryDate"`
	Observations string    `json:"observations" firestore:"observations"`

	Equipment  selection.List `json:"equipment" firestore:"equipment"`
	Containers selection.List `json:"containers" firestore:"containers"`

	Editor Session `json:"editor" firestore:"editor"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewForm creates an empty draft. The delivery date starts at today so a fresh
// form never trips the past-date rule.
func NewForm(id string, now time.Time) (*Form, error) {
	docID := strings.TrimSpace(id)
	if docID == "" {
		return nil, ErrInvalidForm
	}
	f := &Form{
		ID:           docID,
		DeliveryDate: midnight(now),
		Equipment:    selection.List{},
		Containers:   selection.List{},
		Editor:       ClosedSession(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(DefaultFormTTL),
	}
	return f, nil
}

// SetClient records the selected client.
func (f *Form) SetClient(id, name string, now time.Time) {
	f.ClientID = strings.TrimSpace(id)
	f.ClientName = strings.TrimSpace(name)
	f.touch(now)
}

// SetAddress records the delivery address (free text, possibly filled from the
// tax-id lookup).
func (f *Form) SetAddress(address string, now time.Time) {
	f.Address = address
	f.touch(now)
}

// SetDeliveryDate records the delivery date, normalized to midnight.
func (f *Form) SetDeliveryDate(d time.Time, now time.Time) {
	f.DeliveryDate = midnight(d)
	f.touch(now)
}

// SetObservations records free-text observations.
func (f *Form) SetObservations(obs string, now time.Time) {
	f.Observations = obs
	f.touch(now)
}

// List returns the selection list for a kind. Equipment is the fallback so the
// method is total.
func (f *Form) List(kind catalogue.Kind) selection.List {
	if kind == catalogue.KindContainer {
		return f.Containers
	}
	return f.Equipment
}

func (f *Form) setList(kind catalogue.Kind, l selection.List) {
	if kind == catalogue.KindContainer {
		f.Containers = l
		return
	}
	f.Equipment = l
}

// RemoveEntry drops an entry from one list. Absent ids are a no-op.
func (f *Form) RemoveEntry(kind catalogue.Kind, entryID string, now time.Time) {
	f.setList(kind, selection.Remove(f.List(kind), entryID))
	f.touch(now)
}

// OpenEditorForCreate opens the selection editor in create mode.
func (f *Form) OpenEditorForCreate(kind catalogue.Kind, now time.Time) {
	f.Editor = OpenForCreate(kind)
	f.touch(now)
}

// OpenEditorForEdit opens the editor on list[index].
func (f *Form) OpenEditorForEdit(kind catalogue.Kind, index int, cat *catalogue.Catalogue, now time.Time) error {
	s, err := OpenForEdit(kind, index, f.List(kind), cat)
	if err != nil {
		return err
	}
	f.Editor = s
	f.touch(now)
	return nil
}

// SelectEditorItem records the chosen catalogue entry on the open editor.
func (f *Form) SelectEditorItem(entry catalogue.Entry, now time.Time) error {
	s, err := f.Editor.SelectItem(entry)
	if err != nil {
		return err
	}
	f.Editor = s
	f.touch(now)
	return nil
}

// SetEditorQuantityText updates the editor quantity buffer.
func (f *Form) SetEditorQuantityText(text string, now time.Time) error {
	s, err := f.Editor.SetQuantityText(text)
	if err != nil {
		return err
	}
	f.Editor = s
	f.touch(now)
	return nil
}

// CommitEditor validates the open editor and applies it to the target list.
//
// Create mode appends a new entry built from the chosen catalogue item; edit
// mode only updates the quantity of the original entry (same id, no new entry).
// On success the editor closes. On a validation failure the editor stays open
// and no list is touched.
func (f *Form) CommitEditor(cat *catalogue.Catalogue, now time.Time) error {
	s := f.Editor
	if s.State == EditorClosed {
		return ErrEditorClosed
	}

	if strings.TrimSpace(s.ChosenID) == "" {
		return ErrNoItemChosen
	}
	chosen, err := cat.ByID(s.ChosenID)
	if err != nil {
		return ErrNoItemChosen
	}
	qty, err := s.Quantity()
	if err != nil {
		return err
	}

	list := f.List(s.Kind)
	switch s.State {
	case EditorEditing:
		if s.Index < 0 || s.Index >= len(list) {
			return ErrBadIndex
		}
		list = selection.UpdateQuantity(list, list[s.Index].ID, qty)
	default:
		entry := selection.Entry{
			CatalogueID: chosen.ID,
			Label:       chosen.Label,
			Capacity:    chosen.Capacity,
			Quantity:    qty,
			Status:      selection.StatusAvailable,
		}
		list, err = selection.Add(list, entry, now)
		if err != nil {
			return err
		}
	}

	f.setList(s.Kind, list)
	f.Editor = ClosedSession()
	f.touch(now)
	return nil
}

// DismissEditor discards the editor session without touching any list.
func (f *Form) DismissEditor(now time.Time) {
	f.Editor = ClosedSession()
	f.touch(now)
}

// EditorOptions is the filtered catalogue offered by the open editor.
func (f *Form) EditorOptions(cat *catalogue.Catalogue) []catalogue.Entry {
	return f.Editor.Options(cat, f.List(f.Editor.Kind))
}

func (f *Form) touch(now time.Time) {
	f.UpdatedAt = now
	f.ExpiresAt = now.Add(DefaultFormTTL)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
