// internal/domain/catalogue/entity.go
package catalogue

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEntry  = errors.New("catalogue: invalid entry")
	ErrDuplicateID   = errors.New("catalogue: duplicate entry id")
	ErrEntryNotFound = errors.New("catalogue: entry not found")
	ErrInvalidKind   = errors.New("catalogue: invalid kind")
	ErrInvalidLabel  = errors.New("catalogue: invalid label")
)

// Kind distinguishes the two selectable catalogues.
type Kind string

const (
	KindEquipment Kind = "equipment"
	KindContainer Kind = "container"
)

func (k Kind) Valid() bool {
	return k == KindEquipment || k == KindContainer
}

// Entry is one offered equipment or container type.
// Entries are immutable after catalogue construction.
type Entry struct {
	ID       string `json:"id" firestore:"id"`
	Kind     Kind   `json:"kind" firestore:"kind"`
	Label    string `json:"label" firestore:"label"`
	Icon     string `json:"icon" firestore:"icon"`
	Capacity string `json:"capacity,omitempty" firestore:"capacity,omitempty"`
	Residue  string `json:"residue,omitempty" firestore:"residue,omitempty"`
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrInvalidEntry
	}
	if !e.Kind.Valid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(e.Label) == "" {
		return ErrInvalidLabel
	}
	return nil
}
