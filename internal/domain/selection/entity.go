// internal/domain/selection/entity.go
package selection

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidEntry = errors.New("selection: invalid entry")
)

// Status tracks whether the scheduled item has been put into service.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInUse     Status = "in_use"
)

// Entry is one selected equipment or container line on a scheduling form.
//
// CatalogueID references the catalogue entry the selection came from; Label
// (and Capacity for containers) are denormalized for display and kept on the
// entry so older records without a CatalogueID can still be resolved.
type Entry struct {
	ID          string `json:"id" firestore:"id"`
	CatalogueID string `json:"catalogueId,omitempty" firestore:"catalogueId,omitempty"`
	Label       string `json:"label" firestore:"label"`
	Capacity    string `json:"capacity,omitempty" firestore:"capacity,omitempty"`
	Quantity    int    `json:"quantity" firestore:"quantity"`
	Status      Status `json:"status" firestore:"status"`
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrInvalidEntry
	}
	if strings.TrimSpace(e.Label) == "" {
		return ErrInvalidEntry
	}
	if e.Quantity < 1 {
		return ErrInvalidEntry
	}
	return nil
}

// NewEntryID generates a list-unique id from a high-resolution timestamp plus
// a random suffix. Collisions are treated as negligible, not defended against.
func NewEntryID(now time.Time) string {
	return fmt.Sprintf("%d-%04d", now.UnixNano(), rand.Intn(10000))
}
