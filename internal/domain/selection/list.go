// internal/domain/selection/list.go
package selection

import (
	"strings"
	"time"
)

// List is an ordered collection of selection entries.
// Insertion order is display order.
//
// All operations return a new slice and never mutate the input, so every
// observer (validator, responder) sees a consistent snapshot.
type List []Entry

// Add appends entry with a freshly generated id. A zero quantity defaults to 1.
// Blank labels are rejected; the list is returned unchanged with the error.
func Add(list List, entry Entry, now time.Time) (List, error) {
	entry.ID = NewEntryID(now)
	if entry.Quantity == 0 {
		entry.Quantity = 1
	}
	if entry.Status == "" {
		entry.Status = StatusAvailable
	}
	if err := entry.validate(); err != nil {
		return list, err
	}
	out := make(List, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, entry)
	return out, nil
}

// Remove drops the entry with the given id. Removing an absent id, or removing
// from an empty list, is a no-op rather than an error.
func Remove(list List, id string) List {
	idx := indexOf(list, id)
	if idx < 0 {
		return list
	}
	out := make(List, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out
}

// UpdateQuantity replaces the quantity of the matching entry. When the id is
// absent the list is returned unchanged; callers are expected to know the id
// exists.
func UpdateQuantity(list List, id string, quantity int) List {
	idx := indexOf(list, id)
	if idx < 0 {
		return list
	}
	out := make(List, len(list))
	copy(out, list)
	out[idx].Quantity = quantity
	return out
}

// ByID returns the entry with the given id and whether it was found.
func ByID(list List, id string) (Entry, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return Entry{}, false
	}
	return list[idx], true
}

func indexOf(list List, id string) int {
	want := strings.TrimSpace(id)
	if want == "" {
		return -1
	}
	for i := range list {
		if list[i].ID == want {
			return i
		}
	}
	return -1
}
