// internal/domain/catalogue/catalogue.go
package catalogue

import "strings"

// Catalogue is a read-only lookup over the offered entries.
// Built once at startup and shared by reference; never mutated afterwards.
type Catalogue struct {
	entries []Entry
	byID    map[string]int
}

// New validates the entries and builds the lookup indexes.
func New(entries []Entry) (*Catalogue, error) {
	c := &Catalogue{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, ErrDuplicateID
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// ByID returns the entry with the given id.
func (c *Catalogue) ByID(id string) (Entry, error) {
	if c == nil {
		return Entry{}, ErrEntryNotFound
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return c.entries[idx], nil
}

// ByLabel resolves an entry from its display label, scoped to one kind.
// Labels are compared after trimming. Within a kind the first declared match
// wins; collisions across kinds are therefore harmless.
func (c *Catalogue) ByLabel(kind Kind, label string) (Entry, error) {
	if c == nil {
		return Entry{}, ErrEntryNotFound
	}
	want := strings.TrimSpace(label)
	if want == "" {
		return Entry{}, ErrInvalidLabel
	}
	for _, e := range c.entries {
		if e.Kind == kind && strings.TrimSpace(e.Label) == want {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

// ByLabelCapacity resolves a container-style entry from its label plus capacity.
// When capacity is blank, or no entry carries the given capacity, it degrades to
// a plain label lookup.
func (c *Catalogue) ByLabelCapacity(kind Kind, label, capacity string) (Entry, error) {
	if c == nil {
		return Entry{}, ErrEntryNotFound
	}
	want := strings.TrimSpace(label)
	wantCap := strings.TrimSpace(capacity)
	if want == "" {
		return Entry{}, ErrInvalidLabel
	}
	if wantCap != "" {
		for _, e := range c.entries {
			if e.Kind == kind && strings.TrimSpace(e.Label) == want && strings.TrimSpace(e.Capacity) == wantCap {
				return e, nil
			}
		}
	}
	return c.ByLabel(kind, want)
}

// OfKind returns the entries of one kind in declaration order.
// The returned slice is a copy; callers may not reach the internal state.
func (c *Catalogue) OfKind(kind Kind) []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Len reports the total number of entries across both kinds.
func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
