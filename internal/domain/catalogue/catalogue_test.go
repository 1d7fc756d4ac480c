package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "e1", Kind: KindEquipment, Label: "Poliguindaste", Icon: "truck"},
		{ID: "e2", Kind: KindEquipment, Label: "Guindaste", Icon: "crane"},
		{ID: "c1", Kind: KindContainer, Label: "Caçamba", Icon: "dumpster", Capacity: "3m³"},
		{ID: "c2", Kind: KindContainer, Label: "Caçamba", Icon: "dumpster", Capacity: "5m³"},
		// label collision across kinds is allowed; lookups are kind-scoped
		{ID: "c3", Kind: KindContainer, Label: "Poliguindaste", Icon: "dumpster", Capacity: "7m³"},
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"duplicate id", []Entry{
			{ID: "x", Kind: KindEquipment, Label: "A"},
			{ID: "x", Kind: KindEquipment, Label: "B"},
		}, ErrDuplicateID},
		{"blank id", []Entry{{Kind: KindEquipment, Label: "A"}}, ErrInvalidEntry},
		{"bad kind", []Entry{{ID: "x", Kind: Kind("other"), Label: "A"}}, ErrInvalidKind},
		{"blank label", []Entry{{ID: "x", Kind: KindContainer}}, ErrInvalidLabel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.entries)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestByID(t *testing.T) {
	c, err := New(testEntries())
	assert.NoError(t, err)

	e, err := c.ByID("c2")
	assert.NoError(t, err)
	assert.Equal(t, "5m³", e.Capacity)

	_, err = c.ByID("missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestByLabelIsKindScoped(t *testing.T) {
	c, _ := New(testEntries())

	e, err := c.ByLabel(KindEquipment, "Poliguindaste")
	assert.NoError(t, err)
	assert.Equal(t, "e1", e.ID)

	// same label, other kind resolves to the container entry
	e, err = c.ByLabel(KindContainer, "Poliguindaste")
	assert.NoError(t, err)
	assert.Equal(t, "c3", e.ID)

	// intra-kind duplicate: first declared wins
	e, err = c.ByLabel(KindContainer, "Caçamba")
	assert.NoError(t, err)
	assert.Equal(t, "c1", e.ID)
}

func TestByLabelCapacity(t *testing.T) {
	c, _ := New(testEntries())

	e, err := c.ByLabelCapacity(KindContainer, "Caçamba", "5m³")
	assert.NoError(t, err)
	assert.Equal(t, "c2", e.ID)

	// unknown capacity degrades to label-only lookup
	e, err = c.ByLabelCapacity(KindContainer, "Caçamba", "99m³")
	assert.NoError(t, err)
	assert.Equal(t, "c1", e.ID)
}

func TestOfKindPreservesOrder(t *testing.T) {
	c, _ := New(testEntries())

	eq := c.OfKind(KindEquipment)
	assert.Equal(t, []string{"e1", "e2"}, []string{eq[0].ID, eq[1].ID})

	ct := c.OfKind(KindContainer)
	assert.Len(t, ct, 3)
}

func TestDefaultCatalogueIsValid(t *testing.T) {
	c := Default()
	assert.NotZero(t, c.Len())
	assert.NotEmpty(t, c.OfKind(KindEquipment))
	assert.NotEmpty(t, c.OfKind(KindContainer))
}
