// internal/domain/lookup/port.go
package lookup

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidTaxID = errors.New("lookup: invalid tax id")
	ErrNotFound     = errors.New("lookup: address not found")
)

// Address is the structured result of a tax-id lookup. The scheduling core
// only ever consumes Formatted(); the structure exists for the adapter.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Formatted renders the address as one display line, skipping blank parts.
func (a Address) Formatted() string {
	var parts []string
	street := strings.TrimSpace(a.Street)
	if n := strings.TrimSpace(a.Number); n != "" && street != "" {
		street = street + ", " + n
	}
	for _, p := range []string{street, a.Complement, a.District, a.City, a.State, a.PostalCode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " - ")
}

// AddressLookup resolves a structured address from a client tax id (CNPJ).
type AddressLookup interface {
	Lookup(ctx context.Context, taxID string) (*Address, error)
}

// NormalizeTaxID strips everything but digits and checks the CNPJ length.
func NormalizeTaxID(taxID string) (string, error) {
	var b strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 14 {
		return "", ErrInvalidTaxID
	}
	return digits, nil
}
