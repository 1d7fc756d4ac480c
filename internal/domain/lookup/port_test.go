package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"punctuated CNPJ", "12.345.678/0001-95", "12345678000195", false},
		{"digits only", "12345678000195", "12345678000195", false},
		{"too short", "123", "", true},
		{"too long", "123456780001955", "", true},
		{"blank", "  ", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTaxID(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaxID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressFormatted(t *testing.T) {
	a := Address{
		Street:     "Rua das Flores",
		Number:     "100",
		District:   "Centro",
		City:       "Curitiba",
		State:      "PR",
		PostalCode: "80010-000",
	}
	assert.Equal(t, "Rua das Flores, 100 - Centro - Curitiba - PR - 80010-000", a.Formatted())

	// blank parts are skipped, not rendered as empty separators
	sparse := Address{City: "Curitiba", State: "PR"}
	assert.Equal(t, "Curitiba - PR", sparse.Formatted())

	assert.Equal(t, "", Address{}.Formatted())
}
