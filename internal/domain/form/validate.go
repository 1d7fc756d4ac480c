// internal/domain/form/validate.go
package form

import (
	"fmt"
	"strings"
	"time"
)

// Validate inspects the whole draft and returns every violated rule as a
// client-facing message, in a fixed order. Rules are evaluated independently
// (no short-circuit) so the user sees all problems at once. Submission must be
// blocked whenever the result is non-empty.
func (f *Form) Validate(now time.Time) []string {
	var errs []string

	if strings.TrimSpace(f.ClientID) == "" {
		errs = append(errs, "Selecione um cliente.")
	}
	if strings.TrimSpace(f.Address) == "" {
		errs = append(errs, "Informe o endereço de entrega.")
	}
	if len(f.Equipment) == 0 && len(f.Containers) == 0 {
		errs = append(errs, "Adicione ao menos um equipamento ou uma caçamba.")
	}
	for _, e := range f.Equipment {
		if e.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("Quantidade inválida para o equipamento %s.", e.Label))
		}
	}
	for _, e := range f.Containers {
		if e.Quantity < 1 {
			if strings.TrimSpace(e.Capacity) != "" {
				errs = append(errs, fmt.Sprintf("Quantidade inválida para a caçamba %s (%s).", e.Label, e.Capacity))
			} else {
				errs = append(errs, fmt.Sprintf("Quantidade inválida para a caçamba %s.", e.Label))
			}
		}
	}
	// Both sides normalized to midnight: time of day never influences the rule.
	if f.DeliveryDate.IsZero() || midnight(f.DeliveryDate).Before(midnight(now)) {
		errs = append(errs, "A data de entrega não pode ser anterior a hoje.")
	}

	return errs
}
