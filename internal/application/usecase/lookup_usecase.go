// internal/application/usecase/lookup_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"agendalog/internal/domain/lookup"
	"agendalog/internal/domain/notify"
)

var (
	ErrLookupUnavailable = errors.New("lookup_usecase: address lookup unavailable")
)

// LookupUsecase resolves a delivery address from a client tax id. The caller
// only receives the formatted display line; structured fields stay inside the
// adapter boundary.
type LookupUsecase struct {
	lookup   lookup.AddressLookup
	notifier notify.Notifier
}

func NewLookupUsecase(l lookup.AddressLookup, notifier notify.Notifier) *LookupUsecase {
	return &LookupUsecase{lookup: l, notifier: notifier}
}

// Lookup normalizes the tax id and resolves the address. Collaborator
// failures collapse into one generic error so the form stays correctable; a
// warning notification is fired best-effort.
func (uc *LookupUsecase) Lookup(ctx context.Context, taxID string) (string, error) {
	digits, err := lookup.NormalizeTaxID(taxID)
	if err != nil {
		return "", err
	}
	if uc.lookup == nil {
		return "", ErrLookupUnavailable
	}

	addr, err := uc.lookup.Lookup(ctx, digits)
	if err != nil {
		log.Printf("[lookup_usecase] lookup failed taxId=%s: %v", digits, err)
		uc.warn(ctx, "Não foi possível buscar o endereço pelo CNPJ.")
		return "", fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}
	return addr.Formatted(), nil
}

func (uc *LookupUsecase) warn(ctx context.Context, msg string) {
	if uc.notifier == nil {
		return
	}
	n := notify.Notification{
		Severity: notify.SeverityWarning,
		Title:    "Busca de endereço",
		Message:  msg,
		Duration: 5 * time.Second,
	}
	if err := uc.notifier.Notify(ctx, n); err != nil {
		log.Printf("[lookup_usecase] WARN: notify failed: %v", err)
	}
}
