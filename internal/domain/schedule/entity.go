// internal/domain/schedule/entity.go
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agendalog/internal/domain/form"
	"agendalog/internal/domain/selection"
)

var (
	ErrInvalidRecord = errors.New("schedule: invalid record")
	ErrFormInvalid   = errors.New("schedule: form failed validation")
)

// StatusScheduled is the status a record is born with.
const StatusScheduled = "agendado"

// Record is a submitted scheduling, as persisted to the remote store.
// DeliveryDate is serialized as an ISO 8601 calendar date.
type Record struct {
	ID           string         `json:"id"`
	ClientID     string         `json:"clientId"`
	ClientName   string         `json:"clientName"`
	DeliveryDate string         `json:"deliveryDate"`
	Equipment    selection.List `json:"equipment"`
	Containers   selection.List `json:"containers"`
	Address      string         `json:"address"`
	Observations string         `json:"observations"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	CreatedBy    string         `json:"createdBy"`
}

// NewRecord builds a record from a validated draft. The caller is responsible
// for running the validator first; a draft that still has violations is
// rejected here as a safety net.
func NewRecord(id string, f *form.Form, createdBy string, now time.Time) (*Record, error) {
	if f == nil || strings.TrimSpace(id) == "" {
		return nil, ErrInvalidRecord
	}
	if errs := f.Validate(now); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrFormInvalid, strings.Join(errs, " "))
	}
	return &Record{
		ID:           strings.TrimSpace(id),
		ClientID:     f.ClientID,
		ClientName:   f.ClientName,
		DeliveryDate: f.DeliveryDate.Format("2006-01-02"),
		Equipment:    f.Equipment,
		Containers:   f.Containers,
		Address:      strings.TrimSpace(f.Address),
		Observations: f.Observations,
		Status:       StatusScheduled,
		CreatedAt:    now,
		CreatedBy:    strings.TrimSpace(createdBy),
	}, nil
}

// StatusUpdates returns the path→value batch marking every selected entry as
// in service. The persistence adapter must apply the whole map as one
// multi-path update.
func (r *Record) StatusUpdates() map[string]any {
	out := make(map[string]any, len(r.Equipment)+len(r.Containers))
	for _, e := range r.Equipment {
		out[fmt.Sprintf("schedules/%s/equipment/%s/status", r.ID, e.ID)] = string(selection.StatusInUse)
	}
	for _, e := range r.Containers {
		out[fmt.Sprintf("schedules/%s/containers/%s/status", r.ID, e.ID)] = string(selection.StatusInUse)
	}
	return out
}
