// internal/application/usecase/schedule_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	formdom "agendalog/internal/domain/form"
	"agendalog/internal/domain/notify"
	scheduledom "agendalog/internal/domain/schedule"
)

var (
	ErrScheduleInvalidArgument = errors.New("schedule_usecase: invalid argument")
	ErrScheduleFormNotFound    = errors.New("schedule_usecase: form not found")
)

// ScheduleUsecase turns a validated draft into a persisted schedule record.
type ScheduleUsecase struct {
	forms     formdom.Repository
	schedules scheduledom.Repository
	notifier  notify.Notifier
	clock     Clock
	newID     func() string
}

func NewScheduleUsecase(forms formdom.Repository, schedules scheduledom.Repository, notifier notify.Notifier) *ScheduleUsecase {
	return &ScheduleUsecase{
		forms:     forms,
		schedules: schedules,
		notifier:  notifier,
		clock:     systemClock{},
		newID:     uuid.NewString,
	}
}

// NewScheduleUsecaseWithClock is useful for tests; newID may be nil.
func NewScheduleUsecaseWithClock(forms formdom.Repository, schedules scheduledom.Repository, notifier notify.Notifier, clock Clock, newID func() string) *ScheduleUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &ScheduleUsecase{forms: forms, schedules: schedules, notifier: notifier, clock: clock, newID: newID}
}

// Submit re-validates the draft and, when clean, persists the record, applies
// the status batch as one multi-path update and deletes the draft.
//
// Returns (nil, errs, nil) when validation blocks submission; the draft is
// left intact so the user can correct it and retry. The notification at the
// end is best-effort: a delivery failure is logged, never propagated.
func (uc *ScheduleUsecase) Submit(ctx context.Context, sessionID, createdBy string) (*scheduledom.Record, []string, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, nil, ErrScheduleInvalidArgument
	}

	f, err := uc.forms.GetByID(ctx, sid)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, ErrScheduleFormNotFound
	}

	now := uc.clock.Now()

	if errs := f.Validate(now); len(errs) > 0 {
		return nil, errs, nil
	}

	rec, err := scheduledom.NewRecord(uc.newID(), f, createdBy, now)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.schedules.Create(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("schedule_usecase: create record: %w", err)
	}
	if err := uc.schedules.ApplyStatusUpdates(ctx, rec.StatusUpdates()); err != nil {
		return nil, nil, fmt.Errorf("schedule_usecase: status updates: %w", err)
	}
	if err := uc.forms.DeleteByID(ctx, sid); err != nil {
		// The record is already saved; losing the draft cleanup is tolerable.
		log.Printf("[schedule_usecase] WARN: delete draft %s failed: %v", sid, err)
	}

	if uc.notifier != nil {
		n := notify.Notification{
			Severity: notify.SeverityInfo,
			Title:    "Agendamento criado",
			Message:  fmt.Sprintf("Agendamento para %s em %s.", rec.ClientName, rec.DeliveryDate),
			Duration: 5 * time.Second,
		}
		if err := uc.notifier.Notify(ctx, n); err != nil {
			log.Printf("[schedule_usecase] WARN: notify failed: %v", err)
		}
	}

	return rec, nil, nil
}
