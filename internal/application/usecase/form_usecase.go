// internal/application/usecase/form_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agendalog/internal/domain/catalogue"
	formdom "agendalog/internal/domain/form"
)

var (
	ErrFormInvalidArgument = errors.New("form_usecase: invalid argument")
	ErrFormNotFound        = errors.New("form_usecase: not found")
)

// FormUsecase coordinates draft form sessions: field updates, selection list
// bookkeeping and the editor lifecycle. Every mutation is persisted before the
// updated draft is returned, so a reconnecting client always sees its last
// state.
type FormUsecase struct {
	repo  formdom.Repository
	cat   *catalogue.Catalogue
	clock Clock
}

func NewFormUsecase(repo formdom.Repository, cat *catalogue.Catalogue) *FormUsecase {
	return &FormUsecase{repo: repo, cat: cat, clock: systemClock{}}
}

// NewFormUsecaseWithClock is useful for tests.
func NewFormUsecaseWithClock(repo formdom.Repository, cat *catalogue.Catalogue, clock Clock) *FormUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &FormUsecase{repo: repo, cat: cat, clock: clock}
}

// GetOrCreate returns the draft for the session; if absent, creates an empty
// one and persists it.
func (uc *FormUsecase) GetOrCreate(ctx context.Context, sessionID string) (*formdom.Form, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrFormInvalidArgument
	}

	f, err := uc.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if f != nil {
		return f, nil
	}

	now := uc.clock.Now()
	f, err = formdom.NewForm(sid, now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// SetClient records the selected client on the draft.
func (uc *FormUsecase) SetClient(ctx context.Context, sessionID, clientID, clientName string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.SetClient(clientID, clientName, now)
		return nil
	})
}

// SetAddress records the delivery address.
func (uc *FormUsecase) SetAddress(ctx context.Context, sessionID, address string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.SetAddress(address, now)
		return nil
	})
}

// SetDeliveryDate records the delivery date.
func (uc *FormUsecase) SetDeliveryDate(ctx context.Context, sessionID string, d time.Time) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.SetDeliveryDate(d, now)
		return nil
	})
}

// SetObservations records free-text observations.
func (uc *FormUsecase) SetObservations(ctx context.Context, sessionID, obs string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.SetObservations(obs, now)
		return nil
	})
}

// RemoveEntry removes one selection entry. Absent ids are a no-op.
func (uc *FormUsecase) RemoveEntry(ctx context.Context, sessionID string, kind catalogue.Kind, entryID string) (*formdom.Form, error) {
	if !kind.Valid() {
		return nil, ErrFormInvalidArgument
	}
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.RemoveEntry(kind, entryID, now)
		return nil
	})
}

// OpenEditorForCreate opens the selection editor in create mode.
func (uc *FormUsecase) OpenEditorForCreate(ctx context.Context, sessionID string, kind catalogue.Kind) (*formdom.Form, error) {
	if !kind.Valid() {
		return nil, ErrFormInvalidArgument
	}
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.OpenEditorForCreate(kind, now)
		return nil
	})
}

// OpenEditorForEdit opens the editor on an existing entry.
func (uc *FormUsecase) OpenEditorForEdit(ctx context.Context, sessionID string, kind catalogue.Kind, index int) (*formdom.Form, error) {
	if !kind.Valid() {
		return nil, ErrFormInvalidArgument
	}
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		return f.OpenEditorForEdit(kind, index, uc.cat, now)
	})
}

// SelectEditorItem records the chosen catalogue entry.
func (uc *FormUsecase) SelectEditorItem(ctx context.Context, sessionID, catalogueID string) (*formdom.Form, error) {
	entry, err := uc.cat.ByID(catalogueID)
	if err != nil {
		return nil, ErrFormInvalidArgument
	}
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		return f.SelectEditorItem(entry, now)
	})
}

// SetEditorQuantityText updates the editor quantity buffer.
func (uc *FormUsecase) SetEditorQuantityText(ctx context.Context, sessionID, text string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		return f.SetEditorQuantityText(text, now)
	})
}

// CommitEditor applies the open editor to its target list and closes it.
// Domain commit errors (missing item, bad quantity) pass through so the
// handler can surface them while the editor stays open.
func (uc *FormUsecase) CommitEditor(ctx context.Context, sessionID string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		return f.CommitEditor(uc.cat, now)
	})
}

// DismissEditor discards the editor session.
func (uc *FormUsecase) DismissEditor(ctx context.Context, sessionID string) (*formdom.Form, error) {
	return uc.mutate(ctx, sessionID, func(f *formdom.Form, now time.Time) error {
		f.DismissEditor(now)
		return nil
	})
}

// EditorOptions returns the filtered catalogue offered by the open editor.
func (uc *FormUsecase) EditorOptions(ctx context.Context, sessionID string) ([]catalogue.Entry, error) {
	f, err := uc.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return f.EditorOptions(uc.cat), nil
}

// Validate re-runs the form validator on the current draft.
func (uc *FormUsecase) Validate(ctx context.Context, sessionID string) ([]string, error) {
	f, err := uc.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return f.Validate(uc.clock.Now()), nil
}

func (uc *FormUsecase) get(ctx context.Context, sessionID string) (*formdom.Form, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrFormInvalidArgument
	}
	f, err := uc.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFormNotFound
	}
	return f, nil
}

func (uc *FormUsecase) mutate(ctx context.Context, sessionID string, fn func(*formdom.Form, time.Time) error) (*formdom.Form, error) {
	f, err := uc.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(f, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
