package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendalog/internal/domain/catalogue"
	formdom "agendalog/internal/domain/form"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var clockNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

// memFormRepo is an in-memory form.Repository for tests.
type memFormRepo struct {
	forms   map[string]formdom.Form
	upserts int
}

func newMemFormRepo() *memFormRepo {
	return &memFormRepo{forms: map[string]formdom.Form{}}
}

func (r *memFormRepo) GetByID(_ context.Context, id string) (*formdom.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, nil
	}
	cp := f
	return &cp, nil
}

func (r *memFormRepo) Upsert(_ context.Context, f *formdom.Form) error {
	r.upserts++
	r.forms[f.ID] = *f
	return nil
}

func (r *memFormRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

func usecaseCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c, err := catalogue.New([]catalogue.Entry{
		{ID: "e1", Kind: catalogue.KindEquipment, Label: "Poliguindaste", Icon: "truck"},
		{ID: "e2", Kind: catalogue.KindEquipment, Label: "Guindaste", Icon: "crane"},
		{ID: "c1", Kind: catalogue.KindContainer, Label: "Caçamba", Icon: "dumpster", Capacity: "5m³"},
	})
	assert.NoError(t, err)
	return c
}

func TestFormGetOrCreate(t *testing.T) {
	repo := newMemFormRepo()
	uc := NewFormUsecaseWithClock(repo, usecaseCatalogue(t), fixedClock{clockNow})
	ctx := context.Background()

	f, err := uc.GetOrCreate(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", f.ID)
	assert.Equal(t, 1, repo.upserts, "fresh draft persisted")

	again, err := uc.GetOrCreate(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, f.ID, again.ID)
	assert.Equal(t, 1, repo.upserts, "existing draft not rewritten")

	_, err = uc.GetOrCreate(ctx, "  ")
	assert.ErrorIs(t, err, ErrFormInvalidArgument)
}

func TestFormEditorFlowPersistsEachStep(t *testing.T) {
	repo := newMemFormRepo()
	uc := NewFormUsecaseWithClock(repo, usecaseCatalogue(t), fixedClock{clockNow})
	ctx := context.Background()

	_, err := uc.GetOrCreate(ctx, "sess-1")
	assert.NoError(t, err)

	_, err = uc.OpenEditorForCreate(ctx, "sess-1", catalogue.KindEquipment)
	assert.NoError(t, err)
	_, err = uc.SelectEditorItem(ctx, "sess-1", "e1")
	assert.NoError(t, err)
	_, err = uc.SetEditorQuantityText(ctx, "sess-1", "3")
	assert.NoError(t, err)

	f, err := uc.CommitEditor(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Len(t, f.Equipment, 1)
	assert.Equal(t, 3, f.Equipment[0].Quantity)

	// the committed state is what a reconnecting client reads back
	persisted, err := uc.GetOrCreate(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Len(t, persisted.Equipment, 1)
}

func TestFormCommitFailureDoesNotPersist(t *testing.T) {
	repo := newMemFormRepo()
	uc := NewFormUsecaseWithClock(repo, usecaseCatalogue(t), fixedClock{clockNow})
	ctx := context.Background()

	_, err := uc.GetOrCreate(ctx, "sess-1")
	assert.NoError(t, err)
	_, err = uc.OpenEditorForCreate(ctx, "sess-1", catalogue.KindEquipment)
	assert.NoError(t, err)
	upsertsBefore := repo.upserts

	_, err = uc.CommitEditor(ctx, "sess-1")
	assert.ErrorIs(t, err, formdom.ErrNoItemChosen)
	assert.Equal(t, upsertsBefore, repo.upserts, "failed commit writes nothing")

	persisted, _ := uc.GetOrCreate(ctx, "sess-1")
	assert.Equal(t, formdom.EditorCreating, persisted.Editor.State, "editor still open")
}

func TestFormEditorOptionsFilter(t *testing.T) {
	repo := newMemFormRepo()
	uc := NewFormUsecaseWithClock(repo, usecaseCatalogue(t), fixedClock{clockNow})
	ctx := context.Background()

	_, _ = uc.GetOrCreate(ctx, "sess-1")
	_, _ = uc.OpenEditorForCreate(ctx, "sess-1", catalogue.KindEquipment)
	_, _ = uc.SelectEditorItem(ctx, "sess-1", "e1")
	_, err := uc.CommitEditor(ctx, "sess-1")
	assert.NoError(t, err)

	_, err = uc.OpenEditorForCreate(ctx, "sess-1", catalogue.KindEquipment)
	assert.NoError(t, err)

	opts, err := uc.EditorOptions(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "e2", opts[0].ID)
}

func TestFormUnknownSession(t *testing.T) {
	repo := newMemFormRepo()
	uc := NewFormUsecaseWithClock(repo, usecaseCatalogue(t), fixedClock{clockNow})

	_, err := uc.CommitEditor(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrFormNotFound)
}
