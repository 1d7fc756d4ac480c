// internal/adapters/out/firestore/form_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	formdom "agendalog/internal/domain/form"
)

// FormRepositoryFS implements form.Repository using Firestore.
//
// Collection design:
// - collection: forms
// - docId: session id (docId is the source of truth)
// - Configure Firestore TTL on "expiresAt".
type FormRepositoryFS struct {
	Client *firestore.Client
}

func NewFormRepositoryFS(client *firestore.Client) *FormRepositoryFS {
	return &FormRepositoryFS{Client: client}
}

func (r *FormRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("forms")
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *FormRepositoryFS) GetByID(ctx context.Context, id string) (*formdom.Form, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("form_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, errors.New("form_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(sid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var f formdom.Form
	if err := snap.DataTo(&f); err != nil {
		return nil, err
	}
	// docId is the source of truth even when the stored doc lacks the field.
	f.ID = sid
	return &f, nil
}

// Upsert saves the draft by docId=form.ID (full overwrite, simple and
// predictable).
func (r *FormRepositoryFS) Upsert(ctx context.Context, f *formdom.Form) error {
	if r == nil || r.Client == nil {
		return errors.New("form_repository_fs: firestore client is nil")
	}
	if f == nil {
		return errors.New("form_repository_fs: form is nil")
	}

	sid := strings.TrimSpace(f.ID)
	if sid == "" {
		return errors.New("form_repository_fs: Upsert requires form.ID as docId")
	}

	_, err := r.col().Doc(sid).Set(ctx, f)
	return err
}

// DeleteByID deletes the draft. Deleting an absent doc is not an error.
func (r *FormRepositoryFS) DeleteByID(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("form_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(id)
	if sid == "" {
		return errors.New("form_repository_fs: id is empty")
	}

	_, err := r.col().Doc(sid).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}
