// internal/domain/form/repository_port.go
package form

import "context"

// Repository is a persistence port for draft forms.
//
// Storage recommendation (Firestore):
// - collection: forms
// - docId: session id
// - Configure Firestore TTL on the "expiresAt" field; expiresAt is refreshed
//   on each mutation by the domain (touch()).
type Repository interface {
	// GetByID returns the draft, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*Form, error)

	// Upsert saves the draft (create or update).
	Upsert(ctx context.Context, f *Form) error

	// DeleteByID deletes the draft (e.g., after submission). Idempotent.
	DeleteByID(ctx context.Context, id string) error
}
