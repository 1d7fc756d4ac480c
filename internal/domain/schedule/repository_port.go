// internal/domain/schedule/repository_port.go
package schedule

import "context"

// Repository is a persistence port for submitted schedules.
//
// Storage recommendation (Realtime Database):
// - node: schedules/<record id>
// - equipment/containers stored as maps keyed by selection entry id, so the
//   status batch can address each entry by path.
type Repository interface {
	// Create appends the record to the remote store.
	Create(ctx context.Context, r *Record) error

	// ApplyStatusUpdates applies the path→value batch atomically as a single
	// multi-path update. Partial application is not acceptable.
	ApplyStatusUpdates(ctx context.Context, updates map[string]any) error
}
