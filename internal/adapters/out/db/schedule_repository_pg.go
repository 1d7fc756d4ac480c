// internal/adapters/out/db/schedule_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	scheduledom "agendalog/internal/domain/schedule"
	"agendalog/internal/domain/selection"
)

// ScheduleRepositoryPG is the PostgreSQL variant of schedule.Repository,
// selected by SCHEDULE_BACKEND=postgres. Equipment and containers are stored
// as JSONB objects keyed by selection entry id so the path-addressed status
// batch maps onto jsonb_set.
type ScheduleRepositoryPG struct {
	DB *sql.DB
}

func NewScheduleRepositoryPG(db *sql.DB) *ScheduleRepositoryPG {
	return &ScheduleRepositoryPG{DB: db}
}

func listToJSON(list selection.List) ([]byte, error) {
	m := make(map[string]selection.Entry, len(list))
	for _, e := range list {
		m[e.ID] = e
	}
	return json.Marshal(m)
}

// Create appends the record.
func (r *ScheduleRepositoryPG) Create(ctx context.Context, rec *scheduledom.Record) error {
	if r == nil || r.DB == nil {
		return errors.New("schedule_repository_pg: db is nil")
	}
	if rec == nil || strings.TrimSpace(rec.ID) == "" {
		return errors.New("schedule_repository_pg: record id is empty")
	}

	equipment, err := listToJSON(rec.Equipment)
	if err != nil {
		return fmt.Errorf("schedule_repository_pg: marshal equipment: %w", err)
	}
	containers, err := listToJSON(rec.Containers)
	if err != nil {
		return fmt.Errorf("schedule_repository_pg: marshal containers: %w", err)
	}

	const q = `
INSERT INTO schedules (
  id, client_id, client_name, delivery_date, equipment, containers,
  address, observations, status, created_at, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.DB.ExecContext(ctx, q,
		rec.ID, rec.ClientID, rec.ClientName, rec.DeliveryDate,
		equipment, containers,
		rec.Address, rec.Observations, rec.Status, rec.CreatedAt, rec.CreatedBy,
	)
	return err
}

// ApplyStatusUpdates applies the batch inside one transaction so the whole
// update is atomic, matching the Realtime Database multi-path semantics.
// Paths look like schedules/<record id>/<list>/<entry id>/status.
func (r *ScheduleRepositoryPG) ApplyStatusUpdates(ctx context.Context, updates map[string]any) error {
	if r == nil || r.DB == nil {
		return errors.New("schedule_repository_pg: db is nil")
	}
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for path, value := range updates {
		recordID, list, entryID, err := parseStatusPath(path)
		if err != nil {
			return err
		}
		status, ok := value.(string)
		if !ok {
			return fmt.Errorf("schedule_repository_pg: non-string status for %s", path)
		}

		// list is validated by parseStatusPath; safe to interpolate.
		q := fmt.Sprintf(
			`UPDATE schedules SET %s = jsonb_set(%s, $1, to_jsonb($2::text)) WHERE id = $3`,
			list, list,
		)
		if _, err := tx.ExecContext(ctx, q, fmt.Sprintf("{%s,status}", entryID), status, recordID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func parseStatusPath(path string) (recordID, list, entryID string, err error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 5 || parts[0] != "schedules" || parts[4] != "status" {
		return "", "", "", fmt.Errorf("schedule_repository_pg: unsupported update path %q", path)
	}
	list = parts[2]
	if list != "equipment" && list != "containers" {
		return "", "", "", fmt.Errorf("schedule_repository_pg: unsupported list in path %q", path)
	}
	return parts[1], list, parts[3], nil
}
