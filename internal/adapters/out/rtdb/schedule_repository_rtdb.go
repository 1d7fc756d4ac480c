// internal/adapters/out/rtdb/schedule_repository_rtdb.go
package rtdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"firebase.google.com/go/v4/db"

	scheduledom "agendalog/internal/domain/schedule"
	"agendalog/internal/domain/selection"
)

// ScheduleRepositoryRTDB implements schedule.Repository on the Firebase
// Realtime Database.
//
// Node design:
// - schedules/<record id>
// - equipment and containers stored as maps keyed by selection entry id, so
//   status updates can address each entry by path. A position field preserves
//   the original display order.
type ScheduleRepositoryRTDB struct {
	Client *db.Client
}

func NewScheduleRepositoryRTDB(client *db.Client) *ScheduleRepositoryRTDB {
	return &ScheduleRepositoryRTDB{Client: client}
}

type entryNode struct {
	ID          string `json:"id"`
	CatalogueID string `json:"catalogueId,omitempty"`
	Label       string `json:"label"`
	Capacity    string `json:"capacity,omitempty"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Position    int    `json:"position"`
}

type recordNode struct {
	ID           string               `json:"id"`
	ClientID     string               `json:"clientId"`
	ClientName   string               `json:"clientName"`
	DeliveryDate string               `json:"deliveryDate"`
	Equipment    map[string]entryNode `json:"equipment,omitempty"`
	Containers   map[string]entryNode `json:"containers,omitempty"`
	Address      string               `json:"address"`
	Observations string               `json:"observations,omitempty"`
	Status       string               `json:"status"`
	CreatedAt    string               `json:"createdAt"`
	CreatedBy    string               `json:"createdBy"`
}

func toEntryNodes(list selection.List) map[string]entryNode {
	if len(list) == 0 {
		return nil
	}
	out := make(map[string]entryNode, len(list))
	for i, e := range list {
		out[e.ID] = entryNode{
			ID:          e.ID,
			CatalogueID: e.CatalogueID,
			Label:       e.Label,
			Capacity:    e.Capacity,
			Quantity:    e.Quantity,
			Status:      string(e.Status),
			Position:    i,
		}
	}
	return out
}

// Create appends the record at schedules/<id>.
func (r *ScheduleRepositoryRTDB) Create(ctx context.Context, rec *scheduledom.Record) error {
	if r == nil || r.Client == nil {
		return errors.New("schedule_repository_rtdb: db client is nil")
	}
	if rec == nil || strings.TrimSpace(rec.ID) == "" {
		return errors.New("schedule_repository_rtdb: record id is empty")
	}

	node := recordNode{
		ID:           rec.ID,
		ClientID:     rec.ClientID,
		ClientName:   rec.ClientName,
		DeliveryDate: rec.DeliveryDate,
		Equipment:    toEntryNodes(rec.Equipment),
		Containers:   toEntryNodes(rec.Containers),
		Address:      rec.Address,
		Observations: rec.Observations,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		CreatedBy:    rec.CreatedBy,
	}
	return r.Client.NewRef("schedules/"+rec.ID).Set(ctx, node)
}

// ApplyStatusUpdates applies the whole batch as one multi-path update rooted
// at "/", which the Realtime Database commits atomically.
func (r *ScheduleRepositoryRTDB) ApplyStatusUpdates(ctx context.Context, updates map[string]any) error {
	if r == nil || r.Client == nil {
		return errors.New("schedule_repository_rtdb: db client is nil")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.Client.NewRef("/").Update(ctx, updates)
}
