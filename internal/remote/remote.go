// Package remote talks to the shared table store devices synchronize with.
// Every table holds one row per entity: its id and the full entity payload.
package remote

import (
	"context"
	"encoding/json"
)

// Table names on the remote side.
const (
	Interventions = "interventions"
	Clients       = "clients"
	Assets        = "assets"
	WorkSessions  = "work_sessions"
)

// Row is the wire form of one entity.
type Row struct {
	ID      string          `json:"id"`
	Content json.RawMessage `json:"json_content"`
}

// Table reads and writes whole remote tables.
type Table interface {
	// SelectAll returns the payload of every row of table.
	SelectAll(ctx context.Context, table string) ([]json.RawMessage, error)
	// Upsert inserts rows or overwrites the rows with the same id.
	Upsert(ctx context.Context, table string, rows []Row) error
}
