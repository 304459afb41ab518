// Package kvstore persists whole-collection snapshots on the device.
//
// Each collection is stored under its name as one serialized value. Writes
// overwrite the previous snapshot; the most recent write wins.
package kvstore

import "context"

// Collection names.
const (
	Clients            = "clients"
	Assets             = "assets"
	Articles           = "articles"
	Interventions      = "interventions"
	WorkSessions       = "work_sessions"
	Services           = "services"
	Anomalies          = "anomalies"
	ChecklistTemplates = "checklist_templates"
	CategoryAnomalies  = "category_anomalies"
	RemoteURL          = "remote_url"
	RemoteCredentials  = "supabase_config"
)

// Store is the durable key/value abstraction behind the repositories.
type Store interface {
	// Get returns the snapshot stored under name. ok is false when nothing
	// was ever written.
	Get(ctx context.Context, name string) (snapshot []byte, ok bool, err error)
	// Set overwrites the snapshot stored under name.
	Set(ctx context.Context, name string, snapshot []byte) error
}
