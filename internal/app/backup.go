package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diewo77/go-interventions/internal/models"
)

// Backup is the portable snapshot of the device state.
type Backup struct {
	Timestamp          string                `json:"timestamp"`
	Clients            []models.Client       `json:"clients"`
	Articles           []models.Article      `json:"articles"`
	Assets             []models.Asset        `json:"assets"`
	Services           []string              `json:"services"`
	Anomalies          []string              `json:"anomalies"`
	ChecklistTemplates map[string][]string   `json:"checklistTemplates"`
	CategoryAnomalies  map[string][]string   `json:"categoryAnomalies"`
	Interventions      []models.Intervention `json:"interventions"`
	Sessions           []models.WorkSession  `json:"sessions"`
}

// Export serializes every collection.
func (a *App) Export() ([]byte, error) {
	b := Backup{
		Timestamp:          models.FormatTimestamp(a.clock.Now()),
		Clients:            a.Clients.All(),
		Articles:           a.Articles.All(),
		Assets:             a.Assets.All(),
		Services:           a.Services.All(),
		Anomalies:          a.Anomalies.All(),
		ChecklistTemplates: a.ChecklistTemplates.All(),
		CategoryAnomalies:  a.CategoryAnomalies.All(),
		Interventions:      a.Interventions.All(),
		Sessions:           a.WorkSessions.All(),
	}
	return json.Marshal(b)
}

// Import replaces every collection present in the backup document. Nothing
// is changed when any part of the document is malformed.
func (a *App) Import(data []byte) error {
	if err := a.gate(); err != nil {
		return err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return fmt.Errorf("%w: not a backup document", ErrInvalidBackup)
	}

	var steps []func()
	var decodeErr error
	part := func(key string, dst any, apply func()) {
		raw, ok := doc[key]
		if !ok || decodeErr != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			decodeErr = fmt.Errorf("%w: %s: %v", ErrInvalidBackup, key, err)
			return
		}
		steps = append(steps, apply)
	}

	var b Backup
	part("clients", &b.Clients, func() { a.Clients.Replace(b.Clients) })
	part("articles", &b.Articles, func() { a.Articles.Replace(b.Articles) })
	part("assets", &b.Assets, func() { a.Assets.Replace(b.Assets) })
	part("services", &b.Services, func() { a.Services.Replace(b.Services) })
	part("anomalies", &b.Anomalies, func() { a.Anomalies.Replace(b.Anomalies) })
	part("checklistTemplates", &b.ChecklistTemplates, func() { a.ChecklistTemplates.Replace(b.ChecklistTemplates) })
	part("categoryAnomalies", &b.CategoryAnomalies, func() { a.CategoryAnomalies.Replace(b.CategoryAnomalies) })
	part("interventions", &b.Interventions, func() { a.Interventions.Replace(b.Interventions) })
	part("sessions", &b.Sessions, func() { a.WorkSessions.Replace(b.Sessions) })
	if decodeErr != nil {
		return decodeErr
	}

	for _, apply := range steps {
		apply()
	}
	a.logger.Info("backup imported")
	return nil
}
