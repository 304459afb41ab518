package app

import (
	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/models"
)

// revisionMonths is how far a serviced asset's expiry moves forward.
const revisionMonths = 6

func (a *App) CreateSession(clientID int) (models.WorkSession, error) {
	if err := a.gate(); err != nil {
		return models.WorkSession{}, err
	}
	return a.Sessions.Create(clientID), nil
}

func (a *App) ScheduleSession(clientID int, date string, techIDs []string) (models.WorkSession, error) {
	if err := a.gate(); err != nil {
		return models.WorkSession{}, err
	}
	return a.Sessions.Schedule(clientID, date, techIDs), nil
}

func (a *App) UpdateSession(clientID int, patch *models.SessionPatch) error {
	return a.mutate(func() bool { return a.Sessions.Update(clientID, patch) })
}

// SaveSessionDraft stores the metadata of the client's open session and
// confirms it to the user.
func (a *App) SaveSessionDraft(clientID int, patch *models.SessionPatch) error {
	if err := a.UpdateSession(clientID, patch); err != nil {
		return err
	}
	a.Notifications.Add(models.NotificationSuccess, i18n.T(a.lang, "session.saved.title"), i18n.T(a.lang, "session.saved.msg"))
	return nil
}

func (a *App) SaveIntervention(sessionID string, iv models.Intervention, patch *models.SessionPatch) (models.Intervention, error) {
	if err := a.gate(); err != nil {
		return models.Intervention{}, err
	}
	out, ok := a.Sessions.SaveIntervention(sessionID, iv, patch)
	if !ok {
		return models.Intervention{}, ErrNotFound
	}
	return out, nil
}

// AssetWork is what a technician records for one asset during a visit.
type AssetWork struct {
	AssetID   string   `json:"assetId"`
	Services  []string `json:"services"`
	Anomalies []string `json:"anomalies"`
	Notes     string   `json:"notes"`
}

// SaveAssetIntervention drafts the work on one asset into the session, with
// client and asset names copied as they are now, and moves the asset's
// revision date to today and its expiry six months ahead. Assets of another
// client are reported as not found.
func (a *App) SaveAssetIntervention(sessionID string, w AssetWork, patch *models.SessionPatch) (models.Intervention, error) {
	if err := a.gate(); err != nil {
		return models.Intervention{}, err
	}
	s, ok := a.Sessions.Get(sessionID)
	if !ok || s.IsClosed() {
		return models.Intervention{}, ErrNotFound
	}
	asset, ok := a.Assets.Get(w.AssetID)
	if !ok || asset.ClientID != s.ClientID {
		return models.Intervention{}, ErrNotFound
	}
	clientName := "Unknown"
	if c, ok := a.Clients.GetByID(s.ClientID); ok {
		clientName = c.Name
	}

	now := a.clock.Now()
	iv, ok := a.Sessions.SaveIntervention(sessionID, models.Intervention{
		Timestamp:  models.FormatTimestamp(now),
		ClientID:   s.ClientID,
		ClientName: clientName,
		AssetID:    asset.ID,
		AssetName:  asset.Type,
		Services:   w.Services,
		Anomalies:  w.Anomalies,
		Notes:      w.Notes,
	}, patch)
	if !ok {
		return models.Intervention{}, ErrNotFound
	}

	asset.LastRevision = models.FormatDate(now)
	asset.Expiry = models.FormatDate(now.AddDate(0, revisionMonths, 0))
	a.Assets.Update(asset)
	return iv, nil
}

func (a *App) CloseSession(sessionID string, patch *models.SessionPatch) ([]models.Intervention, error) {
	if err := a.gate(); err != nil {
		return nil, err
	}
	rows, ok := a.Sessions.Close(sessionID, patch)
	if !ok {
		return nil, ErrNotFound
	}
	return rows, nil
}

func (a *App) ReopenSession(clientID int) (models.WorkSession, error) {
	if err := a.gate(); err != nil {
		return models.WorkSession{}, err
	}
	s, ok := a.Sessions.Reopen(clientID)
	if !ok {
		return models.WorkSession{}, ErrNotFound
	}
	return s, nil
}

func (a *App) DeleteSession(sessionID string) error {
	return a.mutate(func() bool { return a.Sessions.Delete(sessionID) })
}
