package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/validation"
)

// SessionHandler drives the work session lifecycle:
// plan, open, draft interventions, close and reopen.
type SessionHandler struct {
	app *app.App
}

func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

// List returns all sessions, or those of one client with ?clientId=.
// ?status=PLANNED returns the schedule sorted by date; other statuses filter
// in place.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := models.SessionStatus(q.Get("status"))
	if status == models.SessionStatusPlanned && q.Get("clientId") == "" {
		httpx.JSON(w, http.StatusOK, h.app.Sessions.Planned())
		return
	}
	all := h.app.Sessions.All()
	if raw := q.Get("clientId"); raw != "" {
		clientID, ok := intParam(raw)
		if !ok {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
			return
		}
		all = h.app.Sessions.ForClient(clientID)
	}
	out := make([]models.WorkSession, 0)
	for _, s := range all {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

type createSessionRequest struct {
	ClientID int `json:"clientId"`
}

// Create opens (or returns) the session of a client.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.PositiveInt("clientId", req.ClientID, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	s, err := h.app.CreateSession(req.ClientID)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

type scheduleRequest struct {
	ClientID int      `json:"clientId"`
	Date     string   `json:"date"`
	TechIDs  []string `json:"techIds"`
}

func (h *SessionHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.PositiveInt("clientId", req.ClientID, v)
	validation.Required("date", req.Date, v)
	validation.Date("date", req.Date, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	s, err := h.app.ScheduleSession(req.ClientID, req.Date, req.TechIDs)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, s)
}

// Open returns the client's OPEN session.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}
	s, ok := h.app.Sessions.GetOpen(clientID)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

// Update patches the metadata of the client's OPEN session. With ?save=1 the
// change is confirmed to the user with a notification.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}
	var patch models.SessionPatch
	if err := httpx.Decode(w, r, &patch); err != nil {
		badJSON(w, err)
		return
	}
	if patch.ScheduledDate != nil {
		v := make(validation.Violations)
		validation.Date("scheduledDate", *patch.ScheduledDate, v)
		if !v.Empty() {
			invalid(w, v)
			return
		}
	}
	update := h.app.UpdateSession
	if r.URL.Query().Get("save") == "1" {
		update = h.app.SaveSessionDraft
	}
	if err := update(clientID, &patch); err != nil {
		fail(w, err)
		return
	}
	s, _ := h.app.Sessions.GetOpen(clientID)
	httpx.JSON(w, http.StatusOK, s)
}

type saveInterventionRequest struct {
	app.AssetWork
	Session *models.SessionPatch `json:"session,omitempty"`
}

// SaveIntervention drafts the work on one asset into the session.
func (h *SessionHandler) SaveIntervention(w http.ResponseWriter, r *http.Request) {
	var req saveInterventionRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.Required("assetId", req.AssetID, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	iv, err := h.app.SaveAssetIntervention(r.PathValue("id"), req.AssetWork, req.Session)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, iv)
}

// Close finalizes the session and returns the interventions it emitted.
// The body is an optional patch applied before closing.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	patch := new(models.SessionPatch)
	switch err := httpx.Decode(w, r, patch); {
	case errors.Is(err, httpx.ErrEmptyBody):
		patch = nil
	case err != nil:
		badJSON(w, err)
		return
	}
	rows, err := h.app.CloseSession(r.PathValue("id"), patch)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *SessionHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}
	s, err := h.app.ReopenSession(clientID)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteSession(r.PathValue("id")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
