package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/remote"
	"github.com/diewo77/go-interventions/internal/syncer"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func offline(syncer.Credentials) (remote.Table, error) {
	return nil, errors.New("offline")
}

func newState(t *testing.T) *app.App {
	t.Helper()
	a := app.New(kvstore.NewMemoryStore(),
		app.WithClock(clockwork.NewFakeClockAt(epoch)),
		app.WithLanguage("en"),
		app.WithRemote(offline),
	)
	t.Cleanup(a.Flush)
	return a
}

func loadedState(t *testing.T) *app.App {
	t.Helper()
	a := newState(t)
	a.Load(context.Background())
	a.Flush()
	return a
}

// serve routes one request through a mux holding a single pattern.
func serve(pattern string, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestClientHandler_CreateAndList(t *testing.T) {
	state := loadedState(t)
	h := NewClientHandler(state)

	rec := serve("POST /clients", h.Create, http.MethodPost, "/clients", `{"nome":"Acme SRL","indirizzo":"Via Po 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Client](t, rec)
	assert.Equal(t, 100, created.ID)
	assert.Equal(t, models.FormatTimestamp(epoch), created.UpdatedAt)
	assert.Equal(t, "Acme SRL", state.Notifications.All()[0].Message)

	rec = serve("GET /clients", h.List, http.MethodGet, "/clients", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Client](t, rec), 5)
}

func TestClientHandler_Validation(t *testing.T) {
	h := NewClientHandler(loadedState(t))

	rec := serve("POST /clients", h.Create, http.MethodPost, "/clients", `{"indirizzo":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	assert.Equal(t, "validation_failed", body.Error)
	assert.Equal(t, map[string]any{"nome": "required"}, body.Details)

	rec = serve("POST /clients", h.Create, http.MethodPost, "/clients", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve("PUT /clients/{id}", h.Update, http.MethodPut, "/clients/abc", `{"nome":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientHandler_UpdateAndDelete(t *testing.T) {
	state := loadedState(t)
	h := NewClientHandler(state)

	rec := serve("PUT /clients/{id}", h.Update, http.MethodPut, "/clients/2", `{"id":7,"nome":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Client](t, rec)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)

	rec = serve("PUT /clients/{id}", h.Update, http.MethodPut, "/clients/42", `{"nome":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve("DELETE /clients/{id}", h.Delete, http.MethodDelete, "/clients/2", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := state.Clients.GetByID(2)
	assert.False(t, ok)
}

func TestClientHandler_Bulk(t *testing.T) {
	h := NewClientHandler(loadedState(t))

	rec := serve("POST /clients/bulk", h.Bulk, http.MethodPost, "/clients/bulk", `[{"nome":"A"},{"nome":"B"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode[[]models.Client](t, rec)
	require.Len(t, out, 2)
	assert.Equal(t, []int{100, 101}, []int{out[0].ID, out[1].ID})
	assert.Equal(t, out[0].UpdatedAt, out[1].UpdatedAt)
}

func TestMutationsWhileLoading(t *testing.T) {
	state := newState(t)

	rec := serve("POST /clients", NewClientHandler(state).Create, http.MethodPost, "/clients", `{"nome":"Acme"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "loading", decode[httpx.ErrorResponse](t, rec).Error)

	rec = serve("GET /healthz", NewHealthHandler(state).Healthz, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	state.Load(context.Background())
	rec = serve("GET /healthz", NewHealthHandler(state).Healthz, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssetHandler(t *testing.T) {
	state := loadedState(t)
	h := NewAssetHandler(state)

	rec := serve("POST /assets", h.Create, http.MethodPost, "/assets", `{"clientId":1,"tipo":"Estintore","scadenza":"2025-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Asset](t, rec)
	assert.NotEmpty(t, created.ID)

	rec = serve("POST /assets", h.Create, http.MethodPost, "/assets", `{"clientId":555,"tipo":"Estintore"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve("POST /assets", h.Create, http.MethodPost, "/assets", `{"clientId":1,"tipo":"Estintore","scadenza":"01/01/2025"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]any{"scadenza": "invalid_date"}, decode[httpx.ErrorResponse](t, rec).Details)

	rec = serve("GET /assets", h.List, http.MethodGet, "/assets?clientId=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, a := range decode[[]models.Asset](t, rec) {
		assert.Equal(t, 1, a.ClientID)
	}

	rec = serve("DELETE /assets/{id}", h.Delete, http.MethodDelete, "/assets/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = serve("DELETE /assets/{id}", h.Delete, http.MethodDelete, "/assets/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionHandler_Lifecycle(t *testing.T) {
	state := loadedState(t)
	h := NewSessionHandler(state)

	rec := serve("POST /sessions", h.Create, http.MethodPost, "/sessions", `{"clientId":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	s := decode[models.WorkSession](t, rec)
	assert.Equal(t, models.SessionStatusOpen, s.Status)

	rec = serve("POST /sessions/{id}/interventions", h.SaveIntervention, http.MethodPost, "/sessions/"+s.ID+"/interventions",
		`{"assetId":"A01","services":["Revisione Semestrale (UNI 9994-1)"],"notes":"ok"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	draft := decode[models.Intervention](t, rec)
	assert.Equal(t, "Hotel Bellavista SPA", draft.ClientName)
	asset, _ := state.Assets.Get("A01")
	assert.Equal(t, "2024-11-01", asset.Expiry)

	rec = serve("PATCH /clients/{id}/session", h.Update, http.MethodPatch, "/clients/1/session?save=1", `{"generalNotes":"all good"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "all good", decode[models.WorkSession](t, rec).GeneralNotes)
	assert.Equal(t, "Session Saved", state.Notifications.All()[0].Title)

	rec = serve("POST /sessions/{id}/close", h.Close, http.MethodPost, "/sessions/"+s.ID+"/close", `{"clientSignature":"Resp. Hotel"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rows := decode[[]models.Intervention](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, draft.ID, rows[0].ID)
	assert.Equal(t, "Resp. Hotel", rows[0].ClientSignature)
	assert.Equal(t, "all good", rows[0].GeneralNotes)
	assert.Equal(t, draft.ID, state.Interventions.All()[0].ID)

	rec = serve("POST /sessions/{id}/close", h.Close, http.MethodPost, "/sessions/"+s.ID+"/close", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve("GET /clients/{id}/session", h.Open, http.MethodGet, "/clients/1/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve("POST /clients/{id}/session/reopen", h.Reopen, http.MethodPost, "/clients/1/session/reopen", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, s.ID, decode[models.WorkSession](t, rec).ID)

	rec = serve("GET /clients/{id}/session", h.Open, http.MethodGet, "/clients/1/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_CloseWithoutBody(t *testing.T) {
	state := loadedState(t)
	h := NewSessionHandler(state)
	s, err := state.CreateSession(2)
	require.NoError(t, err)

	rec := serve("POST /sessions/{id}/close", h.Close, http.MethodPost, "/sessions/"+s.ID+"/close", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decode[[]models.Intervention](t, rec))
}

func TestSessionHandler_Schedule(t *testing.T) {
	state := loadedState(t)
	h := NewSessionHandler(state)

	rec := serve("POST /sessions/schedule", h.Schedule, http.MethodPost, "/sessions/schedule", `{"clientId":3,"date":"2024-05-20","techIds":["T1","T2"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	planned := decode[models.WorkSession](t, rec)
	assert.Equal(t, models.SessionStatusPlanned, planned.Status)
	assert.Equal(t, "Mario Rossi, Luigi Verdi", planned.AssignedTechName)

	rec = serve("POST /sessions/schedule", h.Schedule, http.MethodPost, "/sessions/schedule", `{"clientId":3,"date":"20/05/2024"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve("GET /sessions", h.List, http.MethodGet, "/sessions?status=PLANNED", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.WorkSession](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, planned.ID, list[0].ID)

	rec = serve("GET /sessions", h.List, http.MethodGet, "/sessions?clientId=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.WorkSession](t, rec))
}

func TestSyncHandler(t *testing.T) {
	state := loadedState(t)
	h := NewSyncHandler(state)

	rec := serve("POST /sync/download", h.Download, http.MethodPost, "/sync/download", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, syncer.Result{Success: false, Message: "Cloud configuration missing."}, decode[syncer.Result](t, rec))

	rec = serve("PUT /settings/remote", h.SetCredentials, http.MethodPut, "/settings/remote", `{"url":"https://x.supabase.co"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve("PUT /settings/remote", h.SetCredentials, http.MethodPut, "/settings/remote", `{"url":"https://x.supabase.co","key":"secret"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	state.Flush()

	rec = serve("GET /settings/remote", h.Settings, http.MethodGet, "/settings/remote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.JSONEq(t, `{"url":"https://x.supabase.co","configured":true,"remoteUrl":""}`, rec.Body.String())

	rec = serve("POST /sync/push", h.Push, http.MethodPost, "/sync/push", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Invalid client.", decode[syncer.Result](t, rec).Message)
}

func TestBackupHandler_RoundTrip(t *testing.T) {
	state := loadedState(t)
	h := NewBackupHandler(state)

	rec := serve("GET /backup", h.Export, http.MethodGet, "/backup", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="backup_2024-05-01.json"`, rec.Header().Get("Content-Disposition"))
	exported := rec.Body.String()

	_, err := state.AddClient(models.Client{Name: "Transient"})
	require.NoError(t, err)

	rec = serve("POST /backup", h.Import, http.MethodPost, "/backup", exported)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, 4, state.Clients.Len())

	for _, body := range []string{"null", "[]", "not json"} {
		rec = serve("POST /backup", h.Import, http.MethodPost, "/backup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "invalid_backup", decode[httpx.ErrorResponse](t, rec).Error, body)
	}
}

func TestCatalogHandler(t *testing.T) {
	state := loadedState(t)
	h := NewCatalogHandler(state)

	rec := serve("POST /catalog/services", h.AddService, http.MethodPost, "/catalog/services", `{"name":"Pulizia"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = serve("POST /catalog/services", h.AddService, http.MethodPost, "/catalog/services", `{"name":"Pulizia"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve("PUT /catalog/templates/{category}", h.SetChecklist, http.MethodPut, "/catalog/templates/Estintori", `["Pressione","Sigillo"]`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve("GET /catalog", h.Get, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	c := decode[catalog](t, rec)
	assert.Contains(t, c.Services, "Pulizia")
	assert.Equal(t, []string{"Pressione", "Sigillo"}, c.ChecklistTemplates["Estintori"])
	assert.NotEmpty(t, c.PaymentMethods)
	assert.Equal(t, "UNI 9994-1:2013", c.CategoryStandards["Estintori"])

	rec = serve("DELETE /catalog/services/{name}", h.DeleteService, http.MethodDelete, "/catalog/services/Pulizia", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = serve("DELETE /catalog/services/{name}", h.DeleteService, http.MethodDelete, "/catalog/services/Pulizia", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve("GET /technicians", h.Technicians, http.MethodGet, "/technicians", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Technician](t, rec), 4)
}

func TestCatalogHandler_Expiries(t *testing.T) {
	h := NewCatalogHandler(loadedState(t))

	rec := serve("GET /expiries", h.Expiries, http.MethodGet, "/expiries?days=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve("GET /expiries", h.Expiries, http.MethodGet, "/expiries?days=365", "")
	require.Equal(t, http.StatusOK, rec.Code)
	groups := decode[[]app.ExpiryGroup](t, rec)
	var ids []int
	for _, g := range groups {
		ids = append(ids, g.ClientID)
	}
	assert.Contains(t, ids, 1)

	rec = serve("GET /expiries", h.Expiries, http.MethodGet, "/expiries?days=365&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]app.ExpiryGroup](t, rec), 1)
}

func TestNotificationHandler(t *testing.T) {
	state := loadedState(t)
	h := NewNotificationHandler(state)

	rec := serve("GET /notifications", h.List, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[notificationList](t, rec).Unread)

	rec = serve("POST /notifications/{id}/read", h.MarkRead, http.MethodPost, "/notifications/NOT-001/read", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = serve("POST /notifications/{id}/read", h.MarkRead, http.MethodPost, "/notifications/NOPE/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, state.Notifications.Unread())

	rec = serve("DELETE /notifications", h.Clear, http.MethodDelete, "/notifications", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, state.Notifications.All())
}
