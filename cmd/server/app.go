package main

import (
	"net/http"

	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/handlers"
	"github.com/diewo77/go-interventions/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// App is the HTTP surface over one application state.
type App struct {
	mux      *http.ServeMux
	state    *app.App
	gatherer prometheus.Gatherer
}

// NewApp creates a new application with all routes configured.
func NewApp(state *app.App, gatherer prometheus.Gatherer) *App {
	a := &App{
		mux:      http.NewServeMux(),
		state:    state,
		gatherer: gatherer,
	}
	a.setupRoutes()
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	hh := handlers.NewHealthHandler(a.state)
	a.mux.HandleFunc("GET /healthz", hh.Healthz)
	if a.gatherer != nil {
		a.mux.Handle("GET /metrics", metrics.Handler(a.gatherer))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Entities
	// ─────────────────────────────────────────────────────────────────────────
	ch := handlers.NewClientHandler(a.state)
	a.mux.HandleFunc("GET /clients", ch.List)
	a.mux.HandleFunc("POST /clients", ch.Create)
	a.mux.HandleFunc("POST /clients/bulk", ch.Bulk)
	a.mux.HandleFunc("PUT /clients/{id}", ch.Update)
	a.mux.HandleFunc("DELETE /clients/{id}", ch.Delete)

	ah := handlers.NewAssetHandler(a.state)
	a.mux.HandleFunc("GET /assets", ah.List)
	a.mux.HandleFunc("POST /assets", ah.Create)
	a.mux.HandleFunc("POST /assets/bulk", ah.Bulk)
	a.mux.HandleFunc("PUT /assets/{id}", ah.Update)
	a.mux.HandleFunc("DELETE /assets/{id}", ah.Delete)

	arh := handlers.NewArticleHandler(a.state)
	a.mux.HandleFunc("GET /articles", arh.List)
	a.mux.HandleFunc("POST /articles", arh.Create)
	a.mux.HandleFunc("POST /articles/bulk", arh.Bulk)
	a.mux.HandleFunc("DELETE /articles/{id}", arh.Delete)

	ih := handlers.NewInterventionHandler(a.state)
	a.mux.HandleFunc("GET /interventions", ih.List)
	a.mux.HandleFunc("POST /interventions", ih.Create)
	a.mux.HandleFunc("POST /interventions/bulk", ih.Bulk)

	// ─────────────────────────────────────────────────────────────────────────
	// Work sessions
	// ─────────────────────────────────────────────────────────────────────────
	sh := handlers.NewSessionHandler(a.state)
	a.mux.HandleFunc("GET /sessions", sh.List)
	a.mux.HandleFunc("POST /sessions", sh.Create)
	a.mux.HandleFunc("POST /sessions/schedule", sh.Schedule)
	a.mux.HandleFunc("POST /sessions/{id}/interventions", sh.SaveIntervention)
	a.mux.HandleFunc("POST /sessions/{id}/close", sh.Close)
	a.mux.HandleFunc("DELETE /sessions/{id}", sh.Delete)
	a.mux.HandleFunc("GET /clients/{id}/session", sh.Open)
	a.mux.HandleFunc("PATCH /clients/{id}/session", sh.Update)
	a.mux.HandleFunc("POST /clients/{id}/session/reopen", sh.Reopen)

	// ─────────────────────────────────────────────────────────────────────────
	// Sync and settings
	// ─────────────────────────────────────────────────────────────────────────
	syh := handlers.NewSyncHandler(a.state)
	a.mux.HandleFunc("POST /sync/download", syh.Download)
	a.mux.HandleFunc("POST /sync/push", syh.Push)
	a.mux.HandleFunc("GET /settings/remote", syh.Settings)
	a.mux.HandleFunc("PUT /settings/remote", syh.SetCredentials)
	a.mux.HandleFunc("PUT /settings/remote-url", syh.SetRemoteURL)

	nh := handlers.NewNotificationHandler(a.state)
	a.mux.HandleFunc("GET /notifications", nh.List)
	a.mux.HandleFunc("POST /notifications/{id}/read", nh.MarkRead)
	a.mux.HandleFunc("DELETE /notifications", nh.Clear)

	bh := handlers.NewBackupHandler(a.state)
	a.mux.HandleFunc("GET /backup", bh.Export)
	a.mux.HandleFunc("POST /backup", bh.Import)

	// ─────────────────────────────────────────────────────────────────────────
	// Reference data
	// ─────────────────────────────────────────────────────────────────────────
	cat := handlers.NewCatalogHandler(a.state)
	a.mux.HandleFunc("GET /catalog", cat.Get)
	a.mux.HandleFunc("POST /catalog/services", cat.AddService)
	a.mux.HandleFunc("DELETE /catalog/services/{name}", cat.DeleteService)
	a.mux.HandleFunc("POST /catalog/anomalies", cat.AddAnomaly)
	a.mux.HandleFunc("DELETE /catalog/anomalies/{name}", cat.DeleteAnomaly)
	a.mux.HandleFunc("PUT /catalog/templates/{category}", cat.SetChecklist)
	a.mux.HandleFunc("PUT /catalog/category-anomalies/{category}", cat.SetCategoryAnomalies)
	a.mux.HandleFunc("GET /technicians", cat.Technicians)
	a.mux.HandleFunc("GET /expiries", cat.Expiries)
}
