package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
)

type HealthHandler struct {
	app *app.App
}

func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{app: a}
}

// Healthz reports 503 until the local state is loaded.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if !h.app.Ready() {
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
