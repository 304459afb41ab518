package handlers

import (
	"fmt"
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
)

type BackupHandler struct {
	app *app.App
}

func NewBackupHandler(a *app.App) *BackupHandler {
	return &BackupHandler{app: a}
}

// Export downloads the whole device state as a JSON attachment.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.app.Export()
	if err != nil {
		fail(w, err)
		return
	}
	name := fmt.Sprintf("backup_%s.json", models.FormatDate(h.app.Now()))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		_ = err
	}
}

func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := httpx.ReadBody(w, r)
	if err != nil {
		badJSON(w, err)
		return
	}
	if err := h.app.Import(data); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
