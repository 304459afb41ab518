package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/syncer"
	"github.com/diewo77/go-interventions/validation"
)

type SyncHandler struct {
	app *app.App
}

func NewSyncHandler(a *app.App) *SyncHandler {
	return &SyncHandler{app: a}
}

func (h *SyncHandler) Download(w http.ResponseWriter, r *http.Request) {
	res, err := h.app.Download(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeResult(w, res)
}

func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	res, err := h.app.Push(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeResult(w, res)
}

// writeResult answers 502 when the remote could not be reached or refused
// the operation. The body carries the user-facing message either way.
func writeResult(w http.ResponseWriter, res syncer.Result) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadGateway
	}
	httpx.JSON(w, status, res)
}

type remoteSettings struct {
	URL        string `json:"url"`
	Configured bool   `json:"configured"`
	RemoteURL  string `json:"remoteUrl"`
}

// Settings never echoes the key back.
func (h *SyncHandler) Settings(w http.ResponseWriter, r *http.Request) {
	c := h.app.Credentials()
	httpx.JSON(w, http.StatusOK, remoteSettings{
		URL:        c.URL,
		Configured: c.Complete(),
		RemoteURL:  h.app.RemoteURL(),
	})
}

func (h *SyncHandler) SetCredentials(w http.ResponseWriter, r *http.Request) {
	var c syncer.Credentials
	if err := httpx.Decode(w, r, &c); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.Required("url", c.URL, v)
	validation.Required("key", c.Key, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	// Auto-sync outlives the request.
	if err := h.app.SetCredentials(r.Context(), c); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type remoteURLRequest struct {
	URL string `json:"url"`
}

func (h *SyncHandler) SetRemoteURL(w http.ResponseWriter, r *http.Request) {
	var req remoteURLRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	if err := h.app.SetRemoteURL(req.URL); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
