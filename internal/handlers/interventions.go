package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/validation"
	"github.com/google/uuid"
)

type InterventionHandler struct {
	app *app.App
}

func NewInterventionHandler(a *app.App) *InterventionHandler {
	return &InterventionHandler{app: a}
}

// List returns the intervention log newest first, optionally filtered by
// ?clientId= or ?assetId=.
func (h *InterventionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientID, byClient := intParam(q.Get("clientId"))
	assetID := q.Get("assetId")
	out := make([]models.Intervention, 0)
	for _, iv := range h.app.Interventions.All() {
		if byClient && iv.ClientID != clientID {
			continue
		}
		if assetID != "" && iv.AssetID != assetID {
			continue
		}
		out = append(out, iv)
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *InterventionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var iv models.Intervention
	if err := httpx.Decode(w, r, &iv); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.PositiveInt("clientId", iv.ClientID, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	if iv.ID == "" {
		iv.ID = "INT-" + uuid.NewString()[:8]
	}
	out, err := h.app.AddIntervention(iv)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}

func (h *InterventionHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var list []models.Intervention
	if err := httpx.Decode(w, r, &list); err != nil {
		badJSON(w, err)
		return
	}
	out, err := h.app.AddInterventionsBulk(list)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}
