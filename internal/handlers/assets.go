package handlers

import (
	"net/http"
	"strings"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/validation"
	"github.com/google/uuid"
)

type AssetHandler struct {
	app *app.App
}

func NewAssetHandler(a *app.App) *AssetHandler {
	return &AssetHandler{app: a}
}

// List returns all assets, or those of one client with ?clientId=.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.app.Assets.All()
	raw := r.URL.Query().Get("clientId")
	if raw == "" {
		httpx.JSON(w, http.StatusOK, all)
		return
	}
	clientID, ok := intParam(raw)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	out := make([]models.Asset, 0)
	for _, a := range all {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

func validateAsset(a models.Asset) validation.Violations {
	v := make(validation.Violations)
	validation.PositiveInt("clientId", a.ClientID, v)
	validation.Required("tipo", a.Type, v)
	validation.Date("scadenza", a.Expiry, v)
	validation.Date("dataUltimaRevisione", a.LastRevision, v)
	return v
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := httpx.Decode(w, r, &a); err != nil {
		badJSON(w, err)
		return
	}
	if v := validateAsset(a); !v.Empty() {
		invalid(w, v)
		return
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, ok := h.app.Clients.GetByID(a.ClientID); !ok {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", validation.Violations{"clientId": "unknown_client"})
		return
	}
	out, err := h.app.AddAsset(a)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	var a models.Asset
	if err := httpx.Decode(w, r, &a); err != nil {
		badJSON(w, err)
		return
	}
	a.ID = id
	if v := validateAsset(a); !v.Empty() {
		invalid(w, v)
		return
	}
	if err := h.app.UpdateAsset(a); err != nil {
		fail(w, err)
		return
	}
	out, _ := h.app.Assets.Get(id)
	httpx.JSON(w, http.StatusOK, out)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteAsset(r.PathValue("id")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AssetHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var list []models.Asset
	if err := httpx.Decode(w, r, &list); err != nil {
		badJSON(w, err)
		return
	}
	out, err := h.app.AddAssetsBulk(list)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}
