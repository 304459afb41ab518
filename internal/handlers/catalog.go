package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/seed"
	"github.com/diewo77/go-interventions/validation"
)

// CatalogHandler serves the reference lists used when filling in a visit.
type CatalogHandler struct {
	app *app.App
}

func NewCatalogHandler(a *app.App) *CatalogHandler {
	return &CatalogHandler{app: a}
}

type catalog struct {
	Services           []string            `json:"services"`
	Anomalies          []string            `json:"anomalies"`
	ChecklistTemplates map[string][]string `json:"checklistTemplates"`
	CategoryAnomalies  map[string][]string `json:"categoryAnomalies"`
	PaymentMethods     []string            `json:"paymentMethods"`
	CategoryStandards  map[string]string   `json:"categoryStandards"`
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, catalog{
		Services:           h.app.Services.All(),
		Anomalies:          h.app.Anomalies.All(),
		ChecklistTemplates: h.app.ChecklistTemplates.All(),
		CategoryAnomalies:  h.app.CategoryAnomalies.All(),
		PaymentMethods:     seed.PaymentMethods(),
		CategoryStandards:  seed.CategoryStandards(),
	})
}

type labelRequest struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) decodeLabel(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req labelRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		badJSON(w, err)
		return "", false
	}
	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	if !v.Empty() {
		invalid(w, v)
		return "", false
	}
	return req.Name, true
}

func (h *CatalogHandler) AddService(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeLabel(w, r)
	if !ok {
		return
	}
	if err := h.app.AddService(name); err != nil {
		failAdd(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteService(r.PathValue("name")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) AddAnomaly(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeLabel(w, r)
	if !ok {
		return
	}
	if err := h.app.AddAnomaly(name); err != nil {
		failAdd(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteAnomaly(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteAnomaly(r.PathValue("name")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) SetChecklist(w http.ResponseWriter, r *http.Request) {
	h.setTemplate(w, r, h.app.SetChecklistTemplate)
}

func (h *CatalogHandler) SetCategoryAnomalies(w http.ResponseWriter, r *http.Request) {
	h.setTemplate(w, r, h.app.SetCategoryAnomalies)
}

func (h *CatalogHandler) setTemplate(w http.ResponseWriter, r *http.Request, set func(string, []string) error) {
	var items []string
	if err := httpx.Decode(w, r, &items); err != nil {
		badJSON(w, err)
		return
	}
	if err := set(r.PathValue("category"), items); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) Technicians(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.app.Technicians())
}

const (
	defaultExpiryDays  = 30
	defaultExpiryLimit = 0
	maxExpiryDays      = 3650
)

// Expiries lists per client the assets expired or expiring within ?days=.
func (h *CatalogHandler) Expiries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, limit := defaultExpiryDays, defaultExpiryLimit
	if raw := q.Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			invalid(w, validation.Violations{"days": "not_a_number"})
			return
		}
		v := make(validation.Violations)
		validation.RangeInt("days", n, 0, maxExpiryDays, v)
		if !v.Empty() {
			invalid(w, v)
			return
		}
		days = n
	}
	if raw := q.Get("limit"); raw != "" {
		n, ok := intParam(raw)
		if !ok {
			invalid(w, validation.Violations{"limit": "must_be_positive"})
			return
		}
		limit = n
	}
	httpx.JSON(w, http.StatusOK, h.app.ExpiringAssets(days, limit))
}

// failAdd reports a label that is already listed as a conflict.
func failAdd(w http.ResponseWriter, err error) {
	if errors.Is(err, app.ErrNotFound) {
		httpx.JSONError(w, http.StatusConflict, "already_exists", nil)
		return
	}
	fail(w, err)
}
