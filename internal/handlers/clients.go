package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/validation"
)

type ClientHandler struct {
	app *app.App
}

func NewClientHandler(a *app.App) *ClientHandler {
	return &ClientHandler{app: a}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.app.Clients.All())
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Client
	if err := httpx.Decode(w, r, &c); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.Required("nome", c.Name, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	out, err := h.app.AddClient(c)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathClientID(w, r)
	if !ok {
		return
	}
	var c models.Client
	if err := httpx.Decode(w, r, &c); err != nil {
		badJSON(w, err)
		return
	}
	c.ID = id
	v := make(validation.Violations)
	validation.Required("nome", c.Name, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	if err := h.app.UpdateClient(c); err != nil {
		fail(w, err)
		return
	}
	out, _ := h.app.Clients.GetByID(id)
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathClientID(w, r)
	if !ok {
		return
	}
	if err := h.app.DeleteClient(id); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Bulk imports a list of clients; ids in the payload are replaced.
func (h *ClientHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var list []models.Client
	if err := httpx.Decode(w, r, &list); err != nil {
		badJSON(w, err)
		return
	}
	out, err := h.app.AddClientsBulk(list)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}
