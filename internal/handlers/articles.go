package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/validation"
	"github.com/google/uuid"
)

type ArticleHandler struct {
	app *app.App
}

func NewArticleHandler(a *app.App) *ArticleHandler {
	return &ArticleHandler{app: a}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.app.Articles.All())
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Article
	if err := httpx.Decode(w, r, &a); err != nil {
		badJSON(w, err)
		return
	}
	v := make(validation.Violations)
	validation.Required("descrizione", a.Description, v)
	if !v.Empty() {
		invalid(w, v)
		return
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	out, err := h.app.AddArticle(a)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteArticle(r.PathValue("id")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArticleHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var list []models.Article
	if err := httpx.Decode(w, r, &list); err != nil {
		badJSON(w, err)
		return
	}
	out, err := h.app.AddArticlesBulk(list)
	if err != nil {
		fail(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, out)
}
