package handlers

import (
	"net/http"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/models"
)

type NotificationHandler struct {
	app *app.App
}

func NewNotificationHandler(a *app.App) *NotificationHandler {
	return &NotificationHandler{app: a}
}

type notificationList struct {
	Items  []models.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	feed := h.app.Notifications
	httpx.JSON(w, http.StatusOK, notificationList{Items: feed.All(), Unread: feed.Unread()})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if !h.app.Notifications.MarkRead(r.PathValue("id")) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.app.Notifications.Clear()
	w.WriteHeader(http.StatusNoContent)
}
