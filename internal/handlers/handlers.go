// Package handlers exposes the application operations as JSON endpoints.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/validation"
)

// fail writes the response for an error returned by the application.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrLoading):
		httpx.JSONError(w, http.StatusServiceUnavailable, "loading", nil)
	case errors.Is(err, app.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, app.ErrInvalidBackup):
		httpx.JSONError(w, http.StatusBadRequest, "invalid_backup", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func badJSON(w http.ResponseWriter, err error) {
	httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
}

func invalid(w http.ResponseWriter, v validation.Violations) {
	httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
}

// intParam reads a positive integer from the path or the query string.
func intParam(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func pathClientID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := intParam(r.PathValue("id"))
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
	}
	return id, ok
}
