package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	reg := metrics.NewRegistry()
	state := app.New(kvstore.NewMemoryStore(), app.WithRegistry(reg), app.WithLanguage("en"))
	t.Cleanup(state.Flush)
	state.Load(context.Background())
	return withLogging(zap.NewNop(), metrics.NewHTTPMetrics(reg).Middleware(NewApp(state, reg)))
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/clients", "", http.StatusOK},
		{http.MethodPost, "/clients", `{"nome":"Acme"}`, http.StatusCreated},
		{http.MethodDelete, "/clients/999", "", http.StatusNotFound},
		{http.MethodGet, "/assets?clientId=1", "", http.StatusOK},
		{http.MethodGet, "/articles", "", http.StatusOK},
		{http.MethodGet, "/interventions", "", http.StatusOK},
		{http.MethodPost, "/sessions", `{"clientId":1}`, http.StatusOK},
		{http.MethodGet, "/clients/1/session", "", http.StatusOK},
		{http.MethodGet, "/sessions", "", http.StatusOK},
		{http.MethodPost, "/sync/download", "", http.StatusBadGateway},
		{http.MethodGet, "/notifications", "", http.StatusOK},
		{http.MethodGet, "/catalog", "", http.StatusOK},
		{http.MethodGet, "/technicians", "", http.StatusOK},
		{http.MethodGet, "/expiries", "", http.StatusOK},
		{http.MethodGet, "/backup", "", http.StatusOK},
		{http.MethodPut, "/articles/EST-001", `{}`, http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients", nil))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `interventions_http_requests_total{method="GET",route="GET /clients",status_code="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
