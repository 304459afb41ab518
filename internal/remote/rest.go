package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer of the REST endpoint.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// RESTClient speaks the PostgREST dialect exposed by Supabase projects.
type RESTClient struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewRESTClient builds a client for the project at baseURL. key is sent both
// as the apikey header and as bearer token. Calls are not retried.
func NewRESTClient(baseURL, key string, logger *zap.Logger) *RESTClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", key).
		SetAuthToken(key)

	return &RESTClient{http: client, logger: logger}
}

func (c *RESTClient) SelectAll(ctx context.Context, table string) ([]json.RawMessage, error) {
	var rows []struct {
		Content json.RawMessage `json:"json_content"`
	}
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", "json_content").
		SetResult(&rows).
		SetError(&apiErr).
		Get("/" + table)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	if resp.IsError() {
		return nil, c.fail(resp, &apiErr, table)
	}

	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Content)
	}
	c.logger.Debug("remote table fetched", zap.String("table", table), zap.Int("rows", len(out)))
	return out, nil
}

func (c *RESTClient) Upsert(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("on_conflict", "id").
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(rows).
		SetError(&apiErr).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	if resp.IsError() {
		return c.fail(resp, &apiErr, table)
	}
	c.logger.Debug("remote table upserted", zap.String("table", table), zap.Int("rows", len(rows)))
	return nil
}

func (c *RESTClient) fail(resp *resty.Response, apiErr *APIError, table string) error {
	apiErr.Status = resp.StatusCode()
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(resp.String())
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status()
	}
	c.logger.Warn("remote call rejected",
		zap.String("table", table),
		zap.Int("status_code", apiErr.Status),
		zap.String("msg", apiErr.Message),
	)
	return apiErr
}
