package app

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/diewo77/go-interventions/internal/db"
	"github.com/diewo77/go-interventions/internal/remote"
	"github.com/diewo77/go-interventions/internal/syncer"
	"go.uber.org/zap"
)

// RESTRemote reaches the remote over its REST endpoint. The URL must be an
// absolute http(s) URL.
func RESTRemote(logger *zap.Logger) syncer.TableFactory {
	return func(c syncer.Credentials) (remote.Table, error) {
		u, err := url.Parse(c.URL)
		if err != nil {
			return nil, err
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid remote url %q", c.URL)
		}
		return remote.NewRESTClient(c.URL, c.Key, logger), nil
	}
}

// PostgresRemote reaches the remote tables over a direct database
// connection. The credentials URL is the DSN and the key its password.
// Connections are kept per credentials.
func PostgresRemote(ctx context.Context, logger *zap.Logger) syncer.TableFactory {
	var mu sync.Mutex
	clients := map[syncer.Credentials]*remote.GormClient{}

	return func(c syncer.Credentials) (remote.Table, error) {
		mu.Lock()
		defer mu.Unlock()
		if client, ok := clients[c]; ok {
			return client, nil
		}
		conn, err := db.Open(ctx, "postgres", db.WithPassword(c.URL, c.Key), logger)
		if err != nil {
			return nil, err
		}
		client := remote.NewGormClient(conn)
		if err := client.Migrate(ctx, remote.Interventions, remote.Clients, remote.Assets, remote.WorkSessions); err != nil {
			return nil, err
		}
		clients[c] = client
		return client, nil
	}
}
