package app

import (
	"context"

	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/syncer"
)

// Credentials returns the configured remote credentials.
func (a *App) Credentials() syncer.Credentials {
	a.cfgMu.RLock()
	defer a.cfgMu.RUnlock()
	return a.creds
}

func (a *App) RemoteURL() string {
	a.cfgMu.RLock()
	defer a.cfgMu.RUnlock()
	return a.remoteURL
}

func (a *App) SetRemoteURL(u string) error {
	if err := a.gate(); err != nil {
		return err
	}
	a.cfgMu.Lock()
	a.remoteURL = u
	a.cfgMu.Unlock()
	a.persist.enqueue(kvstore.RemoteURL, u)
	return nil
}

// SetCredentials stores c. Completing the credentials for the first time, or
// changing them, starts an automatic download in the background.
func (a *App) SetCredentials(ctx context.Context, c syncer.Credentials) error {
	if err := a.gate(); err != nil {
		return err
	}
	a.cfgMu.Lock()
	a.creds = c
	a.cfgMu.Unlock()
	a.persist.enqueue(kvstore.RemoteCredentials, c)
	a.triggerAutoSync(ctx)
	return nil
}

// Push uploads local changes and reconciles with the remote.
func (a *App) Push(ctx context.Context) (syncer.Result, error) {
	if err := a.gate(); err != nil {
		return syncer.Result{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.syncTimeout)
	defer cancel()
	return a.Sync.Push(ctx), nil
}

// Download merges the remote tables into the local collections.
func (a *App) Download(ctx context.Context) (syncer.Result, error) {
	if err := a.gate(); err != nil {
		return syncer.Result{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.syncTimeout)
	defer cancel()
	return a.Sync.DownloadAndMerge(ctx), nil
}
