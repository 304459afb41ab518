package app

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/repository"
	"github.com/diewo77/go-interventions/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// slot is one persisted collection: how to restore it and how to seed it.
type slot struct {
	name    string
	restore func(data []byte) error
	seed    func()
	observe func(repository.Observer)
}

func collectionSlot[T repository.Record[T]](c *repository.Collection[T], fallback func() []T) slot {
	return slot{
		name: c.Name(),
		restore: func(data []byte) error {
			var items []T
			if err := json.Unmarshal(data, &items); err != nil {
				return err
			}
			c.Load(items)
			return nil
		},
		seed:    func() { c.Load(fallback()) },
		observe: c.Observe,
	}
}

func listSlot(l *repository.StringList, fallback func() []string) slot {
	return slot{
		name: l.Name(),
		restore: func(data []byte) error {
			var items []string
			if err := json.Unmarshal(data, &items); err != nil {
				return err
			}
			l.Load(items)
			return nil
		},
		seed:    func() { l.Load(fallback()) },
		observe: l.Observe,
	}
}

func templatesSlot(t *repository.CategoryTemplates, fallback func() map[string][]string) slot {
	return slot{
		name: t.Name(),
		restore: func(data []byte) error {
			var all map[string][]string
			if err := json.Unmarshal(data, &all); err != nil {
				return err
			}
			t.Load(all)
			return nil
		},
		seed:    func() { t.Load(fallback()) },
		observe: t.Observe,
	}
}

func (a *App) slots() []slot {
	return []slot{
		collectionSlot(a.WorkSessions, func() []models.WorkSession { return nil }),
		collectionSlot(a.Interventions, seed.Interventions),
		collectionSlot(a.Clients.Collection, seed.Clients),
		collectionSlot(a.Assets, seed.Assets),
		collectionSlot(a.Articles, seed.Articles),
		listSlot(a.Services, seed.Services),
		listSlot(a.Anomalies, seed.Anomalies),
		templatesSlot(a.ChecklistTemplates, seed.ChecklistTemplates),
		templatesSlot(a.CategoryAnomalies, seed.CategoryAnomalies),
		{
			name: kvstore.RemoteCredentials,
			restore: func(data []byte) error {
				return json.Unmarshal(data, &a.creds)
			},
			seed: func() { a.creds = a.defaultCreds },
		},
		{
			name: kvstore.RemoteURL,
			restore: func(data []byte) error {
				return json.Unmarshal(data, &a.remoteURL)
			},
			seed: func() { a.remoteURL = "" },
		},
	}
}

// Load restores every collection from the store, reading them in parallel.
// Collections never written fall back to seed data, sessions to empty. When
// the store cannot be read at all every collection is seeded. Once loaded,
// every change is persisted and an automatic download runs if credentials
// are configured.
func (a *App) Load(ctx context.Context) {
	slots := a.slots()

	var mu sync.Mutex
	found := make(map[string][]byte, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range slots {
		g.Go(func() error {
			data, ok, err := a.store.Get(gctx, s.name)
			if err != nil {
				return err
			}
			if ok {
				mu.Lock()
				found[s.name] = data
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.Error("local store unreadable, using seed data", zap.Error(err))
		found = nil
	}

	a.cfgMu.Lock()
	for _, s := range slots {
		data, ok := found[s.name]
		if !ok {
			s.seed()
			continue
		}
		if err := s.restore(data); err != nil {
			a.logger.Warn("stored collection corrupt, using seed data", zap.String("collection", s.name), zap.Error(err))
			s.seed()
		}
	}
	a.cfgMu.Unlock()

	for _, s := range slots {
		if s.observe != nil {
			s.observe(a.persist.enqueue)
		}
	}
	a.ready.Store(true)
	a.logger.Info("local state loaded",
		zap.Int("clients", a.Clients.Len()),
		zap.Int("assets", a.Assets.Len()),
		zap.Int("sessions", a.WorkSessions.Len()),
	)

	a.triggerAutoSync(ctx)
}

func (a *App) triggerAutoSync(ctx context.Context) {
	a.background.Add(1)
	go func() {
		defer a.background.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.syncTimeout)
		defer cancel()
		if res, fired := a.Sync.AutoSync(ctx, a.Ready()); fired {
			a.logger.Info("auto sync finished", zap.Bool("success", res.Success), zap.String("message", res.Message))
		}
	}()
}
