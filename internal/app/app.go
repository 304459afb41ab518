// Package app wires the repositories, the session lifecycle, persistence
// and synchronization into one coordinator owned by the caller.
package app

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/metrics"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/notify"
	"github.com/diewo77/go-interventions/internal/remote"
	"github.com/diewo77/go-interventions/internal/repository"
	"github.com/diewo77/go-interventions/internal/seed"
	"github.com/diewo77/go-interventions/internal/session"
	"github.com/diewo77/go-interventions/internal/syncer"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// ErrLoading is returned by mutating operations until Load completes.
	ErrLoading       = errors.New("loading")
	ErrInvalidBackup = errors.New("invalid_backup")
	ErrNotFound      = errors.New("not_found")
)

// App is the application state of one device.
type App struct {
	store  kvstore.Store
	clock  clockwork.Clock
	logger *zap.Logger
	lang   string

	Clients            *repository.Clients
	Assets             *repository.Collection[models.Asset]
	Articles           *repository.Collection[models.Article]
	Interventions      *repository.Collection[models.Intervention]
	WorkSessions       *repository.Collection[models.WorkSession]
	Services           *repository.StringList
	Anomalies          *repository.StringList
	ChecklistTemplates *repository.CategoryTemplates
	CategoryAnomalies  *repository.CategoryTemplates

	Notifications *notify.Feed
	Sessions      *session.Manager
	Sync          *syncer.Engine

	technicians []models.Technician
	persist     *persister
	ready       atomic.Bool
	background  sync.WaitGroup

	cfgMu        sync.RWMutex
	remoteURL    string
	creds        syncer.Credentials
	defaultCreds syncer.Credentials

	openRemote  syncer.TableFactory
	registry    prometheus.Registerer
	syncTimeout time.Duration
}

type Option func(*App)

func WithClock(c clockwork.Clock) Option { return func(a *App) { a.clock = c } }

func WithLogger(l *zap.Logger) Option { return func(a *App) { a.logger = l } }

func WithLanguage(lang string) Option { return func(a *App) { a.lang = lang } }

// WithRemote selects how the remote is reached for given credentials.
func WithRemote(open syncer.TableFactory) Option { return func(a *App) { a.openRemote = open } }

// WithRegistry registers the app metrics on reg.
func WithRegistry(reg prometheus.Registerer) Option { return func(a *App) { a.registry = reg } }

// WithSyncTimeout bounds every push and download.
func WithSyncTimeout(d time.Duration) Option { return func(a *App) { a.syncTimeout = d } }

// WithDefaultCredentials is used when no credentials were ever stored.
func WithDefaultCredentials(c syncer.Credentials) Option {
	return func(a *App) { a.defaultCreds = c }
}

// New builds an App over store. Call Load before using it.
func New(store kvstore.Store, opts ...Option) *App {
	a := &App{
		store:       store,
		clock:       clockwork.NewRealClock(),
		logger:      zap.NewNop(),
		lang:        i18n.DefaultLang,
		technicians: seed.Technicians(),
		syncTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.openRemote == nil {
		a.openRemote = RESTRemote(a.logger)
	}

	var syncMetrics *metrics.SyncMetrics
	var storeMetrics *metrics.StoreMetrics
	if a.registry != nil {
		syncMetrics = metrics.NewSyncMetrics(a.registry)
		storeMetrics = metrics.NewStoreMetrics(a.registry)
	}

	a.Clients = repository.NewClients(a.clock)
	a.Assets = repository.NewCollection[models.Asset](kvstore.Assets, a.clock)
	a.Articles = repository.NewCollection[models.Article](kvstore.Articles, a.clock)
	a.Interventions = repository.NewCollection[models.Intervention](kvstore.Interventions, a.clock)
	a.WorkSessions = repository.NewCollection[models.WorkSession](kvstore.WorkSessions, a.clock)
	a.Services = repository.NewStringList(kvstore.Services)
	a.Anomalies = repository.NewStringList(kvstore.Anomalies)
	a.ChecklistTemplates = repository.NewCategoryTemplates(kvstore.ChecklistTemplates)
	a.CategoryAnomalies = repository.NewCategoryTemplates(kvstore.CategoryAnomalies)

	a.Notifications = notify.NewFeed(a.clock, seed.Notifications()...)
	a.Sessions = session.NewManager(a.WorkSessions, a.Interventions,
		session.WithClock(a.clock),
		session.WithNotifier(a.Notifications),
		session.WithTechnicians(a.technicians),
		session.WithLanguage(a.lang),
		session.WithLogger(a.logger.Named("session")),
	)
	a.Sync = syncer.New(a.openRemote, a.Credentials, []syncer.Binding{
		syncer.Bind(remote.Interventions, a.Interventions),
		syncer.Bind(remote.Clients, a.Clients.Collection),
		syncer.Bind(remote.Assets, a.Assets),
		syncer.BindSessions(remote.WorkSessions, a.WorkSessions),
	},
		syncer.WithNotifier(a.Notifications),
		syncer.WithMetrics(syncMetrics),
		syncer.WithLogger(a.logger.Named("sync")),
		syncer.WithLanguage(a.lang),
		syncer.WithClock(a.clock),
	)
	a.persist = newPersister(store, a.logger.Named("store"), storeMetrics)
	return a
}

// Now is the current time on the app clock.
func (a *App) Now() time.Time { return a.clock.Now() }

// Ready reports whether Load has completed.
func (a *App) Ready() bool { return a.ready.Load() }

func (a *App) gate() error {
	if !a.ready.Load() {
		return ErrLoading
	}
	return nil
}

// Technicians returns the static technician reference set.
func (a *App) Technicians() []models.Technician {
	out := make([]models.Technician, len(a.technicians))
	copy(out, a.technicians)
	return out
}

// Flush waits for background synchronization and pending store writes.
func (a *App) Flush() {
	a.background.Wait()
	a.persist.flush()
}
