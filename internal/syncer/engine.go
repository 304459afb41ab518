// Package syncer reconciles the local collections with the shared remote
// tables using full-table, last-write-wins synchronization.
package syncer

import (
	"context"
	"errors"
	"sync"

	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/metrics"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/remote"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNotConfigured = errors.New("not_configured")

// Credentials locate and authorize the remote store.
type Credentials struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Complete reports whether both parts are set.
func (c Credentials) Complete() bool { return c.URL != "" && c.Key != "" }

// Result is the outcome reported for push and download.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TableFactory opens the remote for the given credentials.
type TableFactory func(Credentials) (remote.Table, error)

// Notifier receives user-facing events.
type Notifier interface {
	Add(typ models.NotificationType, title, message string) models.Notification
}

type Option func(*Engine)

func WithNotifier(n Notifier) Option { return func(e *Engine) { e.notifier = n } }

func WithMetrics(m *metrics.SyncMetrics) Option { return func(e *Engine) { e.metrics = m } }

func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.logger = l } }

func WithLanguage(lang string) Option { return func(e *Engine) { e.lang = lang } }

func WithClock(c clockwork.Clock) Option { return func(e *Engine) { e.clock = c } }

// Engine runs download-and-merge and push against the remote tables.
// Credentials are read on every call so the latest configuration applies.
type Engine struct {
	open     TableFactory
	creds    func() Credentials
	bindings []Binding

	notifier Notifier
	metrics  *metrics.SyncMetrics
	logger   *zap.Logger
	lang     string
	clock    clockwork.Clock

	// auto-sync edge state
	autoMu    sync.Mutex
	autoLast  Credentials
	autoFired bool
}

// New builds an engine over bindings. Push visits them in the given order.
func New(open TableFactory, creds func() Credentials, bindings []Binding, opts ...Option) *Engine {
	e := &Engine{
		open:     open,
		creds:    creds,
		bindings: bindings,
		logger:   zap.NewNop(),
		lang:     i18n.DefaultLang,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DownloadAndMerge fetches every remote table concurrently and merges it into
// the local collection. Tables merged before a failure stay merged.
func (e *Engine) DownloadAndMerge(ctx context.Context) Result {
	start := e.clock.Now()
	t, res, ok := e.connect()
	if !ok {
		e.metrics.Observe("download", false, e.clock.Since(start))
		return res
	}

	if err := e.download(ctx, t); err != nil {
		e.logger.Warn("download failed", zap.Error(err))
		e.metrics.Observe("download", false, e.clock.Since(start))
		return Result{Message: err.Error()}
	}

	e.logger.Info("download completed", zap.Duration("took", e.clock.Since(start)))
	e.metrics.Observe("download", true, e.clock.Since(start))
	return Result{Success: true, Message: i18n.T(e.lang, "sync.download.ok")}
}

// Push uploads the current local rows of every non-empty table and then runs
// a download to reconcile. A local row is not uploaded when the remote copy
// carries a strictly newer updatedAt; the download then adopts the remote one.
func (e *Engine) Push(ctx context.Context) Result {
	start := e.clock.Now()
	t, res, ok := e.connect()
	if !ok {
		e.metrics.Observe("push", false, e.clock.Since(start))
		return res
	}

	err := e.push(ctx, t)
	if err == nil {
		err = e.download(ctx, t)
	}
	if err != nil {
		e.logger.Warn("push failed", zap.Error(err))
		e.metrics.Observe("push", false, e.clock.Since(start))
		return Result{Message: i18n.Tf(e.lang, "sync.failed", err.Error())}
	}

	e.logger.Info("push completed", zap.Duration("took", e.clock.Since(start)))
	e.metrics.Observe("push", true, e.clock.Since(start))
	e.notify(models.NotificationSuccess, i18n.T(e.lang, "sync.done.title"), i18n.T(e.lang, "sync.done.msg"))
	return Result{Success: true, Message: i18n.T(e.lang, "sync.push.ok")}
}

// AutoSync runs one download when the application is ready and complete
// credentials are present, the first time that holds and again whenever the
// credentials change. It reports whether a download was attempted.
func (e *Engine) AutoSync(ctx context.Context, ready bool) (Result, bool) {
	creds := e.creds()
	active := ready && creds.Complete()

	e.autoMu.Lock()
	fire := active && (!e.autoFired || creds != e.autoLast)
	if active {
		e.autoLast = creds
	}
	e.autoFired = active
	e.autoMu.Unlock()

	if !fire {
		return Result{}, false
	}
	e.logger.Info("auto sync triggered")
	return e.DownloadAndMerge(ctx), true
}

func (e *Engine) connect() (remote.Table, Result, bool) {
	creds := e.creds()
	if !creds.Complete() {
		e.logger.Debug("sync skipped", zap.Error(ErrNotConfigured))
		return nil, Result{Message: i18n.T(e.lang, "sync.not_configured")}, false
	}
	t, err := e.open(creds)
	if err != nil {
		e.logger.Warn("remote client unavailable", zap.Error(err))
		return nil, Result{Message: i18n.T(e.lang, "sync.client_invalid")}, false
	}
	return t, Result{}, true
}

func (e *Engine) download(ctx context.Context, t remote.Table) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range e.bindings {
		g.Go(func() error {
			payloads, err := t.SelectAll(gctx, b.Table())
			if err != nil {
				return err
			}
			st := b.merge(payloads)
			e.metrics.AddRows(b.Table(), "adopted", st.Adopted)
			e.metrics.AddRows(b.Table(), "kept", st.Kept)
			e.metrics.AddRows(b.Table(), "invalid", st.Invalid)
			e.metrics.AddRows(b.Table(), "demoted", st.Demoted)
			if st.Demoted > 0 {
				e.logger.Warn("concurrent open sessions demoted", zap.String("table", b.Table()), zap.Int("rows", st.Demoted))
			}
			if st.Invalid > 0 {
				e.logger.Warn("remote rows skipped", zap.String("table", b.Table()), zap.Int("rows", st.Invalid))
			}
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) push(ctx context.Context, t remote.Table) error {
	for _, b := range e.bindings {
		if err := ctx.Err(); err != nil {
			return err
		}
		local, err := b.snapshot()
		if err != nil {
			return err
		}
		if len(local) == 0 {
			continue
		}

		payloads, err := t.SelectAll(ctx, b.Table())
		if err != nil {
			return err
		}
		remoteStamps := make(map[string]string, len(payloads))
		for _, p := range payloads {
			if r, err := b.stamp(p); err == nil {
				remoteStamps[r.ID] = r.UpdatedAt
			}
		}

		rows := make([]remote.Row, 0, len(local))
		for _, r := range local {
			if ts, ok := remoteStamps[r.ID]; ok && newer(ts, r.UpdatedAt) {
				continue
			}
			rows = append(rows, r.Row)
		}
		if err := t.Upsert(ctx, b.Table(), rows); err != nil {
			return err
		}
		e.metrics.AddRows(b.Table(), "pushed", len(rows))
		e.metrics.AddRows(b.Table(), "skipped", len(local)-len(rows))
	}
	return ctx.Err()
}

func (e *Engine) notify(typ models.NotificationType, title, message string) {
	if e.notifier != nil {
		e.notifier.Add(typ, title, message)
	}
}

