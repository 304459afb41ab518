package app

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/metrics"
	"go.uber.org/zap"
)

// persister writes collection snapshots in the background. Only the latest
// pending snapshot of a collection is written; a failed write is logged and
// superseded by the next change.
type persister struct {
	store   kvstore.Store
	logger  *zap.Logger
	metrics *metrics.StoreMetrics

	mu      sync.Mutex
	pending map[string][]byte
	running map[string]bool
	wg      sync.WaitGroup
}

func newPersister(store kvstore.Store, logger *zap.Logger, m *metrics.StoreMetrics) *persister {
	return &persister{
		store:   store,
		logger:  logger,
		metrics: m,
		pending: map[string][]byte{},
		running: map[string]bool{},
	}
}

// enqueue serializes snapshot right away and schedules its write.
func (p *persister) enqueue(name string, snapshot any) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		p.logger.Error("snapshot encoding failed", zap.String("collection", name), zap.Error(err))
		return
	}

	p.mu.Lock()
	p.pending[name] = data
	if p.running[name] {
		p.mu.Unlock()
		return
	}
	p.running[name] = true
	p.wg.Add(1)
	p.mu.Unlock()

	go p.drain(name)
}

func (p *persister) drain(name string) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		data, ok := p.pending[name]
		if !ok {
			p.running[name] = false
			p.mu.Unlock()
			return
		}
		delete(p.pending, name)
		p.mu.Unlock()

		err := p.store.Set(context.Background(), name, data)
		p.metrics.Write(name, err)
		if err != nil {
			p.logger.Warn("snapshot write failed", zap.String("collection", name), zap.Error(err))
		}
	}
}

func (p *persister) flush() {
	p.wg.Wait()
}
