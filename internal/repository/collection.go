// Package repository holds the in-memory entity collections.
//
// Every mutation is committed under the collection lock and then reported to
// an optional Observer with a copy of the new contents. Persistence hangs off
// that observer; it never gates a commit.
package repository

import (
	"slices"
	"sync"

	"github.com/diewo77/go-interventions/internal/models"
	"github.com/jonboulle/clockwork"
)

// Record is implemented by every entity kept in a Collection.
type Record[T any] interface {
	RecordID() string
	RecordUpdatedAt() string
	Stamped(ts string) T
}

// Observer receives the name of a collection and a copy of its contents after
// each committed change. It is called with the collection lock held and must
// not call back into the collection.
type Observer func(name string, snapshot any)

// Collection is an ordered, id-addressed set of entities.
type Collection[T Record[T]] struct {
	name     string
	clock    clockwork.Clock
	mu       sync.RWMutex
	items    []T
	observer Observer
}

// NewCollection creates an empty collection. A nil clock selects the real clock.
func NewCollection[T Record[T]](name string, clock clockwork.Clock) *Collection[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Collection[T]{name: name, clock: clock}
}

func (c *Collection[T]) Name() string { return c.name }

// Observe installs the change observer.
func (c *Collection[T]) Observe(fn Observer) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// Now returns the current modification timestamp.
func (c *Collection[T]) Now() string {
	return models.FormatTimestamp(c.clock.Now())
}

// All returns the items in order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneItems(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := indexOf(c.items, id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends item stamped with the current time.
func (c *Collection[T]) Add(item T) T {
	item = item.Stamped(c.Now())
	c.Mutate(func(items []T) ([]T, bool) {
		return append(items, item), true
	})
	return item
}

// Prepend inserts item, stamped, at the head of the collection.
func (c *Collection[T]) Prepend(item T) T {
	item = item.Stamped(c.Now())
	c.Mutate(func(items []T) ([]T, bool) {
		return append([]T{item}, items...), true
	})
	return item
}

// Update replaces the item carrying the same id and stamps it. It returns
// false when no such item exists.
func (c *Collection[T]) Update(item T) bool {
	item = item.Stamped(c.Now())
	return c.Mutate(func(items []T) ([]T, bool) {
		i := indexOf(items, item.RecordID())
		if i < 0 {
			return items, false
		}
		items[i] = item
		return items, true
	})
}

// Delete removes the item with the given id. There is no tombstone.
func (c *Collection[T]) Delete(id string) bool {
	return c.Mutate(func(items []T) ([]T, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		return slices.Delete(items, i, i+1), true
	})
}

// AddBulk appends all items, each stamped with the same instant.
func (c *Collection[T]) AddBulk(list []T) []T {
	stamped := stampAll(list, c.Now())
	if len(stamped) == 0 {
		return stamped
	}
	c.Mutate(func(items []T) ([]T, bool) {
		return append(items, stamped...), true
	})
	return stamped
}

// PrependBulk inserts all items, stamped with one instant, at the head.
func (c *Collection[T]) PrependBulk(list []T) []T {
	stamped := stampAll(list, c.Now())
	if len(stamped) == 0 {
		return stamped
	}
	c.Mutate(func(items []T) ([]T, bool) {
		return append(slices.Clone(stamped), items...), true
	})
	return stamped
}

// Replace swaps the whole contents without stamping and notifies the observer.
func (c *Collection[T]) Replace(items []T) {
	c.Mutate(func([]T) ([]T, bool) {
		return slices.Clone(items), true
	})
}

// Load swaps the whole contents without stamping and without notifying. It
// is used to hydrate the collection from the local store.
func (c *Collection[T]) Load(items []T) {
	c.mu.Lock()
	c.items = slices.Clone(items)
	c.mu.Unlock()
}

// Mutate runs fn atomically over a copy of the items. When fn reports a
// change its result becomes the new contents and the observer is notified.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, changed := fn(slices.Clone(c.items))
	if !changed {
		return false
	}
	c.items = next
	if c.observer != nil {
		c.observer(c.name, cloneItems(next))
	}
	return true
}

func indexOf[T Record[T]](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.RecordID() == id })
}

// cloneItems never returns nil so empty collections serialize as [].
func cloneItems[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func stampAll[T Record[T]](list []T, ts string) []T {
	out := make([]T, len(list))
	for i, it := range list {
		out[i] = it.Stamped(ts)
	}
	return out
}
