// Package notify keeps the user-facing notification feed.
package notify

import (
	"slices"
	"sync"

	"github.com/diewo77/go-interventions/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Feed is an append-only, newest-first log of notifications. It is neither
// persisted nor synchronized.
type Feed struct {
	mu    sync.RWMutex
	items []models.Notification
	clock clockwork.Clock
}

func NewFeed(clock clockwork.Clock, initial ...models.Notification) *Feed {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Feed{clock: clock, items: slices.Clone(initial)}
}

// Add records a new unread notification at the head of the feed.
func (f *Feed) Add(typ models.NotificationType, title, message string) models.Notification {
	n := models.Notification{
		ID:        "NOT-" + uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: models.FormatTimestamp(f.clock.Now()),
	}
	f.mu.Lock()
	f.items = append([]models.Notification{n}, f.items...)
	f.mu.Unlock()
	return n
}

// MarkRead flags one notification as read.
func (f *Feed) MarkRead(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

func (f *Feed) Clear() {
	f.mu.Lock()
	f.items = nil
	f.mu.Unlock()
}

func (f *Feed) All() []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Unread counts notifications not yet marked read.
func (f *Feed) Unread() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, it := range f.items {
		if !it.Read {
			n++
		}
	}
	return n
}
