package notify

import (
	"testing"
	"time"

	"github.com/diewo77/go-interventions/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_AddIsNewestFirst(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	f := NewFeed(clock)

	first := f.Add(models.NotificationInfo, "Cliente Aggiunto", "Hotel")
	second := f.Add(models.NotificationSuccess, "Sync Completato", "ok")

	all := f.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "2024-05-01T08:00:00.000Z", first.Timestamp)
	assert.False(t, first.Read)
}

func TestFeed_MarkReadAndUnread(t *testing.T) {
	f := NewFeed(nil)
	n := f.Add(models.NotificationWarning, "Scadenza", "A04")
	f.Add(models.NotificationInfo, "Info", "")

	assert.Equal(t, 2, f.Unread())
	assert.True(t, f.MarkRead(n.ID))
	assert.False(t, f.MarkRead("NOT-missing"))
	assert.Equal(t, 1, f.Unread())
}

func TestFeed_Clear(t *testing.T) {
	f := NewFeed(nil, models.Notification{ID: "NOT-001"})
	f.Clear()
	assert.Empty(t, f.All())
	assert.Equal(t, 0, f.Unread())
}
