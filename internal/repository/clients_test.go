package repository

import (
	"testing"

	"github.com/diewo77/go-interventions/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClients_AddAssignsMaxPlusOne(t *testing.T) {
	clients := NewClients(clockwork.NewFakeClockAt(epoch))
	clients.Load([]models.Client{{ID: 1}, {ID: 99}, {ID: 3}})

	c := clients.Add(models.Client{Name: "Hotel Bellavista"})

	assert.Equal(t, 100, c.ID)
	assert.Equal(t, 101, clients.NextID())
}

func TestClients_AddIgnoresCollidingID(t *testing.T) {
	clients := NewClients(nil)
	first := clients.Add(models.Client{Name: "Scuola"})
	second := clients.Add(models.Client{ID: first.ID, Name: "Palestra"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	got, ok := clients.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Scuola", got.Name)
	assert.Equal(t, 2, clients.Len())
}

func TestClients_AddBulkAssignsSequentialIDs(t *testing.T) {
	clients := NewClients(clockwork.NewFakeClockAt(epoch))
	clients.Load([]models.Client{{ID: 4}})

	out := clients.AddBulk([]models.Client{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	require.Len(t, out, 3)
	assert.Equal(t, 5, out[0].ID)
	assert.Equal(t, 6, out[1].ID)
	assert.Equal(t, 7, out[2].ID)
	for _, c := range out {
		assert.Equal(t, "2024-05-01T09:00:00.000Z", c.UpdatedAt)
	}
	assert.Equal(t, 4, clients.Len())
}

func TestClients_AddBulkOnEmpty(t *testing.T) {
	clients := NewClients(nil)
	out := clients.AddBulk([]models.Client{{Name: "A"}})
	assert.Equal(t, 1, out[0].ID)
	assert.Empty(t, clients.AddBulk(nil))
}

func TestClients_DeleteByID(t *testing.T) {
	clients := NewClients(nil)
	clients.Load([]models.Client{{ID: 2}})
	assert.True(t, clients.DeleteByID(2))
	_, ok := clients.GetByID(2)
	assert.False(t, ok)
}
