package repository

import (
	"strconv"

	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/jonboulle/clockwork"
)

// Clients assigns integer ids as max(existing)+1. Ids are unique within one
// process; concurrent devices may still collide (single-writer assumption).
type Clients struct {
	*Collection[models.Client]
}

func NewClients(clock clockwork.Clock) *Clients {
	return &Clients{Collection: NewCollection[models.Client](kvstore.Clients, clock)}
}

// Add appends c under the next id. Any id already set on c is replaced.
func (r *Clients) Add(c models.Client) models.Client {
	c = c.Stamped(r.Now())
	r.Mutate(func(items []models.Client) ([]models.Client, bool) {
		c.ID = maxClientID(items) + 1
		return append(items, c), true
	})
	return c
}

// AddBulk assigns sequential ids starting at max(existing)+1 to every item
// and stamps them all with one instant.
func (r *Clients) AddBulk(list []models.Client) []models.Client {
	stamped := stampAll(list, r.Now())
	if len(stamped) == 0 {
		return stamped
	}
	r.Mutate(func(items []models.Client) ([]models.Client, bool) {
		next := maxClientID(items) + 1
		for i := range stamped {
			stamped[i].ID = next + i
		}
		return append(items, stamped...), true
	})
	return stamped
}

func (r *Clients) GetByID(id int) (models.Client, bool) {
	return r.Get(strconv.Itoa(id))
}

func (r *Clients) DeleteByID(id int) bool {
	return r.Delete(strconv.Itoa(id))
}

// NextID returns the id the next Add would assign.
func (r *Clients) NextID() int {
	return maxClientID(r.All()) + 1
}

func maxClientID(items []models.Client) int {
	highest := 0
	for _, c := range items {
		highest = max(highest, c.ID)
	}
	return highest
}
