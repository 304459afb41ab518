package app

import (
	"cmp"
	"slices"

	"github.com/diewo77/go-interventions/internal/models"
)

// ExpiryGroup summarizes the assets of one client that are expired or about
// to expire.
type ExpiryGroup struct {
	ClientID   int            `json:"clientId"`
	Client     *models.Client `json:"client,omitempty"`
	Expired    int            `json:"expiredCount"`
	Expiring   int            `json:"expiringCount"`
	EarliestOn string         `json:"minDate"`
}

// ExpiringAssets groups per client the assets whose expiry falls before
// today plus days, most urgent client first. At most limit groups are
// returned; limit <= 0 means no limit.
func (a *App) ExpiringAssets(days, limit int) []ExpiryGroup {
	now := a.clock.Now()
	today := models.FormatDate(now)
	horizon := models.FormatDate(now.AddDate(0, 0, days))

	byClient := map[int]*ExpiryGroup{}
	var order []int
	for _, as := range a.Assets.All() {
		if as.Expiry == "" || as.Expiry > horizon {
			continue
		}
		g, ok := byClient[as.ClientID]
		if !ok {
			g = &ExpiryGroup{ClientID: as.ClientID, EarliestOn: as.Expiry}
			if c, found := a.Clients.GetByID(as.ClientID); found {
				g.Client = &c
			}
			byClient[as.ClientID] = g
			order = append(order, as.ClientID)
		}
		if as.IsExpired(today) {
			g.Expired++
		} else {
			g.Expiring++
		}
		if as.Expiry < g.EarliestOn {
			g.EarliestOn = as.Expiry
		}
	}

	out := make([]ExpiryGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *byClient[id])
	}
	slices.SortStableFunc(out, func(x, y ExpiryGroup) int { return cmp.Compare(x.EarliestOn, y.EarliestOn) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
