package session

import "github.com/diewo77/go-interventions/internal/models"

// SettleOpen leaves at most one OPEN session per client. Two devices can each
// open a session for the same client while offline; after a merge the one with
// the latest updatedAt stays OPEN (the greater id on a tie) and the others go
// back to PLANNED, keeping their drafts, scheduled for their original date or
// the day of ts. Demoted sessions are stamped with ts so the outcome reaches
// the other devices on the next push. It returns the number demoted.
func SettleOpen(items []models.WorkSession, ts string) ([]models.WorkSession, int) {
	winner := map[int]int{}
	for i, s := range items {
		if !s.IsOpen() {
			continue
		}
		j, ok := winner[s.ClientID]
		if !ok || wins(s, items[j]) {
			winner[s.ClientID] = i
		}
	}

	today := models.FormatDate(models.ParseTimestamp(ts).Local())
	demoted := 0
	for i, s := range items {
		if !s.IsOpen() || winner[s.ClientID] == i {
			continue
		}
		s = s.Clone()
		s.Status = models.SessionStatusPlanned
		if s.ScheduledDate == "" {
			s.ScheduledDate = today
		}
		s.UpdatedAt = ts
		items[i] = s
		demoted++
	}
	return items, demoted
}

func wins(a, b models.WorkSession) bool {
	ta, tb := models.ParseTimestamp(a.UpdatedAt), models.ParseTimestamp(b.UpdatedAt)
	if ta.Equal(tb) {
		return a.ID > b.ID
	}
	return ta.After(tb)
}
