// Package session implements the work-session lifecycle.
//
//	PLANNED --Create(due)--> OPEN --Close--> CLOSED
//	                          ^                |
//	                          +----Reopen------+
//
// At most one session per client is OPEN at any time. Create returns the
// existing OPEN session, and Reopen refuses to open a second one. Sessions
// opened concurrently on other devices are settled by SettleOpen on merge.
package session

import (
	"slices"
	"strings"
	"sync"

	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Notifier receives user-facing events.
type Notifier interface {
	Add(typ models.NotificationType, title, message string) models.Notification
}

// Manager owns the WorkSession state machine. Closing a session writes its
// drafts into the intervention log.
type Manager struct {
	sessions      *repository.Collection[models.WorkSession]
	interventions *repository.Collection[models.Intervention]

	technicians []models.Technician
	notifier    Notifier
	clock       clockwork.Clock
	lang        string
	logger      *zap.Logger

	// mu serializes operations that touch both collections.
	mu sync.Mutex
}

type Option func(*Manager)

func WithClock(c clockwork.Clock) Option { return func(m *Manager) { m.clock = c } }

func WithNotifier(n Notifier) Option { return func(m *Manager) { m.notifier = n } }

func WithLanguage(lang string) Option { return func(m *Manager) { m.lang = lang } }

func WithLogger(l *zap.Logger) Option { return func(m *Manager) { m.logger = l } }

// WithTechnicians sets the reference list used to resolve assigned names.
func WithTechnicians(t []models.Technician) Option {
	return func(m *Manager) { m.technicians = slices.Clone(t) }
}

func NewManager(sessions *repository.Collection[models.WorkSession], interventions *repository.Collection[models.Intervention], opts ...Option) *Manager {
	m := &Manager{
		sessions:      sessions,
		interventions: interventions,
		clock:         clockwork.NewRealClock(),
		lang:          i18n.DefaultLang,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create returns the client's OPEN session if there is one. Otherwise it
// promotes a PLANNED session due today or earlier, or starts a new one.
func (m *Manager) Create(clientID int) models.WorkSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	ts := models.FormatTimestamp(now)
	today := models.FormatDate(now)

	var out models.WorkSession
	m.sessions.Mutate(func(items []models.WorkSession) ([]models.WorkSession, bool) {
		if i := findOpen(items, clientID); i >= 0 {
			out = items[i]
			return items, false
		}
		if i := slices.IndexFunc(items, func(s models.WorkSession) bool {
			return s.ClientID == clientID && s.IsDue(today)
		}); i >= 0 {
			s := items[i]
			s.Status = models.SessionStatusOpen
			s.StartTimestamp = ts
			s.UpdatedAt = ts
			items[i] = s
			out = s
			m.logger.Info("planned session started", zap.String("session_id", s.ID), zap.Int("client_id", clientID))
			return items, true
		}
		out = models.WorkSession{
			ID:                 newID("SESS"),
			ClientID:           clientID,
			StartTimestamp:     ts,
			Status:             models.SessionStatusOpen,
			DraftInterventions: []models.Intervention{},
			InterventionIDs:    []string{},
			UpdatedAt:          ts,
		}
		m.logger.Info("session opened", zap.String("session_id", out.ID), zap.Int("client_id", clientID))
		return append(items, out), true
	})
	return out.Clone()
}

// Schedule plans a visit. Several PLANNED sessions may exist for one client.
func (m *Manager) Schedule(clientID int, date string, techIDs []string) models.WorkSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := m.technicianNames(techIDs)
	s := models.WorkSession{
		ID:                 newID("PLAN"),
		ClientID:           clientID,
		Status:             models.SessionStatusPlanned,
		ScheduledDate:      date,
		AssignedTechIDs:    slices.Clone(techIDs),
		AssignedTechName:   names,
		DraftInterventions: []models.Intervention{},
		InterventionIDs:    []string{},
	}
	if len(techIDs) > 0 {
		s.AssignedTechID = techIDs[0]
	}
	s = m.sessions.Add(s)
	m.notify(models.NotificationSuccess, i18n.T(m.lang, "session.scheduled.title"), i18n.Tf(m.lang, "session.scheduled.msg", names))
	return s.Clone()
}

// Update merges patch into the client's OPEN session. It reports false when
// the client has no OPEN session.
func (m *Manager) Update(clientID int, patch *models.SessionPatch) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	return m.sessions.Mutate(func(items []models.WorkSession) ([]models.WorkSession, bool) {
		i := findOpen(items, clientID)
		if i < 0 {
			return items, false
		}
		s := patch.Apply(items[i].Clone())
		if patch != nil && patch.AssignedTechIDs != nil {
			s.AssignedTechName = m.technicianNames(s.AssignedTechIDs)
		}
		s.UpdatedAt = ts
		items[i] = s
		return items, true
	})
}

// SaveIntervention upserts iv into the drafts of the session, keyed by asset,
// and merges patch into the session. A draft saved again for the same asset
// keeps its id unless iv carries one. Closed sessions are left untouched.
func (m *Manager) SaveIntervention(sessionID string, iv models.Intervention, patch *models.SessionPatch) (models.Intervention, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	draft := iv.Clone()
	draft.UpdatedAt = ts
	if draft.Timestamp == "" {
		draft.Timestamp = ts
	}

	ok := m.sessions.Mutate(func(items []models.WorkSession) ([]models.WorkSession, bool) {
		i := findByID(items, sessionID)
		if i < 0 || items[i].IsClosed() {
			return items, false
		}
		s := items[i].Clone()
		j := slices.IndexFunc(s.DraftInterventions, func(d models.Intervention) bool { return d.AssetID == draft.AssetID })
		if draft.ID == "" {
			draft.ID = "INT-" + uuid.NewString()[:8]
			if j >= 0 {
				draft.ID = s.DraftInterventions[j].ID
			}
		}
		if j >= 0 {
			s.DraftInterventions[j] = draft
		} else {
			s.DraftInterventions = append(s.DraftInterventions, draft)
		}
		s = patch.Apply(s)
		s.InterventionIDs = draftIDs(s.DraftInterventions)
		s.UpdatedAt = ts
		items[i] = s
		return items, true
	})
	if !ok {
		return models.Intervention{}, false
	}
	return draft.Clone(), true
}

// Close finalizes the session: metadata from patch is merged, every draft is
// stamped with the final notes and signatures and written at the head of the
// intervention log. Log rows already carrying a draft's id are replaced, so
// a session never appears twice in the log. Drafts stay attached to the
// closed session. Closing an unknown or already closed session is a no-op.
func (m *Manager) Close(sessionID string, patch *models.SessionPatch) ([]models.Intervention, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	var final []models.Intervention
	ok := m.sessions.Mutate(func(items []models.WorkSession) ([]models.WorkSession, bool) {
		i := findByID(items, sessionID)
		if i < 0 || items[i].IsClosed() {
			return items, false
		}
		s := patch.Apply(items[i].Clone())
		s.Status = models.SessionStatusClosed
		s.UpdatedAt = ts
		items[i] = s

		final = make([]models.Intervention, 0, len(s.DraftInterventions))
		for _, d := range s.DraftInterventions {
			f := d.Clone()
			f.GeneralNotes = s.GeneralNotes
			f.TechnicianSignature = s.TechnicianSignature
			f.TechnicianSignatureImage = s.TechnicianSignatureImage
			f.ClientSignature = s.ClientSignature
			f.ClientSignatureImage = s.ClientSignatureImage
			f.UpdatedAt = ts
			final = append(final, f)
		}
		return items, true
	})
	if !ok {
		return nil, false
	}

	m.emit(final)
	m.logger.Info("session closed", zap.String("session_id", sessionID), zap.Int("interventions", len(final)))
	m.notify(models.NotificationSuccess, i18n.T(m.lang, "session.closed.title"), i18n.T(m.lang, "session.closed.msg"))
	return final, true
}

// Reopen flips the client's most recently closed session (by position) back
// to OPEN and retracts the rows it wrote to the intervention log. It is a
// no-op when the client already has an OPEN session or none was closed.
func (m *Manager) Reopen(clientID int) (models.WorkSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	var target models.WorkSession
	ok := m.sessions.Mutate(func(items []models.WorkSession) ([]models.WorkSession, bool) {
		if findOpen(items, clientID) >= 0 {
			return items, false
		}
		last := -1
		for i, s := range items {
			if s.ClientID == clientID && s.IsClosed() {
				last = i
			}
		}
		if last < 0 {
			return items, false
		}
		s := items[last]
		s.Status = models.SessionStatusOpen
		s.UpdatedAt = ts
		items[last] = s
		target = s
		return items, true
	})
	if !ok {
		return models.WorkSession{}, false
	}

	m.retract(draftIDs(target.DraftInterventions))
	m.logger.Info("session reopened", zap.String("session_id", target.ID), zap.Int("client_id", clientID))
	return target.Clone(), true
}

// Delete removes the session. Interventions it already wrote stay in the log.
func (m *Manager) Delete(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Delete(sessionID)
}

// GetOpen returns the client's OPEN session.
func (m *Manager) GetOpen(clientID int) (models.WorkSession, bool) {
	items := m.sessions.All()
	if i := findOpen(items, clientID); i >= 0 {
		return items[i].Clone(), true
	}
	return models.WorkSession{}, false
}

func (m *Manager) Get(sessionID string) (models.WorkSession, bool) {
	s, ok := m.sessions.Get(sessionID)
	return s.Clone(), ok
}

func (m *Manager) All() []models.WorkSession {
	return m.sessions.All()
}

// ForClient returns every session of one client, in storage order.
func (m *Manager) ForClient(clientID int) []models.WorkSession {
	var out []models.WorkSession
	for _, s := range m.sessions.All() {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out
}

// Planned returns the PLANNED sessions ordered by scheduled date.
func (m *Manager) Planned() []models.WorkSession {
	var out []models.WorkSession
	for _, s := range m.sessions.All() {
		if s.Status == models.SessionStatusPlanned {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b models.WorkSession) int {
		return strings.Compare(a.ScheduledDate, b.ScheduledDate)
	})
	return out
}

// emit writes rows at the head of the log, replacing rows with the same id.
func (m *Manager) emit(rows []models.Intervention) {
	if len(rows) == 0 {
		return
	}
	ids := idSet(draftIDs(rows))
	m.interventions.Mutate(func(items []models.Intervention) ([]models.Intervention, bool) {
		kept := slices.DeleteFunc(items, func(it models.Intervention) bool { return ids[it.ID] })
		return append(slices.Clone(rows), kept...), true
	})
}

func (m *Manager) retract(ids []string) {
	if len(ids) == 0 {
		return
	}
	set := idSet(ids)
	m.interventions.Mutate(func(items []models.Intervention) ([]models.Intervention, bool) {
		kept := slices.DeleteFunc(items, func(it models.Intervention) bool { return set[it.ID] })
		return kept, len(kept) != len(items)
	})
}

func (m *Manager) technicianNames(ids []string) string {
	var names []string
	for _, t := range m.technicians {
		if slices.Contains(ids, t.ID) {
			names = append(names, t.Name)
		}
	}
	return strings.Join(names, ", ")
}

func (m *Manager) notify(typ models.NotificationType, title, message string) {
	if m.notifier != nil {
		m.notifier.Add(typ, title, message)
	}
}

func (m *Manager) now() string {
	return models.FormatTimestamp(m.clock.Now())
}

func findOpen(items []models.WorkSession, clientID int) int {
	return slices.IndexFunc(items, func(s models.WorkSession) bool {
		return s.ClientID == clientID && s.IsOpen()
	})
}

func findByID(items []models.WorkSession, id string) int {
	return slices.IndexFunc(items, func(s models.WorkSession) bool { return s.ID == id })
}

func draftIDs(drafts []models.Intervention) []string {
	ids := make([]string, len(drafts))
	for i, d := range drafts {
		ids[i] = d.ID
	}
	return ids
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
