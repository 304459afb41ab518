package models

import "slices"

// SessionStatus is the lifecycle state of a WorkSession.
type SessionStatus string

const (
	SessionStatusPlanned SessionStatus = "PLANNED"
	SessionStatusOpen    SessionStatus = "OPEN"
	SessionStatusClosed  SessionStatus = "CLOSED"
)

// WorkSession is one visit to a client. Draft interventions accumulate while
// the session is open and are copied into the intervention log on close.
type WorkSession struct {
	ID             string        `json:"id"`
	ClientID       int           `json:"clientId"`
	StartTimestamp string        `json:"startTimestamp"`
	Status         SessionStatus `json:"status"`

	ScheduledDate    string   `json:"scheduledDate,omitempty"`
	AssignedTechID   string   `json:"assignedTechId,omitempty"`
	AssignedTechIDs  []string `json:"assignedTechIds,omitempty"`
	AssignedTechName string   `json:"assignedTechName,omitempty"`

	GeneralNotes             string `json:"generalNotes"`
	TechnicianSignature      string `json:"technicianSignature"`
	TechnicianSignatureImage string `json:"technicianSignatureImage"`
	ClientSignature          string `json:"clientSignature"`
	ClientSignatureImage     string `json:"clientSignatureImage"`

	DraftInterventions []Intervention `json:"draftInterventions"`
	InterventionIDs    []string       `json:"interventionIds"`
	UpdatedAt          string         `json:"updatedAt,omitempty"`
}

func (s WorkSession) RecordID() string        { return s.ID }
func (s WorkSession) RecordUpdatedAt() string { return s.UpdatedAt }

func (s WorkSession) Stamped(ts string) WorkSession {
	s.UpdatedAt = ts
	return s
}

// IsOpen returns true if the session is currently being worked.
func (s WorkSession) IsOpen() bool { return s.Status == SessionStatusOpen }

// IsClosed returns true once the session has been finalized.
func (s WorkSession) IsClosed() bool { return s.Status == SessionStatusClosed }

// IsDue reports whether a planned session is scheduled on or before today.
func (s WorkSession) IsDue(today string) bool {
	return s.Status == SessionStatusPlanned && s.ScheduledDate != "" && s.ScheduledDate <= today
}

// Clone returns a deep copy of s.
func (s WorkSession) Clone() WorkSession {
	s.AssignedTechIDs = slices.Clone(s.AssignedTechIDs)
	s.InterventionIDs = slices.Clone(s.InterventionIDs)
	drafts := make([]Intervention, len(s.DraftInterventions))
	for i, d := range s.DraftInterventions {
		drafts[i] = d.Clone()
	}
	if s.DraftInterventions == nil {
		drafts = nil
	}
	s.DraftInterventions = drafts
	return s
}

// SessionPatch is a partial update of the metadata of a session. Nil fields
// are left untouched. Status, identity and drafts are not patchable.
type SessionPatch struct {
	GeneralNotes             *string  `json:"generalNotes,omitempty"`
	TechnicianSignature      *string  `json:"technicianSignature,omitempty"`
	TechnicianSignatureImage *string  `json:"technicianSignatureImage,omitempty"`
	ClientSignature          *string  `json:"clientSignature,omitempty"`
	ClientSignatureImage     *string  `json:"clientSignatureImage,omitempty"`
	ScheduledDate            *string  `json:"scheduledDate,omitempty"`
	AssignedTechIDs          []string `json:"assignedTechIds,omitempty"`
}

// Apply merges p into s and returns the result.
func (p *SessionPatch) Apply(s WorkSession) WorkSession {
	if p == nil {
		return s
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.GeneralNotes, p.GeneralNotes)
	set(&s.TechnicianSignature, p.TechnicianSignature)
	set(&s.TechnicianSignatureImage, p.TechnicianSignatureImage)
	set(&s.ClientSignature, p.ClientSignature)
	set(&s.ClientSignatureImage, p.ClientSignatureImage)
	set(&s.ScheduledDate, p.ScheduledDate)
	if p.AssignedTechIDs != nil {
		s.AssignedTechIDs = slices.Clone(p.AssignedTechIDs)
		s.AssignedTechID = ""
		if len(p.AssignedTechIDs) > 0 {
			s.AssignedTechID = p.AssignedTechIDs[0]
		}
	}
	return s
}

// String is a convenience for building patches.
func String(v string) *string { return &v }
