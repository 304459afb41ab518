package models

import "slices"

// Intervention is the record of the work done on one asset during a visit.
// ClientName and AssetName are copies taken at visit time and are never
// refreshed from the live client/asset.
type Intervention struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	ClientID   int      `json:"clientId"`
	ClientName string   `json:"clientName"`
	AssetID    string   `json:"assetId"`
	AssetName  string   `json:"assetName"`
	Services   []string `json:"services"`
	Anomalies  []string `json:"anomalies"`
	Notes      string   `json:"notes"`

	// Copied from the session when it is closed.
	GeneralNotes             string `json:"generalNotes,omitempty"`
	TechnicianSignature      string `json:"technicianSignature,omitempty"`
	TechnicianSignatureImage string `json:"technicianSignatureImage,omitempty"`
	ClientSignature          string `json:"clientSignature,omitempty"`
	ClientSignatureImage     string `json:"clientSignatureImage,omitempty"`

	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (i Intervention) RecordID() string        { return i.ID }
func (i Intervention) RecordUpdatedAt() string { return i.UpdatedAt }

func (i Intervention) Stamped(ts string) Intervention {
	i.UpdatedAt = ts
	return i
}

// Clone returns a copy that shares no slices with i.
func (i Intervention) Clone() Intervention {
	i.Services = slices.Clone(i.Services)
	i.Anomalies = slices.Clone(i.Anomalies)
	return i
}
