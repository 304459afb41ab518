package models

// Asset is a piece of equipment installed at a client site.
type Asset struct {
	ID           string `json:"id"`
	ClientID     int    `json:"clientId"`
	Type         string `json:"tipo"`
	Serial       string `json:"matricola,omitempty"`
	Location     string `json:"ubicazione,omitempty"`
	Expiry       string `json:"scadenza"`
	LastRevision string `json:"dataUltimaRevisione,omitempty"`
	Category     string `json:"categoria,omitempty"`
	Note         string `json:"note,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (a Asset) RecordID() string        { return a.ID }
func (a Asset) RecordUpdatedAt() string { return a.UpdatedAt }

func (a Asset) Stamped(ts string) Asset {
	a.UpdatedAt = ts
	return a
}

// IsExpired reports whether the expiry date lies strictly before today
// (both as YYYY-MM-DD strings). Assets without an expiry never expire.
func (a Asset) IsExpired(today string) bool {
	return a.Expiry != "" && a.Expiry < today
}

// Article is a catalog entry, independent of clients and sessions.
type Article struct {
	ID          string `json:"id"`
	Category    string `json:"categoria"`
	Description string `json:"descrizione"`
	Note        string `json:"note"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

func (a Article) RecordID() string        { return a.ID }
func (a Article) RecordUpdatedAt() string { return a.UpdatedAt }

func (a Article) Stamped(ts string) Article {
	a.UpdatedAt = ts
	return a
}

// Technician is static reference data and is never synchronized.
type Technician struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Color string `json:"color"`
}
