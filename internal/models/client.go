package models

import "strconv"

// Client is a customer whose sites are visited. IDs are assigned as max+1.
// JSON names follow the remote wire format shared with the other devices.
type Client struct {
	ID              int    `json:"id"`
	Name            string `json:"nome"`
	Address         string `json:"indirizzo"`
	VATNumber       string `json:"piva,omitempty"`
	SDICode         string `json:"codiceUnivoco,omitempty"`
	PEC             string `json:"pec,omitempty"`
	Contact         string `json:"referente"`
	Phone           string `json:"telefono"`
	Email           string `json:"email"`
	Contract        string `json:"commessa,omitempty"`
	ContractID      string `json:"idCommessa,omitempty"`
	Site            string `json:"struttura,omitempty"`
	SiteAddress     string `json:"indirizzoStruttura,omitempty"`
	SiteID          string `json:"idStruttura,omitempty"`
	ContractContact string `json:"referenteCommessa,omitempty"`
	ContractPhone   string `json:"recapitoCommessa,omitempty"`
	PaymentTerms    string `json:"pagamento,omitempty"`
	Note            string `json:"note,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

func (c Client) RecordID() string        { return strconv.Itoa(c.ID) }
func (c Client) RecordUpdatedAt() string { return c.UpdatedAt }

// Valid reports whether c carries an assigned id.
func (c Client) Valid() bool { return c.ID > 0 }

// Stamped returns a copy of c carrying the given modification time.
func (c Client) Stamped(ts string) Client {
	c.UpdatedAt = ts
	return c
}
