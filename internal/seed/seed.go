// Package seed provides the built-in reference data used when the local
// store holds nothing (first start) or cannot be read.
//
// Every function returns a fresh copy so callers may mutate the result.
package seed

import (
	"fmt"

	"github.com/diewo77/go-interventions/internal/models"
)

// GenericCategory is the fallback category for assets without one.
const GenericCategory = "Generico"

func Clients() []models.Client {
	return []models.Client{
		{
			ID: 1, Name: "Hotel Bellavista SPA", Address: "Via Roma 10, Milano",
			Contact: "Mario Rossi", Phone: "02 12345678", Email: "info@hotelbella.it",
			Contract: "MAN-2024-001", ContractID: "CNT-8821", Site: "Edificio Principale", SiteID: "ED-01",
			PaymentTerms: "Bonifico Bancario 30gg D.F.", Note: "Accesso carraio dal retro",
		},
		{
			ID: 2, Name: "Industria Meccanica SRL", Address: "Zona Ind.le Sud, Torino",
			Contact: "Ing. Bianchi", Phone: "011 98765432", Email: "safety@indmecc.com",
			Contract: "MAN-2024-045", ContractID: "CNT-9901", Site: "Capannone B", SiteID: "CP-B",
			PaymentTerms: "Ri.Ba. 60gg D.F.", Note: "Richiesto DPI udito per accesso reparti",
		},
		{
			ID: 3, Name: "Scuola Elementare Rodari", Address: "Piazza Garibaldi, Roma",
			Contact: "Dirigente Verdi", Phone: "06 55554444", Email: "segreteria@scuola.it",
			Contract: "PUB-2023-112", ContractID: "CNT-7743", Site: "Plesso Scolastico", SiteID: "SC-01",
			PaymentTerms: "Bonifico Bancario 60gg D.F.", Note: "Orari accesso: 14:00 - 18:00",
		},
		{
			ID: 99, Name: "Ospedale San Raffaele", Address: "Via Olgettina 60, Milano",
			Contact: "Ing. Neri (Dir. Tecnica)", Phone: "02 26430000", Email: "tecnico@hsr.it",
			Contract: "OSP-2024-MAXI", ContractID: "CNT-HSR-01", Site: "Padiglione A, B, C", SiteID: "CMP-HSR",
			PaymentTerms: "Bonifico Bancario 90gg D.F.",
			Note:         "ATTENZIONE: Accesso reparti sterili solo con autorizzazione. Contattare caposala per chiavi locali tecnici.",
		},
	}
}

func Technicians() []models.Technician {
	return []models.Technician{
		{ID: "T1", Name: "Mario Rossi", Email: "mario@sicurant.it", Color: "#3b82f6"},
		{ID: "T2", Name: "Luigi Verdi", Email: "luigi@sicurant.it", Color: "#10b981"},
		{ID: "T3", Name: "Giulia Bianchi", Email: "giulia@sicurant.it", Color: "#8b5cf6"},
		{ID: "T4", Name: "Squadra Esterna", Email: "team@sicurant.it", Color: "#f59e0b"},
	}
}

func Articles() []models.Article {
	return []models.Article{
		{ID: "EST-001", Category: "Estintori", Description: "Estintore Polvere 6kg", Note: "Standard per uffici"},
		{ID: "EST-002", Category: "Estintori", Description: "Estintore Co2 5kg", Note: "Per quadri elettrici"},
		{ID: "IDR-001", Category: "Idranti", Description: "Idrante UNI 45", Note: "Manichetta 20m"},
		{ID: "POR-120", Category: "Porte REI / US", Description: "Porta Tagliafuoco REI 120", Note: "Maniglione antipanico"},
		{ID: "RIL-001", Category: "Rivelazione", Description: "Rilevatore Ottico Fumi", Note: "Sensore puntiforme"},
		{ID: "MED-001", Category: "Pronto Soccorso", Description: "Cassetta PS All.1", Note: "Aziende Gruppo A"},
		{ID: "EFC-001", Category: "EFC", Description: "Evacuatore Fumo", Note: "Apertura pneumatica"},
	}
}

func Assets() []models.Asset {
	assets := []models.Asset{
		{ID: "A01", ClientID: 1, Type: "Estintore Polvere 6kg", Serial: "MAT-2021-001", Location: "Hall Ingresso", Expiry: "2024-12-01", Category: "Estintori", Note: "Verificare sigillo"},
		{ID: "A02", ClientID: 1, Type: "Estintore Co2 5kg", Serial: "MAT-2021-002", Location: "Sala Server Piano -1", Expiry: "2024-11-15", Category: "Estintori", Note: "Attenzione accesso limitato"},
		{ID: "A03", ClientID: 2, Type: "Idrante UNI 45", Serial: "IDR-2019-55", Location: "Esterno Piazzale Nord", Expiry: "2025-01-10", Category: "Idranti", Note: "Cassetta da sostituire"},
		{ID: "A03-B", ClientID: 2, Type: "Cassetta Primo Soccorso", Serial: "MED-001", Location: "Infermeria", Expiry: "2025-03-01", Category: "Pronto Soccorso", Note: "Controllare scadenza iodio"},
		{ID: "A04", ClientID: 3, Type: "Porta Tagliafuoco REI 120", Serial: "PRT-001", Location: "Piano Terra - Palestra", Expiry: "2024-10-30", Category: "Porte REI / US", Note: "Chiudiporta difettoso"},
		{ID: "A05", ClientID: 3, Type: "Rilevatore Ottico Fumi", Serial: "SENS-992", Location: "Corridoio Aule 1° Piano", Expiry: "2024-12-20", Category: "Rivelazione", Note: "Testare centrale"},
	}
	return append(assets, hospitalAssets()...)
}

// hospitalAssets generates the large inventory of client 99.
func hospitalAssets() []models.Asset {
	floors := []string{
		"Piano -2 (Locali Tecnici)", "Piano -1 (Servizi)", "Piano Terra", "Piano 1 (Degenza)",
		"Piano 2 (Degenza)", "Piano 3 (Sale Operatorie)", "Piano 4 (Uffici)", "Piano 5 (Terrazza)",
	}
	counter := 1000
	next := func() string {
		id := fmt.Sprintf("H-%d", counter)
		counter++
		return id
	}

	assets := []models.Asset{
		{ID: next(), ClientID: 99, Type: "Stazione Pompaggio Principale", Serial: "PUMP-MAIN-01", Location: "Piano -2 (Locali Tecnici)", Expiry: "2024-12-31", Category: "Pompaggio", Note: "Verificare pressione mandata"},
		{ID: next(), ClientID: 99, Type: "Stazione Pompaggio Riserva", Serial: "PUMP-RES-02", Location: "Piano -2 (Locali Tecnici)", Expiry: "2024-12-31", Category: "Pompaggio", Note: "Prova avviamento diesel"},
	}
	for i, pad := range []string{"Padiglione A", "Padiglione B", "Padiglione C"} {
		assets = append(assets, models.Asset{
			ID: next(), ClientID: 99, Type: "Centrale Rilevazione Fumi", Serial: fmt.Sprintf("CRF-%d", i+1),
			Location: "Piano Terra - Reception " + pad, Expiry: "2024-11-30", Category: "Rivelazione", Note: "Testare batterie tampone",
		})
	}
	for f, floor := range floors {
		for i := 0; i < 50; i++ {
			typ := "Estintore Polvere 6kg"
			if i%3 == 0 {
				typ = "Estintore Co2 5kg"
			}
			assets = append(assets, models.Asset{
				ID: next(), ClientID: 99, Type: typ, Serial: fmt.Sprintf("EXT-%d-%d", f, i),
				Location: fmt.Sprintf("%s - Corridoio %c", floor, 'A'+i%4), Expiry: "2025-01-15", Category: "Estintori",
			})
		}
		for i := 0; i < 40; i++ {
			assets = append(assets, models.Asset{
				ID: next(), ClientID: 99, Type: "Idrante UNI 45", Serial: fmt.Sprintf("HYD-%d-%d", f, i),
				Location: fmt.Sprintf("%s - Nicchia %d", floor, i+1), Expiry: "2025-02-20", Category: "Idranti", Note: "Srotolare manichetta completa",
			})
		}
		for i := 0; i < 50; i++ {
			assets = append(assets, models.Asset{
				ID: next(), ClientID: 99, Type: "Porta Tagliafuoco REI 120", Serial: fmt.Sprintf("REI-%d-%d", f, i),
				Location: fmt.Sprintf("%s - Scala Antincendio %c", floor, 'A'+i%3), Expiry: "2024-10-10", Category: "Porte REI / US", Note: "Ingrassare cerniere",
			})
		}
	}
	return assets
}

func Interventions() []models.Intervention {
	return []models.Intervention{
		{
			ID: "INT-001", Timestamp: "2024-11-18T10:30:00Z",
			ClientID: 1, ClientName: "Hotel Bellavista SPA",
			AssetID: "A01", AssetName: "Estintore Polvere 6kg",
			Services:            []string{"Controllo Periodico - Par. 4.5 UNI 9994-1"},
			Anomalies:           []string{"Accesso ostruito"},
			Notes:               "Intervento regolare. Segnalato accesso ostruito da scatole.",
			GeneralNotes:        "Accesso regolare.",
			TechnicianSignature: "Mario Tecnico",
			ClientSignature:     "Resp. Hotel",
		},
	}
}

func Notifications() []models.Notification {
	return []models.Notification{
		{ID: "NOT-001", Title: "Aggiornamento Procedura", Message: "Nuove linee guida per la manutenzione idranti disponibili nella sezione Documenti.", Type: models.NotificationInfo, Timestamp: "2024-11-20T09:00:00Z"},
		{ID: "NOT-002", Title: "Scadenza Imminente", Message: "Asset A04 (Porta REI) in scadenza tra 5 giorni presso Scuola Rodari.", Type: models.NotificationWarning, Timestamp: "2024-11-19T14:30:00Z", Read: true},
	}
}

func Services() []string {
	return []string{
		"Revisione Semestrale (UNI 9994-1)",
		"Revisione Programmata (UNI 9994-1)",
		"Collaudo (UNI 9994-1 / EN 671-3)",
		"Sostituzione Manichetta",
		"Prova di tenuta statica",
		"Ricarica Estinguente",
	}
}

func Anomalies() []string {
	return []string{
		"Accesso ostruito / non visibile",
		"Cartellino manutenzione mancante",
		"Cartellino illeggibile/pieno",
		"Segnaletica assente",
		"Segnaletica errata/scaduta",
		"Ancoraggio precario / instabile",
		"Installazione non a regola d'arte",
		"Matricola illeggibile",
	}
}

func PaymentMethods() []string {
	return []string{
		"Rimessa Diretta",
		"Contanti",
		"Bonifico Bancario 30gg D.F.",
		"Bonifico Bancario 60gg D.F.",
		"Bonifico Bancario 90gg D.F.",
		"Bonifico Bancario 30gg D.F. F.M.",
		"Bonifico Bancario 60gg D.F. F.M.",
		"Bonifico Bancario 90gg D.F. F.M.",
		"Ri.Ba. 30gg D.F.",
		"Ri.Ba. 60gg D.F.",
		"Carta di Credito",
		"Altro",
	}
}

// CategoryStandards maps a category to the technical standard it follows.
func CategoryStandards() map[string]string {
	return map[string]string{
		"Estintori":       "UNI 9994-1:2013",
		"Idranti":         "UNI 10779 / UNI EN 671-3",
		"Porte REI / US":  "UNI 11473-1 / UNI 1125",
		"Rivelazione":     "UNI 11224:2019",
		"Pompaggio":       "UNI 12845 / UNI 10779",
		"EFC":             "UNI 9494-2 / UNI 9494-3",
		"Autorespiratori": "UNI EN 529:2006",
		"Pronto Soccorso": "D.M. 388/03",
		GenericCategory:   "D.M. 1/9/2021 (Regola dell'Arte)",
	}
}
