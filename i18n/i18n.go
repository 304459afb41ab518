// Package i18n holds the user-facing message catalog.
package i18n

import (
	"fmt"
	"strings"
)

// DefaultLang is used when no supported language is requested.
const DefaultLang = "it"

var catalog = map[string]map[string]string{
	"it": {
		"required":                "Obbligatorio",
		"client.added.title":      "Cliente Aggiunto",
		"session.scheduled.title": "Pianificato",
		"session.scheduled.msg":   "Intervento per %s",
		"session.closed.title":    "Intervento Concluso",
		"session.closed.msg":      "Dati salvati.",
		"session.saved.title":     "Sessione Salvata",
		"session.saved.msg":       "Salvataggio locale effettuato.",
		"sync.done.title":         "Sync Completato",
		"sync.done.msg":           "Dati sincronizzati.",
		"sync.push.ok":            "Sincronizzazione Riuscita.",
		"sync.download.ok":        "Dati scaricati correttamente.",
		"sync.not_configured":     "Configurazione Cloud mancante.",
		"sync.client_invalid":     "Client non valido.",
		"sync.failed":             "Errore DB: %s",
		"sync.failed.title":       "Sync Fallito",
	},
	"en": {
		"required":                "Required",
		"client.added.title":      "Client Added",
		"session.scheduled.title": "Scheduled",
		"session.scheduled.msg":   "Visit for %s",
		"session.closed.title":    "Visit Completed",
		"session.closed.msg":      "Data saved.",
		"session.saved.title":     "Session Saved",
		"session.saved.msg":       "Saved locally.",
		"sync.done.title":         "Sync Completed",
		"sync.done.msg":           "Data synchronized.",
		"sync.push.ok":            "Synchronization succeeded.",
		"sync.download.ok":        "Data downloaded.",
		"sync.not_configured":     "Cloud configuration missing.",
		"sync.client_invalid":     "Invalid client.",
		"sync.failed":             "DB error: %s",
		"sync.failed.title":       "Sync Failed",
	},
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if _, ok := catalog[base]; ok {
			return base
		}
	}
	return DefaultLang
}

// T translates code. Unknown languages fall back to DefaultLang and unknown
// codes are returned as is.
func T(lang, code string) string {
	if msgs, ok := catalog[lang]; ok {
		if s, ok := msgs[code]; ok {
			return s
		}
	}
	if s, ok := catalog[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Tf translates code and formats it with args.
func Tf(lang, code string, args ...any) string {
	return fmt.Sprintf(T(lang, code), args...)
}
