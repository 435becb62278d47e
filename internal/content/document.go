package content

import (
	"time"

	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/google/uuid"
)

// Page groups the per-locale renditions of one site page under a canonical
// slug. The English rendition is the base; German is optional and falls back
// to it during builds, mirroring the string-lookup degradation policy.
type Page struct {
	ID       uuid.UUID
	Slug     string
	Route    string
	Template string
	Weight   int

	Translations map[i18n.Locale]*Translation
}

// Translation is one locale's rendition of a page.
type Translation struct {
	Locale       i18n.Locale
	Title        string
	Summary      string
	Tags         []string
	Date         time.Time
	Draft        bool
	Body         []byte
	HTML         string
	SourcePath   string
	LastModified time.Time
}

// Rendition returns the translation for the requested locale, degrading to
// the default locale when the locale-specific document was never authored.
func (p *Page) Rendition(locale i18n.Locale) *Translation {
	if p == nil {
		return nil
	}
	if tr, ok := p.Translations[locale]; ok && tr != nil {
		return tr
	}
	return p.Translations[i18n.DefaultLocale]
}

// HasLocale reports whether the page was authored in the given locale.
func (p *Page) HasLocale(locale i18n.Locale) bool {
	if p == nil {
		return false
	}
	_, ok := p.Translations[locale]
	return ok
}
