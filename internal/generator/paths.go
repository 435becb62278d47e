package generator

import (
	"path"
	"strings"

	"github.com/goliatone/go-folio/internal/i18n"
)

// outputPath maps a locale-neutral route to the file emitted for one locale:
// default-locale pages live at the tree root, other locales under their
// prefix directory. Every page renders as a directory index so web servers
// need no rewrite rules.
func outputPath(route string, locale i18n.Locale) string {
	clean := strings.Trim(strings.TrimSpace(route), "/")

	if locale.IsDefault() {
		if clean == "" {
			return "index.html"
		}
		return path.Join(clean, "index.html")
	}

	segments := []string{}
	if clean != "" {
		segments = strings.Split(clean, "/")
		// A route that already leads with the locale segment is not
		// double-prefixed.
		if strings.EqualFold(segments[0], locale.String()) {
			segments = segments[1:]
		}
	}

	if len(segments) == 0 {
		return path.Join(locale.String(), "index.html")
	}
	return path.Join(locale.String(), path.Join(segments...), "index.html")
}
