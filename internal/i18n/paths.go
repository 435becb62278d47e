package i18n

import "strings"

// localePrefix is the URL prefix carried by non-default-locale routes.
const localePrefix = "/" + string(LocaleDE)

// FromPath derives the locale from a URL pathname. Only an exact match of the
// first non-empty segment selects the German locale; unknown or garbage
// segments silently resolve to the default.
func FromPath(pathname string) Locale {
	for _, segment := range strings.Split(pathname, "/") {
		if segment == "" {
			continue
		}
		if segment == string(LocaleDE) {
			return LocaleDE
		}
		return DefaultLocale
	}
	return DefaultLocale
}

// Path rewrites a URL pathname for the target locale: the input is normalized
// to a leading separator, any existing locale prefix is stripped by exact
// prefix match, and the prefix is re-added iff the target is non-default.
// The root maps specially: "/" for the default locale, "/de" otherwise.
func Path(path string, target Locale) string {
	stripped := StripPrefix(path)
	if target.IsDefault() {
		return stripped
	}
	if stripped == "/" {
		return localePrefix
	}
	return localePrefix + stripped
}

// AlternatePath rewrites the current path under the opposite locale, so a
// language switcher can link to the same page in the other language.
func AlternatePath(currentPath string, current Locale) string {
	return Path(currentPath, current.Alternate())
}

// StripPrefix normalizes a pathname to a leading separator and removes the
// locale prefix when present. Exact prefix match only: "/december" keeps its
// first segment.
func StripPrefix(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == localePrefix {
		return "/"
	}
	if rest, ok := strings.CutPrefix(path, localePrefix+"/"); ok {
		return "/" + rest
	}
	return path
}
