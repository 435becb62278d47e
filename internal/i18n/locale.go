package i18n

import "strings"

// Locale identifies one of the site's supported languages. The set is closed:
// adding a locale means shipping its dictionaries with the binary.
type Locale string

const (
	// LocaleEN is the default locale; its routes carry no path prefix.
	LocaleEN Locale = "en"
	// LocaleDE is the German locale, addressed through the /de path prefix.
	LocaleDE Locale = "de"
)

// DefaultLocale is used whenever no locale can be derived from the input.
const DefaultLocale = LocaleEN

// Locales returns the supported locales in stable order, default first.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleDE}
}

// ParseLocale maps a locale code onto the supported set. Unknown codes report
// false alongside the default so callers can degrade silently.
func ParseLocale(code string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(code))) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleDE:
		return LocaleDE, true
	}
	return DefaultLocale, false
}

// OrDefault coerces unknown locale codes to the default locale.
func OrDefault(code string) Locale {
	locale, _ := ParseLocale(code)
	return locale
}

// Alternate returns the other member of the two-locale set.
func (l Locale) Alternate() Locale {
	if l == LocaleDE {
		return LocaleEN
	}
	return LocaleDE
}

// IsDefault reports whether the locale is the site default.
func (l Locale) IsDefault() bool {
	return l == DefaultLocale
}

func (l Locale) String() string {
	return string(l)
}
