package nav

import (
	"errors"
	"strings"

	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Dictionary addresses for the navigation source list and its labels.
const (
	itemsKey    = "common.nav.items"
	labelPrefix = "common.nav."
	langPrefix  = "common.lang."
)

// ErrTranslatorRequired indicates the nav service was built without a resolver.
var ErrTranslatorRequired = errors.New("nav: translation service is required")

// Item is one rendered navigation entry: a localized label and a
// locale-prefixed destination.
type Item struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

// LanguageOption describes one entry of the language switcher.
type LanguageOption struct {
	Locale i18n.Locale
	Label  string
	Href   string
	Active bool
}

// Service builds the site navigation from the `common.nav.items` dictionary
// list: order preserved from source, labels resolved through the translation
// fallback chain, destinations localized for the requested locale.
type Service struct {
	translator *i18n.Service
	routes     *RouteResolver
	logger     interfaces.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithLogger injects the navigation logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRouteResolver enables go-urlkit named-route resolution for items that
// carry a `route` field instead of a literal href.
func WithRouteResolver(routes *RouteResolver) Option {
	return func(s *Service) {
		s.routes = routes
	}
}

// NewService constructs the navigation builder.
func NewService(translator *i18n.Service, opts ...Option) (*Service, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}
	s := &Service{
		translator: translator,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Items returns the navigation entries for a locale. An absent or malformed
// source list yields an empty sequence rather than an error.
func (s *Service) Items(locale i18n.Locale) []Item {
	return s.ItemsFor(locale, "")
}

// ItemsFor behaves like Items and additionally marks the entry matching the
// current path as active. The comparison ignores locale prefixes so the same
// entry stays active across languages.
func (s *Service) ItemsFor(locale i18n.Locale, currentPath string) []Item {
	value, ok := s.translator.Value(itemsKey, locale)
	if !ok {
		return []Item{}
	}
	entries, ok := value.List()
	if !ok {
		s.logger.Warn("nav.items.malformed", "key", itemsKey)
		return []Item{}
	}

	current := ""
	if strings.TrimSpace(currentPath) != "" {
		current = i18n.StripPrefix(currentPath)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		key, ok := entry.At("key").String()
		if !ok || strings.TrimSpace(key) == "" {
			s.logger.Warn("nav.item.skipped", "reason", "missing key")
			continue
		}

		href := s.itemHref(entry, locale)
		items = append(items, Item{
			Key:    key,
			Label:  s.translator.T(labelPrefix+key, locale),
			Href:   i18n.Path(href, locale),
			Active: current != "" && current == i18n.StripPrefix(href),
		})
	}
	return items
}

// LanguageOptions builds the language switcher for the current page: one
// option per supported locale, each linking to the same path under that
// locale, labelled with the language's native name.
func (s *Service) LanguageOptions(current i18n.Locale, currentPath string) []LanguageOption {
	locales := i18n.Locales()
	options := make([]LanguageOption, 0, len(locales))
	for _, locale := range locales {
		options = append(options, LanguageOption{
			Locale: locale,
			Label:  s.translator.T(langPrefix+locale.String(), locale),
			Href:   i18n.Path(currentPath, locale),
			Active: locale == current,
		})
	}
	return options
}

func (s *Service) itemHref(entry i18n.Value, locale i18n.Locale) string {
	if s.routes != nil {
		if route, ok := entry.At("route").String(); ok && strings.TrimSpace(route) != "" {
			if resolved, err := s.routes.Resolve(route, locale, nil); err == nil && resolved != "" {
				return resolved
			} else if err != nil {
				s.logger.Warn("nav.route.unresolved", "route", route, "error", err)
			}
		}
	}
	href, _ := entry.At("href").String()
	if strings.TrimSpace(href) == "" {
		return "/"
	}
	return href
}
