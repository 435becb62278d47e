package i18n

import (
	"errors"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// ErrBundleRequired indicates the resolver was constructed without dictionaries.
var ErrBundleRequired = errors.New("i18n: bundle is required")

// Service resolves dictionary keys for a requested locale with the three-tier
// fallback policy: requested locale, default locale, identity. Every operation
// is a pure function over the immutable bundle; none of them can fail.
type Service struct {
	bundle    *Bundle
	logger    interfaces.Logger
	onMissing interfaces.MissingTranslationHandler
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithLogger injects the logger used for missing-translation diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMissingHandler registers a callback invoked whenever a string lookup
// degrades to the raw-key fallback.
func WithMissingHandler(fn interfaces.MissingTranslationHandler) Option {
	return func(s *Service) {
		s.onMissing = fn
	}
}

// NewService constructs a resolver over the provided bundle.
func NewService(bundle *Bundle, opts ...Option) (*Service, error) {
	if bundle == nil {
		return nil, ErrBundleRequired
	}
	s := &Service{
		bundle: bundle,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// T resolves a dot-notation key to a display string. A key missing from the
// requested locale retries against the default locale; a key missing from both
// returns unchanged so rendering always has some text.
func (s *Service) T(key string, locale Locale) string {
	if value, ok := s.bundle.Lookup(locale, key).String(); ok {
		return value
	}
	if locale != DefaultLocale {
		if value, ok := s.bundle.Lookup(DefaultLocale, key).String(); ok {
			return value
		}
	}

	s.logger.Debug("i18n.translate.missing", "key", key, "locale", locale.String())
	if s.onMissing != nil {
		s.onMissing(locale.String(), key)
	}
	return key
}

// Value resolves a key to a structured value (list or nested mapping). The
// default-locale fallback is applied once; a key absent from both dictionaries
// reports the absent marker rather than the raw key, since there is no
// sensible string substitute for structured data.
func (s *Service) Value(key string, locale Locale) (Value, bool) {
	if value := s.bundle.Lookup(locale, key); !value.IsAbsent() {
		return value, true
	}
	if locale != DefaultLocale {
		if value := s.bundle.Lookup(DefaultLocale, key); !value.IsAbsent() {
			return value, true
		}
	}
	return Absent(), false
}

// Strings resolves a key to the string items of a list value, preserving
// order. Non-string items are skipped; a missing list yields an empty slice.
func (s *Service) Strings(key string, locale Locale) []string {
	value, ok := s.Value(key, locale)
	if !ok {
		return nil
	}
	items, ok := value.List()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.String(); ok {
			out = append(out, str)
		}
	}
	return out
}

// Translate satisfies interfaces.Translator. Unknown locale codes degrade to
// the default locale, matching the path-derivation policy.
func (s *Service) Translate(locale, key string) string {
	return s.T(key, OrDefault(locale))
}

// DefaultLocale reports the resolver's fallback locale code.
func (s *Service) DefaultLocale() string {
	return DefaultLocale.String()
}

var _ interfaces.Translator = (*Service)(nil)
