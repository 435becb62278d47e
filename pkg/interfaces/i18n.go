package interfaces

// Translator resolves dot-notation dictionary keys into display strings.
// Implementations never fail: a missing translation degrades to the default
// locale and finally to the key itself.
type Translator interface {
	Translate(locale, key string) string
}

// MissingTranslationHandler is invoked when a key resolves to the raw-key
// fallback, letting hosts surface gaps without interrupting rendering.
type MissingTranslationHandler func(locale, key string)
