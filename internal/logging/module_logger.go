package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	rootModule      = "folio"
	i18nModule      = "folio.i18n"
	contentModule   = "folio.content"
	navModule       = "folio.nav"
	generatorModule = "folio.generator"
)

const (
	fieldLocale = "locale"
	fieldRoute  = "route"
	fieldOutput = "output"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// I18NLogger returns the logger namespace reserved for the translation resolver.
func I18NLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, i18nModule)
}

// ContentLogger returns the logger namespace reserved for content loading.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// NavLogger returns the logger namespace reserved for navigation building.
func NavLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navModule)
}

// GeneratorLogger returns the logger namespace reserved for static builds.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// WithBuildContext enriches the provided logger with common build fields such
// as locale, route, and output path. Empty values are ignored.
func WithBuildContext(logger interfaces.Logger, locale, route, output string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(route); trimmed != "" {
		fields[fieldRoute] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldOutput] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
