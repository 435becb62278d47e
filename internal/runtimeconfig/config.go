package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-folio/internal/i18n"
)

var (
	// ErrContentDirRequired indicates no source directory for page documents.
	ErrContentDirRequired = errors.New("folio config: content directory is required")
	// ErrGeneratorOutputDirRequired indicates the build has nowhere to write.
	ErrGeneratorOutputDirRequired = errors.New("folio config: generator output directory is required")
	// ErrBaseURLInvalid indicates the site base URL lacks a scheme.
	ErrBaseURLInvalid = errors.New("folio config: base URL must start with http:// or https://")
	// ErrDefaultLocaleUnsupported indicates the configured default locale is
	// outside the supported set.
	ErrDefaultLocaleUnsupported = errors.New("folio config: default locale is not supported")
	// ErrLoggingProviderUnknown indicates an unrecognized logging provider.
	ErrLoggingProviderUnknown = errors.New("folio config: logging provider is invalid")
	// ErrLoggingLevelInvalid indicates an unrecognized logging level.
	ErrLoggingLevelInvalid = errors.New("folio config: logging level is invalid")
	// ErrLoggingFormatInvalid indicates an unrecognized logging format.
	ErrLoggingFormatInvalid = errors.New("folio config: logging format is invalid")
)

// Config aggregates runtime settings for the site module. Fields use simple
// types so host applications can populate them from any source.
type Config struct {
	Site       SiteConfig
	Content    ContentConfig
	Navigation NavigationConfig
	Generator  GeneratorConfig
	Theme      ThemeConfig
	Logging    LoggingConfig
}

// SiteConfig captures site-wide identity settings.
type SiteConfig struct {
	BaseURL       string
	DefaultLocale string
}

// ContentConfig captures filesystem behaviour for Markdown ingestion.
type ContentConfig struct {
	Dir string
}

// NavigationConfig captures routing configuration for menu URL resolution.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based route resolver.
type URLKitResolverConfig struct {
	DefaultGroup string
	LocaleGroups map[string]string
}

// GeneratorConfig captures behaviour for the static site build.
type GeneratorConfig struct {
	OutputDir       string
	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
	AssetsDir       string
	TemplatesDir    string
}

// ThemeConfig points at an optional go-theme directory.
type ThemeConfig struct {
	Path              string
	Name              string
	Variant           string
	CSSVariablePrefix string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns defaults for a conventional repository layout:
// documents under content/, artifacts under dist/, console logging.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			DefaultLocale: i18n.DefaultLocale.String(),
		},
		Content: ContentConfig{
			Dir: "content",
		},
		Navigation: NavigationConfig{},
		Generator: GeneratorConfig{
			OutputDir:       "dist",
			CleanBuild:      true,
			GenerateSitemap: true,
			GenerateRobots:  true,
			AssetsDir:       "assets",
		},
		Theme: ThemeConfig{
			CSSVariablePrefix: "--folio-",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
		return ErrGeneratorOutputDirRequired
	}
	if base := strings.TrimSpace(cfg.Site.BaseURL); base != "" {
		if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
			return fmt.Errorf("%w: %s", ErrBaseURLInvalid, base)
		}
	}
	if code := strings.TrimSpace(cfg.Site.DefaultLocale); code != "" {
		if locale, ok := i18n.ParseLocale(code); !ok || !locale.IsDefault() {
			return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, code)
		}
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
