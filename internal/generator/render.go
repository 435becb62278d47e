package generator

import (
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/nav"
)

// TemplateContext is the data contract handed to TemplateRenderer
// implementations for each page/locale pair.
type TemplateContext struct {
	Site    SiteMetadata
	Page    PageRenderingContext
	Build   BuildMetadata
	Theme   ThemeContext
	Nav     NavContext
	Helpers TemplateHelpers
}

// SiteMetadata exposes locale-aware site information to templates.
type SiteMetadata struct {
	Title         string
	Description   string
	Author        string
	Keywords      []string
	BaseURL       string
	Locale        string
	DefaultLocale string
	Locales       []string
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
	Options     BuildOptions
}

// PageRenderingContext carries one page's resolved edition for a locale.
type PageRenderingContext struct {
	Page          *content.Page
	Translation   *content.Translation
	Locale        string
	Path          string
	AlternatePath string
	Fallback      bool
	Body          template.HTML
}

// NavContext carries the resolved navigation for the current page.
type NavContext struct {
	Items     []nav.Item
	Languages []nav.LanguageOption
}

// ThemeContext surfaces go-theme selection data to templates.
type ThemeContext struct {
	Name     string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(string) string
	Template func(string, string) string
}

// TemplateHelpers exposes translation and path helpers to template authors.
type TemplateHelpers struct {
	translator  *i18n.Service
	locale      i18n.Locale
	currentPath string
	baseURL     string
}

func newTemplateHelpers(translator *i18n.Service, locale i18n.Locale, currentPath, baseURL string) TemplateHelpers {
	return TemplateHelpers{
		translator:  translator,
		locale:      locale,
		currentPath: currentPath,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// T resolves a dot-notation translation key for the active locale.
func (h TemplateHelpers) T(key string) string {
	if h.translator == nil {
		return key
	}
	return h.translator.T(key, h.locale)
}

// Strings resolves a dot-notation key to a list of strings.
func (h TemplateHelpers) Strings(key string) []string {
	if h.translator == nil {
		return nil
	}
	return h.translator.Strings(key, h.locale)
}

// Locale returns the active locale code.
func (h TemplateHelpers) Locale() string {
	return h.locale.String()
}

// IsDefaultLocale reports whether the active locale is the site default.
func (h TemplateHelpers) IsDefaultLocale() bool {
	return h.locale.IsDefault()
}

// LocalizedPath rewrites a path so it stays inside the active locale.
func (h TemplateHelpers) LocalizedPath(path string) string {
	return i18n.Path(path, h.locale)
}

// AlternatePath returns the current page's path under the other locale.
func (h TemplateHelpers) AlternatePath() string {
	return i18n.AlternatePath(h.currentPath, h.locale)
}

// BaseURL returns the configured site base URL without a trailing slash.
func (h TemplateHelpers) BaseURL() string {
	return h.baseURL
}

// WithBaseURL prefixes the provided path with the configured base URL.
func (h TemplateHelpers) WithBaseURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return h.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if h.baseURL == "" {
		return path
	}
	return h.baseURL + path
}

// htmlBody marks the loader's Markdown-rendered HTML as safe for direct
// template interpolation. Page bodies are site-authored content, not user
// input.
func htmlBody(translation *content.Translation) template.HTML {
	if translation == nil {
		return ""
	}
	return template.HTML(translation.HTML)
}

// RenderedPage captures the rendered HTML output for one page edition.
type RenderedPage struct {
	PageID       uuid.UUID
	Locale       i18n.Locale
	Route        string
	Path         string
	Output       string
	Template     string
	HTML         string
	Fallback     bool
	LastModified time.Time
	Duration     time.Duration
}
