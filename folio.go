// Package folio assembles a bilingual portfolio site from Markdown documents
// and embedded translation dictionaries, and renders it into a locale-prefixed
// static tree.
package folio

import (
	"context"
	"io/fs"
	"os"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	sitecmd "github.com/goliatone/go-folio/internal/commands/site"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/generator"
	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/gologger"
	"github.com/goliatone/go-folio/internal/nav"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Locale identifies one of the site's supported languages.
type Locale = i18n.Locale

// Supported locale constants, default first.
const (
	LocaleEN = i18n.LocaleEN
	LocaleDE = i18n.LocaleDE

	// DefaultLocale is used whenever no locale can be derived from the input.
	DefaultLocale = i18n.DefaultLocale
)

type (
	// TranslationService exports the dictionary resolver contract.
	TranslationService = i18n.Service
	// NavService exports the navigation builder contract.
	NavService = nav.Service
	// NavItem is one rendered navigation entry.
	NavItem = nav.Item
	// LanguageOption is one entry of the language switcher.
	LanguageOption = nav.LanguageOption
	// GeneratorService exports the static site generator contract.
	GeneratorService = generator.Service
	// BuildOptions narrows a single build invocation.
	BuildOptions = generator.BuildOptions
	// BuildResult summarizes one build.
	BuildResult = generator.BuildResult
	// Page groups the per-locale renditions of one site page.
	Page = content.Page
)

// LocaleFromPath derives the locale from a request path's first segment.
// Paths without a recognized prefix belong to the default locale.
func LocaleFromPath(path string) Locale {
	return i18n.FromPath(path)
}

// LocalizedPath rewrites a path so it addresses the target locale: the prefix
// is stripped for the default locale and added for any other.
func LocalizedPath(path string, target Locale) string {
	return i18n.Path(path, target)
}

// AlternatePath maps the current page's path onto the other locale, for
// language-switch links.
func AlternatePath(currentPath string, current Locale) string {
	return i18n.AlternatePath(currentPath, current)
}

// Module is the top level runtime facade: it owns the translation bundle and
// the services assembled from the configuration.
type Module struct {
	cfg        Config
	provider   interfaces.LoggerProvider
	contentFS  fs.FS
	translator *i18n.Service
	navigation *nav.Service
	loader     *content.Loader
	generator  *generator.Service

	buildHandler *sitecmd.BuildSiteHandler
	cleanHandler *sitecmd.CleanSiteHandler
}

// Option overrides module wiring, mainly for embedding and tests.
type Option func(*moduleDeps)

type moduleDeps struct {
	provider  interfaces.LoggerProvider
	contentFS fs.FS
	assetsFS  fs.FS
	renderer  interfaces.TemplateRenderer
}

// WithLoggerProvider replaces the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithContentFS overrides the filesystem backing Config.Content.Dir.
func WithContentFS(fsys fs.FS) Option {
	return func(d *moduleDeps) {
		d.contentFS = fsys
	}
}

// WithAssetsFS overrides the filesystem backing Config.Generator.AssetsDir.
func WithAssetsFS(fsys fs.FS) Option {
	return func(d *moduleDeps) {
		d.assetsFS = fsys
	}
}

// WithTemplateRenderer replaces the default HTML renderer.
func WithTemplateRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(d *moduleDeps) {
		d.renderer = renderer
	}
}

// New validates the configuration and assembles the module's services.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := moduleDeps{}
	for _, opt := range opts {
		opt(&deps)
	}

	provider := deps.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	translator, err := i18n.NewService(bundle, i18n.WithLogger(logging.I18NLogger(provider)))
	if err != nil {
		return nil, err
	}

	navOpts := []nav.Option{nav.WithLogger(logging.NavLogger(provider))}
	if cfg.Navigation.RouteConfig != nil {
		manager := urlkit.NewRouteManager(cfg.Navigation.RouteConfig)
		navOpts = append(navOpts, nav.WithRouteResolver(nav.NewRouteResolver(nav.RouteResolverOptions{
			Manager:      manager,
			DefaultGroup: cfg.Navigation.URLKit.DefaultGroup,
			LocaleGroups: cfg.Navigation.URLKit.LocaleGroups,
		})))
	}
	navigation, err := nav.NewService(translator, navOpts...)
	if err != nil {
		return nil, err
	}

	loader := content.NewLoader(content.WithLogger(logging.ContentLogger(provider)))

	contentFS := deps.contentFS
	if contentFS == nil {
		contentFS = os.DirFS(cfg.Content.Dir)
	}

	renderer := deps.renderer
	if renderer == nil && strings.TrimSpace(cfg.Generator.TemplatesDir) != "" {
		renderer, err = generator.NewHTMLRendererFromFS(os.DirFS(cfg.Generator.TemplatesDir))
		if err != nil {
			return nil, err
		}
	}

	generatorLogger := logging.GeneratorLogger(provider)
	gen, err := generator.New(generator.Config{
		OutputDir:       cfg.Generator.OutputDir,
		BaseURL:         cfg.Site.BaseURL,
		CleanBuild:      cfg.Generator.CleanBuild,
		GenerateSitemap: cfg.Generator.GenerateSitemap,
		GenerateRobots:  cfg.Generator.GenerateRobots,
		AssetsDir:       cfg.Generator.AssetsDir,
		Theming: generator.ThemingConfig{
			Path:              cfg.Theme.Path,
			Theme:             cfg.Theme.Name,
			Variant:           cfg.Theme.Variant,
			CSSVariablePrefix: cfg.Theme.CSSVariablePrefix,
		},
	}, generator.Dependencies{
		Pages:      &fsPageSource{loader: loader, fsys: contentFS},
		Translator: translator,
		Navigation: navigation,
		Renderer:   renderer,
		Logger:     generatorLogger,
		Assets:     deps.assetsFS,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		cfg:          cfg,
		provider:     provider,
		contentFS:    contentFS,
		translator:   translator,
		navigation:   navigation,
		loader:       loader,
		generator:    gen,
		buildHandler: sitecmd.NewBuildSiteHandler(gen, generatorLogger),
		cleanHandler: sitecmd.NewCleanSiteHandler(gen, generatorLogger),
	}, nil
}

// Translator returns the dictionary resolver.
func (m *Module) Translator() *TranslationService {
	return m.translator
}

// Nav returns the navigation builder.
func (m *Module) Nav() *NavService {
	return m.navigation
}

// Generator returns the static site generator.
func (m *Module) Generator() *GeneratorService {
	return m.generator
}

// T resolves a dot-notation translation key for the given locale.
func (m *Module) T(key string, locale Locale) string {
	return m.translator.T(key, locale)
}

// Pages loads the site's pages from the configured content directory.
func (m *Module) Pages(ctx context.Context) ([]*Page, error) {
	return m.loader.Load(ctx, m.contentFS)
}

// Build renders the site through the command layer so validation, timeouts,
// and error categorisation apply uniformly.
func (m *Module) Build(ctx context.Context, locales []string, dryRun bool) (*BuildResult, error) {
	var result *BuildResult
	err := m.buildHandler.Execute(ctx, sitecmd.BuildSiteCommand{
		Locales: locales,
		DryRun:  dryRun,
		ResultCallback: func(envelope sitecmd.ResultEnvelope) {
			result = envelope.Result
		},
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Clean removes every generated artifact from the output directory.
func (m *Module) Clean(ctx context.Context) error {
	return m.cleanHandler.Execute(ctx, sitecmd.CleanSiteCommand{})
}

// fsPageSource adapts the content loader to the generator's page source
// contract, re-reading the tree on every build.
type fsPageSource struct {
	loader *content.Loader
	fsys   fs.FS
}

func (s *fsPageSource) Pages(ctx context.Context) ([]*content.Page, error) {
	return s.loader.Load(ctx, s.fsys)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	format := cfg.Format
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") && strings.TrimSpace(format) == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    format,
		AddSource: cfg.AddSource,
	})
}
