package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/nav"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Translation dictionary addresses for site-level metadata.
const (
	siteTitleKey       = "meta.site.title"
	siteDescriptionKey = "meta.site.description"
	siteAuthorKey      = "meta.site.author"
	siteKeywordsKey    = "meta.keywords"
)

var (
	// ErrPageSourceRequired indicates the generator has nothing to build from.
	ErrPageSourceRequired = errors.New("generator: page source is required")
	// ErrTranslatorRequired indicates the generator cannot localize output.
	ErrTranslatorRequired = errors.New("generator: translation service is required")
	// ErrNavigationRequired indicates the generator cannot build menus.
	ErrNavigationRequired = errors.New("generator: navigation service is required")
)

// Config controls the static build.
type Config struct {
	OutputDir       string
	BaseURL         string
	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
	AssetsDir       string
	Theming         ThemingConfig
}

// PageSource yields the pages to render. The content loader satisfies this
// through a thin adapter so the generator stays decoupled from parsing.
type PageSource interface {
	Pages(ctx context.Context) ([]*content.Page, error)
}

// Dependencies carries the generator's collaborators.
type Dependencies struct {
	Pages      PageSource
	Translator *i18n.Service
	Navigation *nav.Service
	Renderer   interfaces.TemplateRenderer
	Logger     interfaces.Logger

	// Assets overrides the filesystem backing Config.AssetsDir, letting tests
	// feed fixtures without touching disk.
	Assets fs.FS
}

// BuildOptions narrows a single build invocation.
type BuildOptions struct {
	Locales []i18n.Locale
	DryRun  bool
}

// BuildResult summarizes one build.
type BuildResult struct {
	Pages        []RenderedPage
	PagesBuilt   int
	AssetsCopied int
	Locales      []string
	SitemapPath  string
	RobotsPath   string
	GeneratedAt  time.Time
	Duration     time.Duration
	DryRun       bool
}

// Service renders every page edition into a locale-prefixed static tree.
type Service struct {
	cfg    Config
	pages  PageSource
	i18n   *i18n.Service
	nav    *nav.Service
	render interfaces.TemplateRenderer
	writer artifactWriter
	themes *themeSelector
	assets fs.FS
	logger interfaces.Logger
}

// ServiceOption configures optional Service collaborators.
type ServiceOption func(*Service)

func withWriter(writer artifactWriter) ServiceOption {
	return func(s *Service) {
		if writer != nil {
			s.writer = writer
		}
	}
}

func withThemeLoader(loader themeManifestLoader) ServiceOption {
	return func(s *Service) {
		s.themes = newThemeSelector(s.cfg.Theming, loader)
	}
}

// New constructs the generator. The renderer defaults to the embedded HTML
// renderer and the writer to the local filesystem under Config.OutputDir.
func New(cfg Config, deps Dependencies, opts ...ServiceOption) (*Service, error) {
	if deps.Pages == nil {
		return nil, ErrPageSourceRequired
	}
	if deps.Translator == nil {
		return nil, ErrTranslatorRequired
	}
	if deps.Navigation == nil {
		return nil, ErrNavigationRequired
	}

	renderer := deps.Renderer
	if renderer == nil {
		var err error
		renderer, err = NewHTMLRenderer()
		if err != nil {
			return nil, err
		}
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	assets := deps.Assets
	if assets == nil && strings.TrimSpace(cfg.AssetsDir) != "" {
		assets = os.DirFS(cfg.AssetsDir)
	}

	s := &Service{
		cfg:    cfg,
		pages:  deps.Pages,
		i18n:   deps.Translator,
		nav:    deps.Navigation,
		render: renderer,
		themes: newThemeSelector(cfg.Theming, nil),
		assets: assets,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.writer == nil {
		writer, err := newOSWriter(cfg.OutputDir)
		if err != nil {
			return nil, err
		}
		s.writer = writer
	}
	return s, nil
}

// Build renders the site for the requested locales. With no locales given it
// builds every supported locale.
func (s *Service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	start := time.Now()

	locales := buildLocales(opts.Locales)
	pages, err := s.pages.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("generator: load pages: %w", err)
	}

	if s.cfg.CleanBuild && !opts.DryRun {
		if err := s.writer.RemoveAll(ctx, "."); err != nil {
			return nil, err
		}
	}

	selection, err := s.themes.Selection()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	theme := buildThemeContext(selection, s.cfg.Theming)

	result := &BuildResult{
		GeneratedAt: time.Now().UTC(),
		DryRun:      opts.DryRun,
	}
	for _, locale := range locales {
		result.Locales = append(result.Locales, locale.String())
	}

	s.logger.Info("generator.build.start",
		"pages", len(pages),
		"locales", result.Locales,
		"dry_run", opts.DryRun,
	)

	for _, page := range pages {
		for _, locale := range locales {
			rendered, err := s.renderPage(ctx, page, locale, theme, result.GeneratedAt, opts)
			if err != nil {
				return nil, err
			}

			if !opts.DryRun {
				if err := s.writer.WriteFile(ctx, rendered.Output, []byte(rendered.HTML)); err != nil {
					return nil, err
				}
			}

			result.Pages = append(result.Pages, rendered)
			result.PagesBuilt++
		}
	}

	if s.cfg.GenerateSitemap {
		result.SitemapPath = "sitemap.xml"
		if !opts.DryRun {
			sitemap := buildSitemap(s.cfg.BaseURL, result.Pages, result.GeneratedAt)
			if err := s.writer.WriteFile(ctx, result.SitemapPath, []byte(sitemap)); err != nil {
				return nil, err
			}
		}
	}
	if s.cfg.GenerateRobots {
		result.RobotsPath = "robots.txt"
		if !opts.DryRun {
			robots := buildRobots(s.cfg.BaseURL, s.cfg.GenerateSitemap)
			if err := s.writer.WriteFile(ctx, result.RobotsPath, []byte(robots)); err != nil {
				return nil, err
			}
		}
	}

	if !opts.DryRun {
		copied, err := s.copyAssets(ctx, selection)
		if err != nil {
			return nil, err
		}
		result.AssetsCopied = copied
	}

	result.Duration = time.Since(start)
	s.logger.Info("generator.build.complete",
		"pages_built", result.PagesBuilt,
		"assets_copied", result.AssetsCopied,
		"duration", result.Duration,
	)
	return result, nil
}

// Clean removes every artifact under the output directory.
func (s *Service) Clean(ctx context.Context) error {
	s.logger.Info("generator.clean", "output", s.cfg.OutputDir)
	return s.writer.RemoveAll(ctx, ".")
}

func (s *Service) renderPage(ctx context.Context, page *content.Page, locale i18n.Locale, theme ThemeContext, generatedAt time.Time, opts BuildOptions) (RenderedPage, error) {
	translation := page.Rendition(locale)
	if translation == nil {
		return RenderedPage{}, fmt.Errorf("%w: %s", content.ErrBaseLocaleMissing, page.Slug)
	}

	pagePath := i18n.Path(page.Route, locale)
	output := outputPath(page.Route, locale)
	helpers := newTemplateHelpers(s.i18n, locale, pagePath, s.cfg.BaseURL)

	tctx := TemplateContext{
		Site: SiteMetadata{
			Title:         s.i18n.T(siteTitleKey, locale),
			Description:   s.i18n.T(siteDescriptionKey, locale),
			Author:        s.i18n.T(siteAuthorKey, locale),
			Keywords:      s.i18n.Strings(siteKeywordsKey, locale),
			BaseURL:       strings.TrimRight(s.cfg.BaseURL, "/"),
			Locale:        locale.String(),
			DefaultLocale: i18n.DefaultLocale.String(),
			Locales:       localeCodes(),
		},
		Page: PageRenderingContext{
			Page:          page,
			Translation:   translation,
			Locale:        locale.String(),
			Path:          pagePath,
			AlternatePath: i18n.AlternatePath(pagePath, locale),
			Fallback:      !page.HasLocale(locale),
			Body:          htmlBody(translation),
		},
		Build: BuildMetadata{
			GeneratedAt: generatedAt,
			Options:     opts,
		},
		Theme: theme,
		Nav: NavContext{
			Items:     s.nav.ItemsFor(locale, pagePath),
			Languages: s.nav.LanguageOptions(locale, pagePath),
		},
		Helpers: helpers,
	}

	renderStart := time.Now()
	html, err := s.render.Render(ctx, page.Template, tctx)
	if err != nil {
		return RenderedPage{}, fmt.Errorf("generator: render %s (%s): %w", page.Slug, locale, err)
	}

	logging.WithBuildContext(s.logger, locale.String(), page.Route, output).Debug(
		"generator.page.rendered",
		"fallback", !page.HasLocale(locale),
	)

	return RenderedPage{
		PageID:       page.ID,
		Locale:       locale,
		Route:        page.Route,
		Path:         pagePath,
		Output:       output,
		Template:     page.Template,
		HTML:         string(html),
		Fallback:     !page.HasLocale(locale),
		LastModified: translation.LastModified,
		Duration:     time.Since(renderStart),
	}, nil
}

func (s *Service) copyAssets(ctx context.Context, selection *gotheme.Selection) (int, error) {
	copied := 0

	if s.assets != nil {
		if _, err := fs.Stat(s.assets, "."); err != nil {
			// An absent assets directory is not an error; sites without
			// static assets simply skip the copy.
			s.logger.Debug("generator.assets.skipped", "error", err)
		} else {
			n, err := s.copyTree(ctx, s.assets, "assets")
			if err != nil {
				return copied, err
			}
			copied += n
		}
	}

	themeAssets := collectThemeAssets(selection)
	if len(themeAssets) > 0 && s.cfg.Theming.enabled() {
		themeFS := os.DirFS(s.cfg.Theming.Path)
		for _, asset := range themeAssets {
			data, err := fs.ReadFile(themeFS, asset)
			if err != nil {
				return copied, fmt.Errorf("generator: read theme asset %s: %w", asset, err)
			}
			if err := s.writer.WriteFile(ctx, asset, data); err != nil {
				return copied, err
			}
			copied++
		}
	}

	return copied, nil
}

func (s *Service) copyTree(ctx context.Context, fsys fs.FS, prefix string) (int, error) {
	copied := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("generator: read asset %s: %w", p, err)
		}
		if err := s.writer.WriteFile(ctx, path.Join(prefix, p), data); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

func buildLocales(requested []i18n.Locale) []i18n.Locale {
	if len(requested) == 0 {
		return i18n.Locales()
	}
	seen := map[i18n.Locale]struct{}{}
	out := make([]i18n.Locale, 0, len(requested))
	for _, locale := range requested {
		locale = i18n.OrDefault(locale.String())
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	return out
}

func localeCodes() []string {
	locales := i18n.Locales()
	codes := make([]string, 0, len(locales))
	for _, locale := range locales {
		codes = append(codes, locale.String())
	}
	return codes
}
