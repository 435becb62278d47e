package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	goslug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/identity"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

var (
	// ErrBaseLocaleMissing indicates a page was authored only in a non-default
	// locale; the default locale is the fallback target and must exist.
	ErrBaseLocaleMissing = errors.New("content: page has no default-locale document")
	// ErrSlugInvalid indicates a document's slug could not be normalized.
	ErrSlugInvalid = errors.New("content: page slug is invalid")
	// ErrRouteConflict indicates two pages resolved to the same route.
	ErrRouteConflict = errors.New("content: duplicate page route")
)

type frontMatterEnvelope struct {
	Title    string    `yaml:"title"`
	Slug     string    `yaml:"slug"`
	Route    string    `yaml:"route"`
	Template string    `yaml:"template"`
	Summary  string    `yaml:"summary"`
	Tags     []string  `yaml:"tags"`
	Date     time.Time `yaml:"date"`
	Draft    bool      `yaml:"draft"`
	Weight   int       `yaml:"weight"`
}

// Loader reads Markdown page documents laid out as `<locale>/<name>.md` and
// assembles them into locale-grouped pages.
type Loader struct {
	renderer *MarkdownRenderer
	logger   interfaces.Logger
}

// LoaderOption configures optional Loader collaborators.
type LoaderOption func(*Loader)

// WithLogger injects the logger used for skipped-document diagnostics.
func WithLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a loader with a shared markdown renderer.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		renderer: NewMarkdownRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses every locale's documents from the provided filesystem. Draft
// documents are skipped. Pages are ordered by weight, then slug.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) ([]*Page, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	pages := map[string]*Page{}

	for _, locale := range i18n.Locales() {
		paths, err := fs.Glob(fsys, fmt.Sprintf("%s/*.md", locale))
		if err != nil {
			return nil, fmt.Errorf("content: glob %s documents: %w", locale, err)
		}
		sort.Strings(paths)

		for _, docPath := range paths {
			if err := l.loadDocument(fsys, locale, docPath, pages); err != nil {
				return nil, err
			}
		}
	}

	out := make([]*Page, 0, len(pages))
	routes := map[string]string{}
	for _, page := range pages {
		if !page.HasLocale(i18n.DefaultLocale) {
			return nil, fmt.Errorf("%w: %s", ErrBaseLocaleMissing, page.Slug)
		}
		if prior, ok := routes[page.Route]; ok {
			return nil, fmt.Errorf("%w: %s and %s both claim %s", ErrRouteConflict, prior, page.Slug, page.Route)
		}
		routes[page.Route] = page.Slug
		out = append(out, page)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		return out[i].Slug < out[j].Slug
	})

	return out, nil
}

func (l *Loader) loadDocument(fsys fs.FS, locale i18n.Locale, docPath string, pages map[string]*Page) error {
	data, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", docPath, err)
	}

	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return fmt.Errorf("content: parse frontmatter %s: %w", docPath, err)
	}

	if meta.Draft {
		l.logger.Debug("content.document.skipped", "path", docPath, "reason", "draft")
		return nil
	}

	slug, err := documentSlug(meta.Slug, docPath)
	if err != nil {
		return err
	}

	html, err := l.renderer.Render(body)
	if err != nil {
		return fmt.Errorf("content: %s: %w", docPath, err)
	}

	page, ok := pages[slug]
	if !ok {
		page = &Page{
			ID:           identity.PageUUID(slug),
			Slug:         slug,
			Translations: map[i18n.Locale]*Translation{},
		}
		pages[slug] = page
	}

	// Route, template, and ordering come from the default-locale document;
	// localized documents only contribute their text.
	if locale == i18n.DefaultLocale {
		page.Route = documentRoute(meta.Route, slug)
		page.Template = strings.TrimSpace(meta.Template)
		page.Weight = meta.Weight
	}

	page.Translations[locale] = &Translation{
		Locale:       locale,
		Title:        strings.TrimSpace(meta.Title),
		Summary:      strings.TrimSpace(meta.Summary),
		Tags:         append([]string(nil), meta.Tags...),
		Date:         meta.Date,
		Body:         body,
		HTML:         html,
		SourcePath:   docPath,
		LastModified: documentModTime(fsys, docPath),
	}

	return nil
}

func documentSlug(raw, docPath string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		candidate = strings.TrimSuffix(path.Base(docPath), path.Ext(docPath))
	}
	normalized, err := goslug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %s (%q)", ErrSlugInvalid, docPath, candidate)
	}
	return normalized, nil
}

func documentRoute(raw, slug string) string {
	route := strings.TrimSpace(raw)
	if route == "" {
		return "/" + slug
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if route != "/" {
		route = strings.TrimRight(route, "/")
	}
	return route
}

func documentModTime(fsys fs.FS, docPath string) time.Time {
	info, err := fs.Stat(fsys, docPath)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
