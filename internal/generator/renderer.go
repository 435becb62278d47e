package generator

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates
var defaultTemplatesFS embed.FS

const fallbackTemplate = "page"

// HTMLRenderer renders template contexts through html/template. It ships with
// an embedded default layout; a site can override it by pointing the renderer
// at its own template directory.
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer builds a renderer over the embedded default templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	sub, err := fs.Sub(defaultTemplatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("generator: embedded templates: %w", err)
	}
	return NewHTMLRendererFromFS(sub)
}

// NewHTMLRendererFromFS builds a renderer from `*.html` files in the given
// filesystem. Template names are the file basenames without extension.
func NewHTMLRendererFromFS(fsys fs.FS) (*HTMLRenderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("generator: template filesystem is required")
	}
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("generator: parse templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// Render executes the named template against the provided data. An unknown or
// empty name falls back to the "page" template so pages without an explicit
// template assignment still render.
func (r *HTMLRenderer) Render(ctx context.Context, name string, data any) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tmpl := r.lookup(name)
	if tmpl == nil {
		return nil, fmt.Errorf("generator: template %q not found and no fallback available", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generator: execute template %q: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) lookup(name string) *template.Template {
	name = strings.TrimSpace(name)
	if name != "" {
		if tmpl := r.templates.Lookup(name + ".html"); tmpl != nil {
			return tmpl
		}
		if tmpl := r.templates.Lookup(name); tmpl != nil {
			return tmpl
		}
	}
	return r.templates.Lookup(fallbackTemplate + ".html")
}
