package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ThemingConfig points the generator at an optional go-theme directory. With
// an empty Path the generator renders with an empty theme context.
type ThemingConfig struct {
	Path              string
	Theme             string
	Variant           string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

func (c ThemingConfig) enabled() bool {
	return strings.TrimSpace(c.Path) != ""
}

type themeManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsThemeManifestLoader struct{}

func (fsThemeManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}
	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

type themeSelector struct {
	cfg      ThemingConfig
	registry *gotheme.MemoryRegistry
	loader   themeManifestLoader

	mu       sync.Mutex
	manifest *gotheme.Manifest
}

func newThemeSelector(cfg ThemingConfig, loader themeManifestLoader) *themeSelector {
	if loader == nil {
		loader = fsThemeManifestLoader{}
	}
	return &themeSelector{
		cfg:      cfg,
		registry: gotheme.NewRegistry(),
		loader:   loader,
	}
}

// Selection resolves the configured theme and variant. A selector without a
// configured theme path yields a nil selection, which renders as an empty
// theme context.
func (s *themeSelector) Selection() (*gotheme.Selection, error) {
	if s == nil || !s.cfg.enabled() {
		return nil, nil
	}

	manifest, err := s.ensureManifest()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(s.cfg.Theme)
	if name == "" {
		name = manifest.Name
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: strings.TrimSpace(s.cfg.Variant),
	}

	selection, err := selector.Select(name, strings.TrimSpace(s.cfg.Variant))
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", name, err)
	}
	return selection, nil
}

func (s *themeSelector) ensureManifest() (*gotheme.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest != nil {
		return s.manifest, nil
	}

	manifest, err := s.loader.Load(s.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", s.cfg.Path, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("theme name required for manifest registration")
	}

	if err := s.registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.manifest = manifest
	return manifest, nil
}

func buildThemeContext(selection *gotheme.Selection, cfg ThemingConfig) ThemeContext {
	if selection == nil {
		return ThemeContext{
			Tokens:   map[string]string{},
			CSSVars:  map[string]string{},
			Partials: map[string]string{},
			AssetURL: func(string) string { return "" },
			Template: func(_ string, fallback string) string { return fallback },
		}
	}

	return ThemeContext{
		Name:     selection.Theme,
		Variant:  selection.Variant,
		Tokens:   selection.Tokens(),
		CSSVars:  selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials: selection.Partials(cfg.PartialFallbacks),
		AssetURL: func(key string) string { url, _ := selection.Asset(key); return url },
		Template: selection.Template,
	}
}

func collectThemeAssets(selection *gotheme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	assets := selection.Manifest.Assets.Files
	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		if v, ok := selection.Manifest.Variants[variant]; ok && len(v.Assets.Files) > 0 {
			merged := make(map[string]string, len(assets)+len(v.Assets.Files))
			for key, file := range assets {
				merged[key] = file
			}
			for key, file := range v.Assets.Files {
				merged[key] = file
			}
			assets = merged
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range assets {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	sort.Strings(out)
	return out
}
