package folio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func fixtureContentFS() fstest.MapFS {
	return fstest.MapFS{
		"en/home.md": &fstest.MapFile{Data: []byte(`---
title: Welcome
route: /
weight: -10
---
# Welcome

I build things for the web.
`)},
		"de/home.md": &fstest.MapFile{Data: []byte(`---
title: Willkommen
---
# Willkommen

Ich baue Dinge für das Web.
`)},
		"en/about.md": &fstest.MapFile{Data: []byte(`---
title: About
---
## About me
`)},
	}
}

func mustModule(t *testing.T, outputDir string) *Module {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Generator.OutputDir = outputDir

	module, err := New(cfg, WithContentFS(fixtureContentFS()))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := New(cfg); err != ErrContentDirRequired {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestModuleTranslates(t *testing.T) {
	module := mustModule(t, t.TempDir())

	if got := module.T("common.nav.about", LocaleDE); got != "Über mich" {
		t.Fatalf("expected German label, got %q", got)
	}
	if got := module.T("common.nav.about", LocaleEN); got != "About" {
		t.Fatalf("expected English label, got %q", got)
	}
	if got := module.T("does.not.exist", LocaleDE); got != "does.not.exist" {
		t.Fatalf("missing keys should echo, got %q", got)
	}
}

func TestPathHelpers(t *testing.T) {
	if got := LocaleFromPath("/de/about"); got != LocaleDE {
		t.Fatalf("expected de, got %s", got)
	}
	if got := LocaleFromPath("/december"); got != LocaleEN {
		t.Fatalf("partial prefix should not match, got %s", got)
	}
	if got := LocalizedPath("/about", LocaleDE); got != "/de/about" {
		t.Fatalf("expected /de/about, got %q", got)
	}
	if got := LocalizedPath("/de/about", LocaleEN); got != "/about" {
		t.Fatalf("expected /about, got %q", got)
	}
	if got := AlternatePath("/de", LocaleDE); got != "/" {
		t.Fatalf("expected /, got %q", got)
	}
}

func TestModulePages(t *testing.T) {
	module := mustModule(t, t.TempDir())

	pages, err := module.Pages(context.Background())
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected two pages, got %d", len(pages))
	}
	if pages[0].Route != "/" {
		t.Fatalf("weighted home page should sort first, got %q", pages[0].Route)
	}
}

func TestModuleBuildWritesSite(t *testing.T) {
	outputDir := t.TempDir()
	module := mustModule(t, outputDir)

	result, err := module.Build(context.Background(), nil, false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result == nil || result.PagesBuilt != 4 {
		t.Fatalf("unexpected build result: %+v", result)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "de", "index.html"))
	if err != nil {
		t.Fatalf("read German home page: %v", err)
	}
	if !strings.Contains(string(data), "Willkommen") {
		t.Fatalf("German home page missing localized body:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "sitemap.xml")); err != nil {
		t.Fatalf("expected sitemap: %v", err)
	}

	if err := module.Clean(context.Background()); err != nil {
		t.Fatalf("clean: %v", err)
	}
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir after clean, found %d entries", len(entries))
	}
}

func TestModuleBuildRejectsUnsupportedLocale(t *testing.T) {
	module := mustModule(t, t.TempDir())

	if _, err := module.Build(context.Background(), []string{"fr"}, true); err == nil {
		t.Fatal("expected validation error for unsupported locale")
	}
}
