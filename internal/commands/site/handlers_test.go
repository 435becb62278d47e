package sitecmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/generator"
	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/identity"
	"github.com/goliatone/go-folio/internal/nav"
)

type staticPages struct {
	pages []*content.Page
}

func (s staticPages) Pages(context.Context) ([]*content.Page, error) {
	return s.pages, nil
}

func fixturePage() *content.Page {
	return &content.Page{
		ID:    identity.PageUUID("home"),
		Slug:  "home",
		Route: "/",
		Translations: map[i18n.Locale]*content.Translation{
			i18n.LocaleEN: {
				Locale:       i18n.LocaleEN,
				Title:        "Welcome",
				HTML:         "<h1>Welcome</h1>",
				LastModified: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func mustGenerator(t *testing.T, outputDir string) *generator.Service {
	t.Helper()

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded bundle: %v", err)
	}
	translator, err := i18n.NewService(bundle)
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	navigation, err := nav.NewService(translator)
	if err != nil {
		t.Fatalf("new nav service: %v", err)
	}

	svc, err := generator.New(generator.Config{
		OutputDir: outputDir,
		BaseURL:   "https://example.com",
	}, generator.Dependencies{
		Pages:      staticPages{pages: []*content.Page{fixturePage()}},
		Translator: translator,
		Navigation: navigation,
	})
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return svc
}

func TestBuildSiteCommandValidate(t *testing.T) {
	if err := (BuildSiteCommand{Locales: []string{"en", "de"}}).Validate(); err != nil {
		t.Fatalf("supported locales should validate, got %v", err)
	}
	if err := (BuildSiteCommand{Locales: []string{"fr"}}).Validate(); err == nil {
		t.Fatal("unsupported locale should fail validation")
	}
	if err := (BuildSiteCommand{Locales: []string{" "}}).Validate(); err == nil {
		t.Fatal("blank locale should fail validation")
	}
	if err := (BuildSiteCommand{}).Validate(); err != nil {
		t.Fatalf("empty command should validate, got %v", err)
	}
}

func TestBuildSiteHandlerBuildsArtifacts(t *testing.T) {
	outputDir := t.TempDir()
	handler := NewBuildSiteHandler(mustGenerator(t, outputDir), nil)

	var envelope ResultEnvelope
	err := handler.Execute(context.Background(), BuildSiteCommand{
		ResultCallback: func(e ResultEnvelope) { envelope = e },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if envelope.Result == nil || envelope.Result.PagesBuilt != 2 {
		t.Fatalf("unexpected build result: %+v", envelope.Result)
	}

	for _, artifact := range []string{"index.html", filepath.Join("de", "index.html")} {
		if _, err := os.Stat(filepath.Join(outputDir, artifact)); err != nil {
			t.Fatalf("expected artifact %s: %v", artifact, err)
		}
	}
}

func TestBuildSiteHandlerRejectsUnsupportedLocale(t *testing.T) {
	handler := NewBuildSiteHandler(mustGenerator(t, t.TempDir()), nil)

	err := handler.Execute(context.Background(), BuildSiteCommand{Locales: []string{"fr"}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestBuildSiteHandlerWithoutGenerator(t *testing.T) {
	handler := NewBuildSiteHandler(nil, nil)

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if err == nil {
		t.Fatal("expected error without generator")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestCleanSiteHandlerRemovesArtifacts(t *testing.T) {
	outputDir := t.TempDir()
	svc := mustGenerator(t, outputDir)

	build := NewBuildSiteHandler(svc, nil)
	if err := build.Execute(context.Background(), BuildSiteCommand{}); err != nil {
		t.Fatalf("build: %v", err)
	}

	clean := NewCleanSiteHandler(svc, nil)
	if err := clean.Execute(context.Background(), CleanSiteCommand{}); err != nil {
		t.Fatalf("clean: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, found %d entries", len(entries))
	}
}
