package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-folio/internal/i18n"
)

func TestBuildSitemapLinksLanguageEditions(t *testing.T) {
	pageID := uuid.New()
	modified := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rendered := []RenderedPage{
		{PageID: pageID, Locale: i18n.LocaleEN, Path: "/about", LastModified: modified},
		{PageID: pageID, Locale: i18n.LocaleDE, Path: "/de/about", LastModified: modified},
	}

	sitemap := buildSitemap("https://example.com/", rendered, time.Now())

	if !strings.Contains(sitemap, "<loc>https://example.com/about</loc>") {
		t.Fatalf("missing English location:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<loc>https://example.com/de/about</loc>") {
		t.Fatalf("missing German location:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, `hreflang="de" href="https://example.com/de/about"`) {
		t.Fatalf("missing German alternate:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, `hreflang="en" href="https://example.com/about"`) {
		t.Fatalf("missing English alternate:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<lastmod>2026-03-14T09:00:00Z</lastmod>") {
		t.Fatalf("missing lastmod:\n%s", sitemap)
	}
}

func TestBuildSitemapDeduplicatesAndSorts(t *testing.T) {
	rendered := []RenderedPage{
		{PageID: uuid.New(), Locale: i18n.LocaleEN, Path: "/b"},
		{PageID: uuid.New(), Locale: i18n.LocaleEN, Path: "/a"},
		{PageID: uuid.New(), Locale: i18n.LocaleEN, Path: "/a"},
	}

	sitemap := buildSitemap("https://example.com", rendered, time.Now())

	if strings.Count(sitemap, "<loc>https://example.com/a</loc>") != 1 {
		t.Fatalf("duplicate locations not collapsed:\n%s", sitemap)
	}
	first := strings.Index(sitemap, "<loc>https://example.com/a</loc>")
	second := strings.Index(sitemap, "<loc>https://example.com/b</loc>")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("locations not sorted:\n%s", sitemap)
	}
}

func TestBuildSitemapFallsBackToBuildTime(t *testing.T) {
	fallback := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	rendered := []RenderedPage{
		{PageID: uuid.New(), Locale: i18n.LocaleEN, Path: "/"},
	}

	sitemap := buildSitemap("https://example.com", rendered, fallback)
	if !strings.Contains(sitemap, "<lastmod>2026-01-02T00:00:00Z</lastmod>") {
		t.Fatalf("expected fallback lastmod:\n%s", sitemap)
	}
}

func TestBuildRobots(t *testing.T) {
	robots := buildRobots("https://example.com/", true)
	if !strings.Contains(robots, "User-agent: *") {
		t.Fatalf("missing user-agent:\n%s", robots)
	}
	if !strings.Contains(robots, "Sitemap: https://example.com/sitemap.xml") {
		t.Fatalf("missing sitemap reference:\n%s", robots)
	}

	robots = buildRobots("https://example.com", false)
	if strings.Contains(robots, "Sitemap:") {
		t.Fatalf("unexpected sitemap reference:\n%s", robots)
	}
}
