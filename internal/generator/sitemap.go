package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/google/uuid"
)

type sitemapEntry struct {
	Location   string
	LastMod    time.Time
	Alternates []sitemapAlternate
}

type sitemapAlternate struct {
	Hreflang string
	Href     string
}

// buildSitemap emits one <url> per rendered page with xhtml alternate links
// tying the two language editions of a page together.
func buildSitemap(baseURL string, rendered []RenderedPage, fallback time.Time) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}

	editions := map[uuid.UUID]map[i18n.Locale]string{}
	for _, page := range rendered {
		if editions[page.PageID] == nil {
			editions[page.PageID] = map[i18n.Locale]string{}
		}
		editions[page.PageID][page.Locale] = base + normalizeRoute(page.Path)
	}

	entries := make([]sitemapEntry, 0, len(rendered))
	seen := map[string]struct{}{}
	for _, page := range rendered {
		location := base + normalizeRoute(page.Path)
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		lastMod := page.LastModified
		if lastMod.IsZero() {
			lastMod = fallback
		}

		entry := sitemapEntry{Location: location, LastMod: lastMod}
		for _, locale := range i18n.Locales() {
			if href, ok := editions[page.PageID][locale]; ok {
				entry.Alternates = append(entry.Alternates, sitemapAlternate{
					Hreflang: locale.String(),
					Href:     href,
				})
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", entry.Location))
		if !entry.LastMod.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		}
		for _, alt := range entry.Alternates {
			builder.WriteString(fmt.Sprintf("    <xhtml:link rel=\"alternate\" hreflang=%q href=%q/>\n", alt.Hreflang, alt.Href))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func buildRobots(baseURL string, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if base == "" {
			base = "http://localhost"
		}
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", base))
	}
	return builder.String()
}

func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}
