package nav

import (
	"strings"
	"testing"
	"testing/fstest"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-folio/internal/i18n"
)

func mustEmbeddedService(t *testing.T) *Service {
	t.Helper()

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded bundle: %v", err)
	}
	translator, err := i18n.NewService(bundle)
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	svc, err := NewService(translator)
	if err != nil {
		t.Fatalf("new nav service: %v", err)
	}
	return svc
}

func TestItemsPreserveSourceOrder(t *testing.T) {
	svc := mustEmbeddedService(t)

	items := svc.Items(i18n.LocaleEN)
	if len(items) != 4 {
		t.Fatalf("expected four nav items, got %d", len(items))
	}

	wantKeys := []string{"home", "about", "projects", "contact"}
	for i, want := range wantKeys {
		if items[i].Key != want {
			t.Fatalf("item %d = %q, want %q", i, items[i].Key, want)
		}
	}
	if items[0].Href != "/" || items[1].Href != "/about" {
		t.Fatalf("unexpected English hrefs: %q, %q", items[0].Href, items[1].Href)
	}
}

func TestItemsLocalizeHrefsAndLabels(t *testing.T) {
	svc := mustEmbeddedService(t)

	items := svc.Items(i18n.LocaleDE)
	if len(items) != 4 {
		t.Fatalf("expected four nav items, got %d", len(items))
	}
	if items[0].Href != "/de" {
		t.Fatalf("root href should collapse to the bare prefix, got %q", items[0].Href)
	}
	if items[1].Href != "/de/about" {
		t.Fatalf("expected prefixed href, got %q", items[1].Href)
	}
	if items[1].Label != "Über mich" {
		t.Fatalf("expected German label, got %q", items[1].Label)
	}
}

func TestItemsForMarksActiveAcrossLocales(t *testing.T) {
	svc := mustEmbeddedService(t)

	items := svc.ItemsFor(i18n.LocaleDE, "/de/about")
	for _, item := range items {
		if item.Key == "about" && !item.Active {
			t.Fatalf("about should be active for /de/about")
		}
		if item.Key != "about" && item.Active {
			t.Fatalf("%s should not be active", item.Key)
		}
	}
}

func TestItemsAbsentListYieldsEmptySequence(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en/common.json": &fstest.MapFile{Data: []byte(`{"nav": {"home": "Home"}}`)},
		"locales/en/pages.json":  &fstest.MapFile{Data: []byte(`{}`)},
		"locales/en/meta.json":   &fstest.MapFile{Data: []byte(`{}`)},
		"locales/de/common.json": &fstest.MapFile{Data: []byte(`{}`)},
		"locales/de/pages.json":  &fstest.MapFile{Data: []byte(`{}`)},
		"locales/de/meta.json":   &fstest.MapFile{Data: []byte(`{}`)},
	}

	bundle, err := i18n.LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	translator, err := i18n.NewService(bundle)
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	svc, err := NewService(translator)
	if err != nil {
		t.Fatalf("new nav service: %v", err)
	}

	if items := svc.Items(i18n.LocaleEN); len(items) != 0 {
		t.Fatalf("expected empty sequence, got %v", items)
	}
}

func TestLanguageOptions(t *testing.T) {
	svc := mustEmbeddedService(t)

	options := svc.LanguageOptions(i18n.LocaleDE, "/de/about")
	if len(options) != 2 {
		t.Fatalf("expected two language options, got %d", len(options))
	}
	if options[0].Locale != i18n.LocaleEN || options[0].Href != "/about" || options[0].Active {
		t.Fatalf("unexpected English option %+v", options[0])
	}
	if options[1].Locale != i18n.LocaleDE || options[1].Href != "/de/about" || !options[1].Active {
		t.Fatalf("unexpected German option %+v", options[1])
	}
	if options[1].Label != "Deutsch" {
		t.Fatalf("expected native label, got %q", options[1].Label)
	}
}

func TestNewServiceRequiresTranslator(t *testing.T) {
	if _, err := NewService(nil); err != ErrTranslatorRequired {
		t.Fatalf("expected ErrTranslatorRequired, got %v", err)
	}
}

func TestRouteResolverErrors(t *testing.T) {
	t.Run("missing manager", func(t *testing.T) {
		resolver := NewRouteResolver(RouteResolverOptions{})
		if _, err := resolver.Resolve("page", i18n.LocaleEN, nil); err == nil {
			t.Fatalf("expected error without a manager")
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		manager := urlkit.NewRouteManager(&urlkit.Config{
			Groups: []urlkit.GroupConfig{{
				Name:  "frontend",
				Paths: map[string]string{"projects": "/projects"},
			}},
		})
		resolver := NewRouteResolver(RouteResolverOptions{
			Manager:      manager,
			DefaultGroup: "nope",
		})
		if _, err := resolver.Resolve("projects", i18n.LocaleEN, nil); err == nil {
			t.Fatalf("expected error for unknown group")
		}
	})
}

func TestRouteResolverResolvesLocaleGroup(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{{
			Name:  "frontend",
			Paths: map[string]string{"projects": "/projects"},
			Groups: []urlkit.GroupConfig{{
				Name:  "de",
				Path:  "/de",
				Paths: map[string]string{"projects": "/projekte"},
			}},
		}},
	})
	resolver := NewRouteResolver(RouteResolverOptions{
		Manager:      manager,
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"de": "frontend.de"},
	})

	url, err := resolver.Resolve("projects", i18n.LocaleDE, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(url, "projekte") {
		t.Fatalf("expected localized route shape, got %q", url)
	}
}
