package i18n

import "testing"

func TestFromPath(t *testing.T) {
	cases := []struct {
		path string
		want Locale
	}{
		{"/", LocaleEN},
		{"", LocaleEN},
		{"/about", LocaleEN},
		{"/de", LocaleDE},
		{"/de/", LocaleDE},
		{"/de/about", LocaleDE},
		{"//de/about", LocaleDE},
		{"/december", LocaleEN},
		{"/fr/about", LocaleEN},
		{"/?!garbage", LocaleEN},
	}

	for _, tc := range cases {
		if got := FromPath(tc.path); got != tc.want {
			t.Fatalf("FromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestPath(t *testing.T) {
	cases := []struct {
		path   string
		target Locale
		want   string
	}{
		{"/about", LocaleDE, "/de/about"},
		{"/about", LocaleEN, "/about"},
		{"/de/about", LocaleEN, "/about"},
		{"/de/about", LocaleDE, "/de/about"},
		{"/", LocaleDE, "/de"},
		{"/", LocaleEN, "/"},
		{"/de", LocaleEN, "/"},
		{"/de", LocaleDE, "/de"},
		{"about", LocaleDE, "/de/about"},
		{"/december", LocaleDE, "/de/december"},
		{"/december", LocaleEN, "/december"},
	}

	for _, tc := range cases {
		if got := Path(tc.path, tc.target); got != tc.want {
			t.Fatalf("Path(%q, %q) = %q, want %q", tc.path, tc.target, got, tc.want)
		}
	}
}

func TestPathIdempotent(t *testing.T) {
	paths := []string{"/", "/about", "/de/about", "/projects/one"}
	for _, p := range paths {
		for _, locale := range Locales() {
			once := Path(p, locale)
			if twice := Path(once, locale); twice != once {
				t.Fatalf("Path(Path(%q, %q)) = %q, want %q", p, locale, twice, once)
			}
		}
	}
}

func TestAlternatePathRoundTrip(t *testing.T) {
	cases := []struct {
		path   string
		locale Locale
	}{
		{"/", LocaleEN},
		{"/about", LocaleEN},
		{"/de", LocaleDE},
		{"/de/about", LocaleDE},
	}

	for _, tc := range cases {
		flipped := AlternatePath(tc.path, tc.locale)
		back := AlternatePath(flipped, tc.locale.Alternate())
		if back != tc.path {
			t.Fatalf("round trip of %q via %q gave %q", tc.path, flipped, back)
		}
	}
}

func TestStripPrefix(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/de/about", "/about"},
		{"/de", "/"},
		{"/about", "/about"},
		{"/december", "/december"},
		{"about", "/about"},
		{"", "/"},
	}

	for _, tc := range cases {
		if got := StripPrefix(tc.path); got != tc.want {
			t.Fatalf("StripPrefix(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLocaleAlternate(t *testing.T) {
	if LocaleEN.Alternate() != LocaleDE {
		t.Fatalf("expected en to toggle to de")
	}
	if LocaleDE.Alternate() != LocaleEN {
		t.Fatalf("expected de to toggle to en")
	}
}

func TestParseLocale(t *testing.T) {
	if locale, ok := ParseLocale(" DE "); !ok || locale != LocaleDE {
		t.Fatalf("ParseLocale(\" DE \") = %q, %v", locale, ok)
	}
	if locale, ok := ParseLocale("fr"); ok || locale != DefaultLocale {
		t.Fatalf("unknown code should report default, got %q, %v", locale, ok)
	}
}
