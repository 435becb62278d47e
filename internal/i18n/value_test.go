package i18n

import "testing"

func TestValueWalk(t *testing.T) {
	root := fromJSON(map[string]any{
		"nav": map[string]any{
			"home":  "Home",
			"items": []any{"a", "b"},
		},
	})

	t.Run("resolves nested leaf", func(t *testing.T) {
		got, ok := root.Walk("nav.home").String()
		if !ok || got != "Home" {
			t.Fatalf("Walk(nav.home) = %q, %v", got, ok)
		}
	})

	t.Run("missing segment short-circuits", func(t *testing.T) {
		if !root.Walk("nav.missing.deeper").IsAbsent() {
			t.Fatalf("expected absent for missing segment")
		}
	})

	t.Run("indexing through a leaf is absent", func(t *testing.T) {
		if !root.Walk("nav.home.deeper").IsAbsent() {
			t.Fatalf("string leaves are not indexable")
		}
	})

	t.Run("indexing through a list is absent", func(t *testing.T) {
		if !root.Walk("nav.items.0").IsAbsent() {
			t.Fatalf("lists are not addressable by dot segments")
		}
	})

	t.Run("empty and malformed keys are absent", func(t *testing.T) {
		for _, key := range []string{"", " ", ".", "nav..home", ".nav"} {
			if !root.Walk(key).IsAbsent() {
				t.Fatalf("expected absent for key %q", key)
			}
		}
	})
}

func TestFromJSONDropsScalars(t *testing.T) {
	root := fromJSON(map[string]any{
		"ok":  "fine",
		"num": 4,
		"arr": []any{"keep", true},
	})

	if _, ok := root.At("ok").String(); !ok {
		t.Fatalf("expected string leaf to survive")
	}
	if !root.At("num").IsAbsent() {
		t.Fatalf("numeric leaves have no variant and must collapse to absent")
	}
	items, ok := root.At("arr").List()
	if !ok || len(items) != 1 {
		t.Fatalf("expected the non-string item to be dropped, got %v", items)
	}
}
