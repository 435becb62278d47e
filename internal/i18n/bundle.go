package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Namespaces are the fixed top-level groupings within a locale's dictionary.
var Namespaces = []string{"common", "pages", "meta"}

var (
	// ErrDictionaryMissing indicates a locale is missing one of its namespace documents.
	ErrDictionaryMissing = errors.New("i18n: dictionary document missing")
	// ErrDictionaryInvalid indicates a namespace document failed schema validation.
	ErrDictionaryInvalid = errors.New("i18n: dictionary document invalid")
)

//go:embed locales
var embeddedLocales embed.FS

//go:embed schema/dictionary.schema.json
var dictionarySchema []byte

// Bundle holds one immutable dictionary per locale, each keyed by namespace.
// Built once ahead of any lookup; safe for concurrent readers without
// synchronization.
type Bundle struct {
	dictionaries map[Locale]Value
}

// LoadEmbedded builds the bundle from the dictionaries compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS builds a bundle from `locales/<locale>/<namespace>.json` documents
// on the provided filesystem. Every supported locale must supply every
// namespace: load fails loudly so lookups never have to.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	schema, err := compileDictionarySchema()
	if err != nil {
		return nil, err
	}

	dictionaries := make(map[Locale]Value, len(Locales()))
	for _, locale := range Locales() {
		root := make(map[string]Value, len(Namespaces))
		for _, namespace := range Namespaces {
			doc, err := loadNamespace(fsys, schema, locale, namespace)
			if err != nil {
				return nil, err
			}
			root[namespace] = doc
		}
		dictionaries[locale] = Value{kind: KindMapping, mapping: root}
	}

	return &Bundle{dictionaries: dictionaries}, nil
}

// Dictionary returns the root mapping for a locale. Unknown locales resolve to
// the absent marker.
func (b *Bundle) Dictionary(locale Locale) Value {
	if b == nil {
		return Absent()
	}
	root, ok := b.dictionaries[locale]
	if !ok {
		return Absent()
	}
	return root
}

// Lookup walks a dot-notation key through one locale's dictionary with no
// fallback applied.
func (b *Bundle) Lookup(locale Locale, key string) Value {
	return b.Dictionary(locale).Walk(key)
}

func loadNamespace(fsys fs.FS, schema *jsonschema.Schema, locale Locale, namespace string) (Value, error) {
	path := fmt.Sprintf("locales/%s/%s.json", locale, namespace)

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Absent(), fmt.Errorf("%w: %s: %v", ErrDictionaryMissing, path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return Absent(), fmt.Errorf("%w: %s: %v", ErrDictionaryInvalid, path, err)
	}

	if err := schema.Validate(raw); err != nil {
		return Absent(), fmt.Errorf("%w: %s: %v", ErrDictionaryInvalid, path, err)
	}

	doc := fromJSON(raw)
	if doc.Kind() != KindMapping {
		return Absent(), fmt.Errorf("%w: %s: top-level value must be a mapping", ErrDictionaryInvalid, path)
	}
	return doc, nil
}

func compileDictionarySchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("dictionary.schema.json", bytes.NewReader(dictionarySchema)); err != nil {
		return nil, fmt.Errorf("i18n: add dictionary schema: %w", err)
	}
	schema, err := compiler.Compile("dictionary.schema.json")
	if err != nil {
		return nil, fmt.Errorf("i18n: compile dictionary schema: %w", err)
	}
	return schema, nil
}
