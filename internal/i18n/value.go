package i18n

import "strings"

// Kind tags the variants a dictionary value can take.
type Kind int

const (
	// KindAbsent marks a missing value; every failed walk resolves to it.
	KindAbsent Kind = iota
	// KindString marks a translatable leaf.
	KindString
	// KindList marks an ordered sequence of values.
	KindList
	// KindMapping marks a nested dictionary level.
	KindMapping
)

// Value is the tagged variant stored in a translation dictionary: a string
// leaf, an ordered list, a nested mapping, or the absent marker. Values are
// immutable after construction and safe to share between goroutines.
type Value struct {
	kind    Kind
	str     string
	list    []Value
	mapping map[string]Value
}

// Absent returns the absent marker.
func Absent() Value {
	return Value{}
}

// Kind reports the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value is the absent marker.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// String unpacks a string leaf. The bool reports whether the variant matched.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// List unpacks an ordered sequence. The returned slice must not be mutated.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Mapping unpacks a nested dictionary level. The returned map must not be
// mutated.
func (v Value) Mapping() (map[string]Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.mapping, true
}

// At descends one level by segment name. Indexing anything that is not a
// mapping yields Absent instead of an error.
func (v Value) At(segment string) Value {
	if v.kind != KindMapping {
		return Absent()
	}
	child, ok := v.mapping[segment]
	if !ok {
		return Absent()
	}
	return child
}

// Walk resolves a dot-notation key against the value by folding over its
// segments. The walk short-circuits to Absent on the first missing segment or
// type mismatch; it never fails.
func (v Value) Walk(key string) Value {
	key = strings.TrimSpace(key)
	if key == "" {
		return Absent()
	}
	current := v
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return Absent()
		}
		current = current.At(segment)
		if current.IsAbsent() {
			return Absent()
		}
	}
	return current
}

// fromJSON converts a decoded JSON document into the variant representation.
// Scalars other than strings have no place in a dictionary and collapse to
// Absent; the loader's schema check rejects them before this point.
func fromJSON(raw any) Value {
	switch typed := raw.(type) {
	case string:
		return Value{kind: KindString, str: typed}
	case []any:
		list := make([]Value, 0, len(typed))
		for _, item := range typed {
			value := fromJSON(item)
			if value.IsAbsent() {
				continue
			}
			list = append(list, value)
		}
		return Value{kind: KindList, list: list}
	case map[string]any:
		mapping := make(map[string]Value, len(typed))
		for key, item := range typed {
			value := fromJSON(item)
			if value.IsAbsent() {
				continue
			}
			mapping[key] = value
		}
		return Value{kind: KindMapping, mapping: mapping}
	default:
		return Absent()
	}
}
