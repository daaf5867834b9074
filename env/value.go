package env

import (
	"iter"
	"maps"
	"slices"
)

// Kind identifies the representation held by a [Value].
type Kind int

const (
	// KindScalar is a single template string.
	KindScalar Kind = iota

	// KindList is an ordered list of template strings, joined with the path
	// list separator of the selected platform.
	KindList

	// KindVariant maps platform identifiers to values.
	KindVariant
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"

	case KindList:
		return "List"

	case KindVariant:
		return "Variant"

	default:
		return "Unknown"
	}
}

// Value is the raw value of a definition in a [Spec].
// Exactly one of Text, Items, or Variants is meaningful, depending on Kind.
type Value struct {
	Kind     Kind
	Text     string
	Items    []string
	Variants map[string]Value
}

// Scalar returns a scalar template value.
func Scalar(text string) Value {
	return Value{Kind: KindScalar, Text: text}
}

// List returns a list value whose items are joined on selection.
func List(items ...string) Value {
	return Value{Kind: KindList, Items: slices.Clone(items)}
}

// Variant returns a value that differs by platform.
func Variant(variants map[string]Value) Value {
	return Value{Kind: KindVariant, Variants: maps.Clone(variants)}
}

// Flatten returns the scalar form of v for platform p.
// It reports false if v is a variant without an entry for p.
func (v Value) Flatten(p Platform) (string, bool) {
	switch v.Kind {
	case KindScalar:
		return v.Text, true

	case KindList:
		return p.JoinList(v.Items...), true

	case KindVariant:
		sel, ok := v.Variants[p.Name]
		if !ok {
			return "", false
		}

		return sel.Flatten(p)

	default:
		return "", false
	}
}

// Spec is an ordered mapping of definition keys to raw values.
// The zero value is an empty Spec ready to use.
type Spec struct {
	keys []string
	vals map[string]Value
}

// ScalarSpec returns a Spec of scalar values from alternating key and value
// arguments. A trailing key without a value is assigned the empty string.
func ScalarSpec(kv ...string) Spec {
	var s Spec

	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}

		s.Set(kv[i], Scalar(v))
	}

	return s
}

// Len returns the number of definitions in s.
func (s Spec) Len() int { return len(s.keys) }

// Get returns the value of key and whether it is defined.
func (s Spec) Get(key string) (Value, bool) {
	v, ok := s.vals[key]

	return v, ok
}

// Set assigns value to key, appending key if it is not yet defined.
func (s *Spec) Set(key string, value Value) {
	if s.vals == nil {
		s.vals = make(map[string]Value)
	}

	if _, ok := s.vals[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.vals[key] = value
}

// Keys returns an iterator over the definition keys of s in order.
func (s Spec) Keys() iter.Seq[string] {
	return slices.Values(s.keys)
}

// All returns an iterator over the definitions of s in order.
func (s Spec) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range s.keys {
			if !yield(k, s.vals[k]) {
				return
			}
		}
	}
}

// Select flattens every value of spec for platform p.
//
// Scalars pass through unchanged and lists are joined with the path list
// separator of p. A platform variant is replaced by its entry for p; a
// variant without such an entry is omitted from the result.
func Select(spec Spec, p Platform) Env {
	var e Env

	for key, value := range spec.All() {
		if flat, ok := value.Flatten(p); ok {
			e.Set(key, flat)
		}
	}

	return e
}

// Compose selects each of specs for platform p and appends the results in
// order, so that list values contributed by several specs are joined.
func Compose(p Platform, specs ...Spec) Env {
	var e Env

	for _, spec := range specs {
		e = Append(e, Select(spec, p), p)
	}

	return e
}
