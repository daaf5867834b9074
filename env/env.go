package env

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Env is an ordered mapping of variable names to string values.
//
// Keys are kept in first-insertion order; assigning to an existing key
// replaces its value without moving it. The zero value is an empty Env ready
// to use.
//
// Env serves both as a flattened specification (values may still contain
// tokens) and as a resolved environment.
type Env struct {
	keys []string
	vals map[string]string
}

// NewEnv returns an Env holding the given alternating key and value
// arguments. A trailing key without a value is assigned the empty string.
func NewEnv(kv ...string) Env {
	var e Env

	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}

		e.Set(kv[i], v)
	}

	return e
}

// FromMap returns an Env holding the entries of m in lexical key order.
func FromMap(m map[string]string) Env {
	var e Env

	for _, k := range slices.Sorted(maps.Keys(m)) {
		e.Set(k, m[k])
	}

	return e
}

// FromEnviron returns an Env from a list of "KEY=VALUE" strings such as the
// one returned by os.Environ. Entries without '=' or with an empty key are
// skipped; later duplicates replace earlier ones.
func FromEnviron(environ []string) Env {
	var e Env

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if ok && key != "" {
			e.Set(key, value)
		}
	}

	return e
}

// FromEnvironFor is like [FromEnviron] for an environment of platform p.
// Windows variable names are case insensitive, so there every key is folded
// to upper case and entries differing only in case replace each other.
func FromEnvironFor(environ []string, p Platform) Env {
	if p.Name != Windows {
		return FromEnviron(environ)
	}

	var e Env

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if ok && key != "" {
			e.Set(strings.ToUpper(key), value)
		}
	}

	return e
}

// Len returns the number of keys in e.
func (e Env) Len() int { return len(e.keys) }

// Get returns the value of key, or the empty string if key is not defined.
func (e Env) Get(key string) string { return e.vals[key] }

// Lookup returns the value of key and whether it is defined.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vals[key]

	return v, ok
}

// Has reports whether key is defined.
func (e Env) Has(key string) bool {
	_, ok := e.vals[key]

	return ok
}

// Set assigns value to key, appending key if it is not yet defined.
func (e *Env) Set(key, value string) {
	if e.vals == nil {
		e.vals = make(map[string]string)
	}

	if _, ok := e.vals[key]; !ok {
		e.keys = append(e.keys, key)
	}

	e.vals[key] = value
}

// Delete removes key from e.
func (e *Env) Delete(key string) {
	if _, ok := e.vals[key]; !ok {
		return
	}

	delete(e.vals, key)
	e.keys = slices.DeleteFunc(e.keys, func(k string) bool { return k == key })
}

// Keys returns an iterator over the keys of e in order.
func (e Env) Keys() iter.Seq[string] {
	return slices.Values(e.keys)
}

// All returns an iterator over the key/value pairs of e in order.
func (e Env) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range e.keys {
			if !yield(k, e.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of e that shares no storage with it.
func (e Env) Clone() Env {
	return Env{
		keys: slices.Clone(e.keys),
		vals: maps.Clone(e.vals),
	}
}

// Map returns the entries of e as an unordered map.
func (e Env) Map() map[string]string {
	m := make(map[string]string, len(e.keys))
	maps.Copy(m, e.vals)

	return m
}

// Environ returns the entries of e as "KEY=VALUE" strings in order, suitable
// for os/exec.Cmd.Env.
func (e Env) Environ() []string {
	list := make([]string, 0, len(e.keys))
	for k, v := range e.All() {
		list = append(list, k+"="+v)
	}

	return list
}

// Equal reports whether e and other hold the same entries, ignoring order.
func (e Env) Equal(other Env) bool {
	return maps.Equal(e.vals, other.vals)
}

// String returns e formatted as newline-separated "KEY=VALUE" lines.
func (e Env) String() string {
	return strings.Join(e.Environ(), "\n")
}

// MarshalJSON encodes e as a JSON object with keys in order.
func (e Env) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.vals[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
