package env

import "slices"

// Append joins the path-list values of b onto those of a.
//
// For a key defined in both, each non-empty entry of b's value is appended
// to a's value with the list separator of p, unless the value built so far
// already holds that entry. Entries repeated within b are therefore kept
// once, and a="a" with b="b::c" yields "a:b:c" rather than a plain
// concatenation. An empty value in a is replaced by the first entry. Entries
// already in a are never removed, even when repeated. Keys defined in only
// one of a and b are copied unchanged. The result lists the keys of a
// followed by the keys only b defines.
func Append(a, b Env, p Platform) Env {
	result := a.Clone()

	for key, value := range b.All() {
		if !result.Has(key) {
			result.Set(key, value)

			continue
		}

		for _, entry := range p.SplitList(value) {
			if entry == "" {
				continue
			}

			current := result.Get(key)

			switch {
			case current == "":
				result.Set(key, entry)

			case !slices.Contains(p.SplitList(current), entry):
				result.Set(key, current+p.PathListSeparator+entry)
			}
		}
	}

	return result
}

// Merge folds the computed environment flat into the host environment
// current.
//
// Each value of flat is formatted so that a reference to its own key yields
// the value of that key in current, or the empty string if current does not
// define it. Other tokens yield the value already merged for that key from
// flat, else the value in current, else remain literal. Keys only current
// defines are carried over unchanged, ahead of keys only flat defines.
//
// Merge does not remove entries repeated across the two environments.
func Merge(flat, current Env) Env {
	result := current.Clone()
	merged := make(map[string]struct{}, flat.Len())

	for key, raw := range flat.All() {
		value := Format(raw, func(name string) (string, bool) {
			if name == key {
				return current.Get(name), true
			}

			if _, ok := merged[name]; ok {
				return result.Lookup(name)
			}

			return current.Lookup(name)
		})

		result.Set(key, value)
		merged[key] = struct{}{}
	}

	return result
}
