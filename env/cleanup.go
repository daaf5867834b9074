package env

// Cleanup removes empty and repeated entries from path-list values.
//
// A value is treated as a path list only if it contains the list separator
// of p and every non-empty entry contains a directory separator of p. Its
// entries are then deduplicated, keeping the first occurrence. Every other
// value is copied unchanged, including values with empty or repeated entries
// that are not all paths (e.g., "A:A:B" or ":0.0").
func Cleanup(e Env, p Platform) Env {
	var result Env

	for key, value := range e.All() {
		result.Set(key, cleanList(value, p))
	}

	return result
}

func cleanList(value string, p Platform) string {
	entries := p.SplitList(value)
	if len(entries) < 2 {
		return value
	}

	kept := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if entry == "" {
			continue
		}

		if !p.IsPath(entry) {
			return value
		}

		if _, dup := seen[entry]; dup {
			continue
		}

		seen[entry] = struct{}{}
		kept = append(kept, entry)
	}

	return p.JoinList(kept...)
}
