package env

// Resolve computes the environment described by spec.
//
// Platform variants are selected for the host platform (see [WithPlatform])
// and the flattened specification is expanded by [Build].
func Resolve(spec Spec, opts ...Option) (Env, error) {
	c := makeConfig(opts...)

	return build(Select(spec, c.platform), c)
}

// Build expands every token and dynamic key of an already flattened
// specification.
//
// Keys are processed in [Order]. Each value is formatted against the values
// known so far, never against its own key, so self-references survive for
// [Merge]. A dynamic key is then renamed to its formatted form.
//
// Build returns a *[CycleError] if some keys cannot be ordered, unless
// [WithAllowCycle] is set, and a *[DynamicKeyClashError] if two definitions
// produce the same key with different values, unless [WithAllowKeyClash] is
// set. The result is ordered by processing order.
func Build(flat Env, opts ...Option) (Env, error) {
	return build(flat, makeConfig(opts...))
}

func build(flat Env, c config) (Env, error) {
	order, cyclic := Order(flat)
	if len(cyclic) > 0 {
		if !c.allowCycle {
			return Env{}, &CycleError{Keys: cyclic}
		}

		order = append(order, cyclic...)
	}

	// known starts out with the raw values and is updated as keys resolve.
	known := flat.Clone()

	var (
		result Env
		source = make(map[string]string, flat.Len())
	)

	for _, key := range order {
		value := Format(known.vals[key], func(name string) (string, bool) {
			if name == key {
				return "", false
			}

			return known.Lookup(name)
		})

		known.vals[key] = value

		final := key
		if len(Tokens(key)) > 0 {
			final = Format(key, known.Lookup)
		}

		if prev, ok := source[final]; ok && prev != key {
			if old := result.vals[final]; old != value && !c.allowKeyClash {
				return Env{}, &DynamicKeyClashError{
					Key:     final,
					Sources: []string{prev, key},
					Values:  []string{old, value},
				}
			}
		}

		source[final] = key
		result.Set(final, value)
	}

	if c.cleanup {
		result = Cleanup(result, c.platform)
	}

	return result, nil
}
