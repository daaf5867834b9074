package env

import "strings"

// Tokens returns the distinct names referenced by tokens in s, in order of
// first appearance.
//
// A token is an opening brace, a non-empty name without braces, and a closing
// brace. Any other brace is literal text.
func Tokens(s string) []string {
	var (
		names []string
		seen  map[string]struct{}
	)

	scan(s, func(string) {}, func(name string) {
		if _, dup := seen[name]; dup {
			return
		}

		if seen == nil {
			seen = make(map[string]struct{})
		}

		seen[name] = struct{}{}
		names = append(names, name)
	})

	return names
}

// Format substitutes each token in s with the value lookup reports for its
// name. Tokens lookup does not know are written back in their literal {name}
// form, so formatting never fails and may be repeated as more names become
// known.
func Format(s string, lookup func(name string) (string, bool)) string {
	if !strings.ContainsRune(s, '{') {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	scan(s,
		func(text string) { sb.WriteString(text) },
		func(name string) {
			if v, ok := lookup(name); ok {
				sb.WriteString(v)

				return
			}

			sb.WriteByte('{')
			sb.WriteString(name)
			sb.WriteByte('}')
		},
	)

	return sb.String()
}

// scan splits s into literal text and token names, calling the respective
// function for each in order.
func scan(s string, text, token func(string)) {
	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			text(s)

			return
		}

		if open > 0 {
			text(s[:open])
		}

		s = s[open:]

		end := strings.IndexAny(s[1:], "{}")
		switch {
		case end < 0:
			// unterminated
			text(s)

			return

		case s[1+end] == '{' || end == 0:
			// nested opening brace or empty name
			text(s[:1+end])
			s = s[1+end:]

			if end == 0 && s[0] == '}' {
				text(s[:1])
				s = s[1:]
			}

		default:
			token(s[1 : 1+end])
			s = s[2+end:]
		}
	}
}
