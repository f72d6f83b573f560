// Package fallback computes locale fallback chains. It is pure string
// work; absence of data for a chain entry is the resolver's problem.
package fallback

import "strings"

// Chain returns the ordered locales to consult for a request: the exact
// locale, its bare language when a region subtag is present, then the
// default locale. At most 3 entries, no duplicates, never empty for a
// non-empty default.
func Chain(locale, defaultLocale string) []string {
	chain := make([]string, 0, 3)

	add := func(code string) {
		if code == "" {
			return
		}
		for _, c := range chain {
			if c == code {
				return
			}
		}
		chain = append(chain, code)
	}

	add(locale)
	if i := strings.Index(locale, "-"); i > 0 {
		add(locale[:i])
	}
	add(defaultLocale)

	return chain
}
