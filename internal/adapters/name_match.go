package adapters

import (
	"strings"

	"modtagger/internal/shared"
)

// matchModName reports whether candidate matches a name search for query.
// Strict matching requires equal normalized names. Loose matching also
// accepts one name containing the other, or every query word appearing in
// the candidate.
func matchModName(query string, candidate string, strict bool) bool {
	q := shared.NormalizeModName(query)
	c := shared.NormalizeModName(candidate)
	if q == "" || c == "" {
		return false
	}
	if q == c {
		return true
	}
	if strict {
		return false
	}
	if strings.Contains(c, q) || strings.Contains(q, c) {
		return true
	}
	words := map[string]struct{}{}
	for _, word := range strings.Fields(c) {
		words[word] = struct{}{}
	}
	for _, word := range strings.Fields(q) {
		if _, ok := words[word]; !ok {
			return false
		}
	}
	return true
}
