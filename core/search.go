package core

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// fuzzyMinRunes is the shortest query that gets typo tolerance; shorter
// queries would match almost every word.
const fuzzyMinRunes = 4

const fuzzyMaxDistance = 2

// matchQuery reports whether a chapter matches a menu search. Substring
// matches on title or subtitle always count; longer queries also accept any
// title word within a small edit distance.
func matchQuery(d Descriptor, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Subtitle), q) {
		return true
	}
	if len([]rune(q)) < fuzzyMinRunes {
		return false
	}
	words := strings.FieldsFunc(strings.ToLower(d.Title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if levenshtein.ComputeDistance(q, w) <= fuzzyMaxDistance {
			return true
		}
	}
	return false
}

func filterDescriptors(descs []Descriptor, query string) []Descriptor {
	if strings.TrimSpace(query) == "" {
		return descs
	}
	out := make([]Descriptor, 0, len(descs))
	for _, d := range descs {
		if matchQuery(d, query) {
			out = append(out, d)
		}
	}
	return out
}
