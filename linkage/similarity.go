package linkage

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity scores two personal names in [0, 1], insensitive to token
// order: 1.0 means the names carry the same token multiset, lower scores
// mean decreasing token overlap and agreement. The score is a normalized
// Levenshtein distance over the token-sorted forms of both names.
func Similarity(a, b string) float64 {
	na, nb := tokenSort(a), tokenSort(b)
	if na == "" && nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	longest := len(na)
	if len(nb) > longest {
		longest = len(nb)
	}

	dist := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(dist)/float64(longest)
}

// tokenSort lowercases a name, splits it on every non-alphanumeric rune,
// sorts the tokens, and joins them with single spaces. "Wit, Jan de" and
// "Jan de Wit" normalize to the same string.
func tokenSort(s string) string {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isAlphanumeric(r)
	})
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') || r > 127
}
