package tgn

import "sort"

func sortedTerms(m map[string]Term) []Term {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	terms := make([]Term, 0, len(m))
	for _, l := range labels {
		terms = append(terms, m[l])
	}
	return terms
}
