package convert

import (
	"regexp"
	"strings"
)

// RefDialect recovers a normalized inventory-book number from a free-text
// archive document reference. Extraction is best-effort: references with
// unrecognized structure yield no book, which is expected, not an error.
// Each source dataset has its own reference conventions, so dialects are
// explicit strategies rather than inline conditionals.
type RefDialect interface {
	// Extract returns the normalized book number recovered from the
	// document reference, given the companion archive-location field.
	Extract(docRef, location string) (string, bool)
}

// notarialRefPattern matches references into the Amsterdam notarial
// archives: an "NAA" or "GAA NA" prefix followed by a token terminated by
// space, comma or closing parenthesis.
var notarialRefPattern = regexp.MustCompile(`(?:NAA|GAA NA) ([^ ,)]*)`)

// AmsterdamNotarial extracts book numbers from Getty-style references, but
// only when the archive location places the document in Amsterdam; other
// locations use reference schemes this dialect cannot interpret.
type AmsterdamNotarial struct{}

func (AmsterdamNotarial) Extract(docRef, location string) (string, bool) {
	if !strings.Contains(location, "Amsterdam") {
		return "", false
	}
	m := notarialRefPattern.FindStringSubmatch(docRef)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// callNumberPattern matches Frick call numbers: an optional "NA" prefix,
// 2-5 digits, and an optional A/B suffix letter, with optional single
// spaces between the parts.
var callNumberPattern = regexp.MustCompile(`(?:NA)? ?(\d{2,5} ?[A-B]?)`)

// callNumberDisqualifiers mark reference schemes that are not notarial
// archive inventory numbers (orphan chamber, bankruptcy chamber, estate
// papers); their digits must not be mistaken for book numbers.
var callNumberDisqualifiers = []string{"WK", "DBK", "boedel"}

// CallNumber extracts book numbers from Frick/Montias call numbers. The
// companion location field is not consulted.
type CallNumber struct{}

func (CallNumber) Extract(docRef, _ string) (string, bool) {
	for _, marker := range callNumberDisqualifiers {
		if strings.Contains(docRef, marker) {
			return "", false
		}
	}
	m := callNumberPattern.FindStringSubmatch(docRef)
	if m == nil {
		return "", false
	}
	number := strings.ToUpper(m[1])
	return strings.ReplaceAll(number, " ", ""), true
}
