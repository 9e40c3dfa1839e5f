package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/goldenagents/saagraph/graph"
)

// parseDate builds a calendar date from year/month/day column values.
// Non-numeric or out-of-range components make the whole date absent; the
// caller treats that as a missing value, never as an error.
func parseDate(year, month, day string) (graph.Date, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return graph.Date{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return graph.Date{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return graph.Date{}, false
	}

	if y < 1 || y > 9999 || m < 1 || m > 12 || d < 1 {
		return graph.Date{}, false
	}
	// Reject days the month doesn't have; time.Date would silently
	// normalize them into the next month.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != time.Month(m) || t.Year() != y {
		return graph.Date{}, false
	}

	return graph.Date{Year: y, Month: m, Day: d}, true
}

// registrationDate derives the single registration date from whichever of
// begin and end parsed: begin wins when both are present or only begin is;
// end is used when only end is; neither yields no date.
func registrationDate(begin, end graph.Date, hasBegin, hasEnd bool) (graph.Date, bool) {
	switch {
	case hasBegin:
		return begin, true
	case hasEnd:
		return end, true
	default:
		return graph.Date{}, false
	}
}

// normalizeDateText makes a free-form source date ISO-8601 shaped: slashes
// become hyphens and a "c. " (circa) marker is dropped. The result is kept
// as an opaque xsd:date literal; sources using this form record dates too
// loosely for strict parsing.
func normalizeDateText(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "c. ", "")
	return s
}
