package graph

import (
	"fmt"
	"strings"

	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// Identifier minting. All identifiers here are deterministic functions of
// their inputs: the same inputs always mint the same string, across runs and
// process invocations, and distinct (role, position) or (record, index)
// pairs never collide. Minting never fails; an empty source value means the
// caller skips the entity instead.

// PersonID mints the identifier for a person appearing on a record in a
// role at a 1-based position: {recordID}{role}{position:02d}.
func PersonID(recordID string, role saa.Role, position int) string {
	return fmt.Sprintf("%s%s%02d", recordID, role, position)
}

// ItemID mints the identifier for a cataloged item from its owning record
// and its index column value: {recordID}_{index zero-padded to 4}. The index
// is padded as a string, matching the source convention, so non-numeric
// index values still mint stable identifiers.
func ItemID(recordID, index string) string {
	return recordID + "_" + zfill(index, 4)
}

// ItemIDFromLot mints an item identifier from a lot reference by stripping
// the bracket and backtick markup the source uses for uncertain readings.
func ItemIDFromLot(lot string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '`':
			return -1
		}
		return r
	}, lot)
}

// ArchiveID mints the identifier for a holding institution from its name
// and location free text, retaining only ASCII letters. Archives whose
// name+location collapse to the same string are intentionally the same
// node; this is the model's only implicit entity deduplication.
func ArchiveID(name, location string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, name+location)
}

// BookID mints the identifier for a notarial register from its normalized
// book number as produced by the reference parser.
func BookID(number string) string {
	return "saaInventory" + number
}

// zfill left-pads s with zeros to at least width characters.
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
