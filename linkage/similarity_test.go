package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSort(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already sorted", "de jan wit", "de jan wit"},
		{"reordered", "Wit, Jan de", "de jan wit"},
		{"punctuation split", "Trip,Louis", "louis trip"},
		{"collapses whitespace", "  Jan   de  Wit ", "de jan wit"},
		{"empty", "", ""},
		{"punctuation only", ",.()", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenSort(tc.in))
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Jan de Wit", "Jan de Wit", 1},
		{"token order insensitive", "Wit, Jan de", "Jan de Wit", 1},
		{"case insensitive", "JAN DE WIT", "jan de wit", 1},
		// Sorted forms "de jan wit" vs "de jan wid": one edit over ten runes.
		{"one edit in ten", "Jan de Wit", "Jan de Wid", 0.9},
		// Two edits over ten runes lands exactly on the threshold boundary.
		{"two edits in ten", "Jan de Wit", "Jan de Wyd", 0.8},
		{"both empty", "", "", 0},
		{"one empty", "Jan de Wit", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Similarity(tc.a, tc.b), 1e-9)
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a, b := "Uylenburgh, Gerrit", "Gerrit van Uylenburg"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}
