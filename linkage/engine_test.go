package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

func candidate(inventory, record string, actType saa.ActType, ownerB string) Candidate {
	return Candidate{
		Dataset:   "Dutch_Archival_Inventories",
		Inventory: inventory,
		OwnerA:    "Jan de Wit",
		OwnerB:    ownerB,
		Date:      "1684-10-04",
		ActType:   actType,
		Record:    record,
	}
}

func TestEngineThreshold(t *testing.T) {
	e := NewEngine(0, nil, nil)

	ls, report := e.Run([]Candidate{
		// Similarity 0.9: accepted.
		candidate("N-100", "A65019", saa.ActTestament, "Jan de Wid"),
		// Similarity exactly 0.8: rejected, the threshold is strict.
		candidate("N-101", "A65020", saa.ActTestament, "Jan de Wyd"),
	})

	assert.Equal(t, []string{"N-100"}, ls.Inventories())
	assert.Equal(t, 2, report.Scored)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.BelowThreshold)

	links := ls.Links("N-100")
	require.Len(t, links, 1)
	assert.Equal(t, "A65019", links[0].Record)
	assert.InDelta(t, 0.9, links[0].Score, 1e-9)
}

func TestEngineActTypeWhitelist(t *testing.T) {
	e := NewEngine(0, nil, nil)

	// A perfect name match with an act type outside the whitelist is still
	// rejected.
	ls, report := e.Run([]Candidate{
		candidate("N-100", "A65019", "Schepenkennis", "Jan de Wit"),
		candidate("N-100", "A65020", saa.ActBoedelinventaris, "Jan de Wit"),
	})

	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.ExcludedActType)
	require.Len(t, ls.Links("N-100"), 1)
	assert.Equal(t, "A65020", ls.Links("N-100")[0].Record)
}

func TestEngineDeduplicatesIdenticalProposals(t *testing.T) {
	e := NewEngine(0, nil, nil)

	c := candidate("N-100", "A65019", saa.ActTestament, "Jan de Wit")
	ls, report := e.Run([]Candidate{c, c})

	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Duplicate)
	assert.Len(t, ls.Links("N-100"), 1)
	assert.Equal(t, 1, ls.Len())
}

func TestEngineAccumulatesAcrossDatasetsAndActTypes(t *testing.T) {
	e := NewEngine(0, nil, nil)

	c1 := candidate("N-100", "A65019", saa.ActTestament, "Jan de Wit")
	c2 := candidate("N-100", "A65019", saa.ActBoedelscheiding, "Jan de Wit")
	c3 := candidate("N-100", "A65019", saa.ActTestament, "Jan de Wit")
	c3.Dataset = "Dutch_Archival_Inventories_Frick"

	ls, report := e.Run([]Candidate{c1, c2, c3})

	assert.Equal(t, 3, report.Accepted)
	assert.Equal(t, 0, report.Duplicate)
	assert.Len(t, ls.Links("N-100"), 3)
}

func TestEngineSkipsIncompleteCandidates(t *testing.T) {
	e := NewEngine(0, nil, nil)

	broken := candidate("N-100", "A65019", saa.ActTestament, "")
	ls, report := e.Run([]Candidate{broken})

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Scored)
	assert.Empty(t, ls.Inventories())
}

func TestEngineCustomThresholdAndActTypes(t *testing.T) {
	e := NewEngine(0.5, []saa.ActType{"Schepenkennis"}, nil)

	ls, _ := e.Run([]Candidate{
		candidate("N-100", "A65019", "Schepenkennis", "Jan de Wyd"),
		candidate("N-101", "A65020", saa.ActTestament, "Jan de Wit"),
	})

	assert.Equal(t, []string{"N-100"}, ls.Inventories())
}

func TestEngineReportHasRunID(t *testing.T) {
	e := NewEngine(0, nil, nil)
	_, r1 := e.Run(nil)
	_, r2 := e.Run(nil)
	assert.NotEmpty(t, r1.RunID)
	assert.NotEqual(t, r1.RunID, r2.RunID)
}

func TestCandidateFromRow(t *testing.T) {
	c := CandidateFromRow(source.Row{
		"dataset":      "Dutch_Archival_Inventories",
		"inventory":    "N-100",
		"owner_name_a": "Jan de Wit",
		"owner_name_b": "Wit, Jan de",
		"date":         "1684-10-04",
		"act_type":     "Testament",
		"record":       "A65019",
	})

	assert.Equal(t, Candidate{
		Dataset:   "Dutch_Archival_Inventories",
		Inventory: "N-100",
		OwnerA:    "Jan de Wit",
		OwnerB:    "Wit, Jan de",
		Date:      "1684-10-04",
		ActType:   saa.ActTestament,
		Record:    "A65019",
	}, c)
}

func TestLinksetInsertionOrder(t *testing.T) {
	ls := NewLinkset()
	require.True(t, ls.add("N-2", Link{Dataset: "d", Record: "r1", ActType: saa.ActTestament}))
	require.True(t, ls.add("N-1", Link{Dataset: "d", Record: "r1", ActType: saa.ActTestament}))
	require.True(t, ls.add("N-2", Link{Dataset: "d", Record: "r2", ActType: saa.ActTestament}))

	assert.Equal(t, []string{"N-2", "N-1"}, ls.Inventories())
	assert.Equal(t, "r1", ls.Links("N-2")[0].Record)
	assert.Equal(t, "r2", ls.Links("N-2")[1].Record)
}
