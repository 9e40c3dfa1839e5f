// Package linkage proposes cross-dataset co-reference links between
// archival inventories and externally recorded notarial acts. Candidates
// arrive pre-joined (the join on book number and date happens upstream);
// the engine only decides, per candidate, whether the paired owner names
// are similar enough and the act type is strong enough evidence.
package linkage

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// DefaultThreshold is the similarity score a candidate must strictly
// exceed to be accepted. Calibrated for the token-sorted normalized
// Levenshtein score in Similarity; a different similarity measure needs a
// different threshold.
const DefaultThreshold = 0.8

// Candidate is one pre-joined row pairing an inventory's owner name with a
// party named in an external notarial act that shares the same inventory
// book and date.
type Candidate struct {
	Dataset   string
	Inventory string
	OwnerA    string
	OwnerB    string
	Date      string
	ActType   saa.ActType
	Record    string
}

// Candidate-table column names.
const (
	colDataset   = "dataset"
	colInventory = "inventory"
	colOwnerA    = "owner_name_a"
	colOwnerB    = "owner_name_b"
	colDate      = "date"
	colActType   = "act_type"
	colRecord    = "record"
)

// CandidateFromRow maps one candidate-table CSV row to a Candidate.
func CandidateFromRow(row source.Row) Candidate {
	return Candidate{
		Dataset:   row.Get(colDataset),
		Inventory: row.Get(colInventory),
		OwnerA:    row.Get(colOwnerA),
		OwnerB:    row.Get(colOwnerB),
		Date:      row.Get(colDate),
		ActType:   saa.ActType(row.Get(colActType)),
		Record:    row.Get(colRecord),
	}
}

// ReadCandidatesFile reads a candidate table from a header-keyed CSV file.
func ReadCandidatesFile(path string, logger *slog.Logger) ([]Candidate, error) {
	rows, err := source.ReadFile(path, logger)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, CandidateFromRow(row))
	}
	return candidates, nil
}

// Report summarizes one linkage run.
type Report struct {
	RunID string

	// Scored counts candidates with all required fields present.
	Scored int

	// Accepted counts candidates that passed both gates and were new to
	// the linkset.
	Accepted int

	// Duplicate counts accepted candidates that re-proposed an existing
	// (inventory, dataset, record, act type) link.
	Duplicate int

	// BelowThreshold counts candidates rejected on name similarity.
	BelowThreshold int

	// ExcludedActType counts candidates whose names matched but whose act
	// type is outside the whitelist.
	ExcludedActType int

	// Skipped counts candidates missing a required field.
	Skipped int
}

// Engine scores candidates and accumulates accepted links.
type Engine struct {
	threshold float64
	actTypes  map[saa.ActType]struct{}
	logger    *slog.Logger
}

// NewEngine creates a linkage engine. A zero threshold selects
// DefaultThreshold, nil actTypes selects saa.LinkableActTypes, and a nil
// logger selects slog.Default.
func NewEngine(threshold float64, actTypes []saa.ActType, logger *slog.Logger) *Engine {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if actTypes == nil {
		actTypes = saa.LinkableActTypes()
	}
	if logger == nil {
		logger = slog.Default()
	}

	allowed := make(map[saa.ActType]struct{}, len(actTypes))
	for _, t := range actTypes {
		allowed[t] = struct{}{}
	}
	return &Engine{threshold: threshold, actTypes: allowed, logger: logger}
}

// Run scores every candidate and returns the aggregated linkset. A
// candidate missing a required field is skipped on its own; nothing aborts
// the batch.
func (e *Engine) Run(candidates []Candidate) (*Linkset, *Report) {
	ls := NewLinkset()
	report := &Report{RunID: uuid.NewString()}

	for _, c := range candidates {
		if c.Inventory == "" || c.Record == "" || c.OwnerA == "" || c.OwnerB == "" {
			e.logger.Warn("Skipping candidate with missing fields",
				"dataset", c.Dataset, "inventory", c.Inventory, "record", c.Record)
			report.Skipped++
			continue
		}

		report.Scored++
		score := Similarity(c.OwnerA, c.OwnerB)
		if score <= e.threshold {
			report.BelowThreshold++
			continue
		}
		if _, ok := e.actTypes[c.ActType]; !ok {
			report.ExcludedActType++
			continue
		}

		link := Link{Dataset: c.Dataset, Record: c.Record, ActType: c.ActType, Score: score}
		if !ls.add(c.Inventory, link) {
			report.Duplicate++
			continue
		}
		report.Accepted++
		e.logger.Debug("Accepted link",
			"run_id", report.RunID,
			"inventory", c.Inventory,
			"record", c.Record,
			"act_type", c.ActType,
			"score", score,
			"owner_a", c.OwnerA,
			"owner_b", c.OwnerB)
	}

	return ls, report
}
