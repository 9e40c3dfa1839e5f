package linkage

import "github.com/goldenagents/saagraph/vocabulary/saa"

// Link is one accepted co-reference between an inventory and an external
// notarial act. The score records the name similarity that justified it,
// for diagnostics; identity is (dataset, record, act type).
type Link struct {
	Dataset string
	Record  string
	ActType saa.ActType
	Score   float64
}

type linkKey struct {
	dataset string
	record  string
	actType saa.ActType
}

// Linkset accumulates accepted links grouped by inventory. Identical
// proposals arising from repeated joins collapse into one link; the first
// accepted score is kept. Inventories and their links keep insertion order.
type Linkset struct {
	inventories []string
	links       map[string][]Link
	seen        map[string]map[linkKey]struct{}
}

// NewLinkset creates an empty linkset.
func NewLinkset() *Linkset {
	return &Linkset{
		links: make(map[string][]Link),
		seen:  make(map[string]map[linkKey]struct{}),
	}
}

// add records a link for an inventory. Returns false when the same
// (dataset, record, act type) was already proposed for that inventory.
func (ls *Linkset) add(inventory string, link Link) bool {
	keys, ok := ls.seen[inventory]
	if !ok {
		keys = make(map[linkKey]struct{})
		ls.seen[inventory] = keys
		ls.inventories = append(ls.inventories, inventory)
	}

	key := linkKey{dataset: link.Dataset, record: link.Record, actType: link.ActType}
	if _, dup := keys[key]; dup {
		return false
	}
	keys[key] = struct{}{}
	ls.links[inventory] = append(ls.links[inventory], link)
	return true
}

// Inventories returns the linked inventory identifiers in insertion order.
// Inventories with no accepted link never appear.
func (ls *Linkset) Inventories() []string {
	return ls.inventories
}

// Links returns the accepted links for one inventory in insertion order.
func (ls *Linkset) Links(inventory string) []Link {
	return ls.links[inventory]
}

// Len returns the total number of accepted links.
func (ls *Linkset) Len() int {
	var n int
	for _, links := range ls.links {
		n += len(links)
	}
	return n
}
