// Package tgn maps country and city labels from the source datasets to
// Getty Thesaurus of Geographic Names (TGN) identifiers.
//
// The tables are fixed, process-wide configuration. They are passed into the
// graph builder explicitly so that builders stay pure functions of their
// input row; an unmapped label yields no reference, never an error.
package tgn

import "github.com/goldenagents/saagraph/vocabulary/saa"

// Term is a TGN identifier with its English label.
type Term struct {
	ID    string
	Label string
}

// IRI returns the full TGN term IRI.
func (t Term) IRI() string {
	return saa.TGNNamespace + t.ID
}

// Gazetteer resolves country and city labels to TGN terms.
type Gazetteer struct {
	countries map[string]Term
	cities    map[string]Term
}

// Default returns the gazetteer covering the labels that occur in the
// Getty, GPI and Frick source files.
func Default() *Gazetteer {
	return &Gazetteer{
		countries: map[string]Term{
			"Netherlands": {ID: "7016845", Label: "Netherlands"},
			"Belgium":     {ID: "1000063", Label: "Belgium"},
			"Germany":     {ID: "7000084", Label: "Germany"},
		},
		cities: map[string]Term{
			"Alkmaar":            {ID: "7007057", Label: "Alkmaar"},
			"Amsterdam":          {ID: "7006952", Label: "Amsterdam"},
			"Antwerp":            {ID: "7007856", Label: "Antwerp"},
			"Dordrecht":          {ID: "7006798", Label: "Dordrecht"},
			"Haarlem":            {ID: "7007048", Label: "Haarlem"},
			"Hamburg":            {ID: "7005289", Label: "Hamburg"},
			"Hoorn":              {ID: "7007056", Label: "Hoorn"},
			"Leiden":             {ID: "7006809", Label: "Leiden"},
			"Hague, The":         {ID: "7006810", Label: "Hague, The"},
			"Utrecht":            {ID: "7006926", Label: "Utrecht"},
			"Wijk bij Duurstede": {ID: "7017400", Label: "Wijk bij Duurstede"},
		},
	}
}

// Country resolves a country label.
func (g *Gazetteer) Country(label string) (Term, bool) {
	t, ok := g.countries[label]
	return t, ok
}

// City resolves a city label.
func (g *Gazetteer) City(label string) (Term, bool) {
	t, ok := g.cities[label]
	return t, ok
}

// Terms returns all known terms in a stable order: countries first, then
// cities, each sorted by label. Used to emit rdfs:label triples once per
// dataset partition.
func (g *Gazetteer) Terms() []Term {
	return append(sortedTerms(g.countries), sortedTerms(g.cities)...)
}
