// Package graph provides the dataset-partitioned entity graph that the
// converters build and the exporters serialize.
package graph

import (
	"fmt"

	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// Object literal and reference types. Triples carry one of these (or a bare
// string) as their object; the exporter and publisher format each kind.

// IRI is a raw IRI object, used for external references such as TGN terms.
type IRI string

// Ref points at another entity in the graph by type and minted identifier.
type Ref struct {
	Type saa.EntityType
	ID   string
}

// Text is a language-tagged literal.
type Text struct {
	Value string
	Lang  string
}

// DateText is a date literal carried verbatim from the source, typed as
// xsd:date without being parsed into calendar components. Some sources
// record dates too loosely for strict parsing (a bare year, for instance).
type DateText string

// Date is a calendar date literal, serialized as xsd:date.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Triple is one statement about an entity. The subject is the owning entity.
type Triple struct {
	Predicate string
	Object    any
}

// Entity is a typed node with its statements in insertion order.
type Entity struct {
	ID      string
	Type    saa.EntityType
	Triples []Triple
}

// EntityID returns the dataset-independent dotted identifier used for
// knowledge-graph ingestion.
func (e *Entity) EntityID() string {
	return fmt.Sprintf("saa.%s.%s", e.Type, e.ID)
}

type entityKey struct {
	t  saa.EntityType
	id string
}

type tripleKey struct {
	entity    entityKey
	predicate string
	object    string
}

// Graph accumulates entities and triples for one dataset partition.
//
// Adding a statement that is already present is a no-op, and an entity
// created twice resolves to the same node; this gives the set semantics the
// source model relies on, in particular the implicit deduplication of
// Archive entities whose minted identifiers coincide across rows. Iteration
// order is insertion order, so identical input reproduces identical output.
type Graph struct {
	dataset  string
	entities []*Entity
	index    map[entityKey]*Entity
	seen     map[tripleKey]struct{}
}

// New creates an empty graph for the named dataset partition.
func New(dataset string) *Graph {
	return &Graph{
		dataset: dataset,
		index:   make(map[entityKey]*Entity),
		seen:    make(map[tripleKey]struct{}),
	}
}

// Dataset returns the partition name.
func (g *Graph) Dataset() string {
	return g.dataset
}

// GraphIRI returns the named-graph IRI for this partition.
func (g *Graph) GraphIRI() string {
	return saa.DatasetNamespace + g.dataset
}

// Entity returns the node for (type, id), creating it on first use.
func (g *Graph) Entity(t saa.EntityType, id string) *Entity {
	key := entityKey{t: t, id: id}
	if e, ok := g.index[key]; ok {
		return e
	}
	e := &Entity{ID: id, Type: t}
	g.index[key] = e
	g.entities = append(g.entities, e)
	return e
}

// Add asserts one statement about (type, id). Duplicate statements are
// dropped.
func (g *Graph) Add(t saa.EntityType, id, predicate string, object any) {
	e := g.Entity(t, id)
	key := tripleKey{
		entity:    entityKey{t: t, id: id},
		predicate: predicate,
		object:    objectKey(object),
	}
	if _, dup := g.seen[key]; dup {
		return
	}
	g.seen[key] = struct{}{}
	e.Triples = append(e.Triples, Triple{Predicate: predicate, Object: object})
}

// Entities returns all nodes in insertion order.
func (g *Graph) Entities() []*Entity {
	return g.entities
}

// Len returns the number of distinct statements in the graph.
func (g *Graph) Len() int {
	return len(g.seen)
}

// objectKey folds an object value to a comparable form for deduplication.
func objectKey(object any) string {
	switch v := object.(type) {
	case IRI:
		return "i|" + string(v)
	case Ref:
		return "r|" + string(v.Type) + "|" + v.ID
	case Text:
		return "t|" + v.Lang + "|" + v.Value
	case Date:
		return "d|" + v.String()
	case DateText:
		return "d|" + string(v)
	case string:
		return "s|" + v
	default:
		return fmt.Sprintf("v|%v", v)
	}
}
