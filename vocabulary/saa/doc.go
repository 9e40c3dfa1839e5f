// Package saa provides the domain vocabulary for the Amsterdam City Archives
// (Stadsarchief Amsterdam, SAA) inventory ontology used by the Golden Agents
// datasets.
//
// The vocabulary follows the semstreams pattern:
//   - Predicates use three-level dotted notation (saa.inventory.identifier)
//   - Predicates are registered in init() using vocabulary.Register()
//   - IRI mappings use vocabulary.WithIRI() so RDF export can translate
//     dotted predicates back to the published SAA ontology terms
//
// Entity instances live under per-type namespaces (Inventory, Person, Item)
// so that identifiers minted from raw source keys never collide across
// entity types. Dataset partitions are named graphs under the ga: namespace.
package saa
