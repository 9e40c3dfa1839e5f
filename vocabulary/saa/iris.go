package saa

// Namespace is the base IRI for SAA ontology terms.
const Namespace = "http://goldenagents.org/uva/SAA/ontology/"

// DatasetNamespace is the base IRI for dataset named graphs.
const DatasetNamespace = "http://goldenagents.org/uva/SAA/datasets/"

// Entity instance namespaces, one per entity type so that raw source keys
// cannot collide across types.
const (
	PersonNamespace    = "http://goldenagents.org/uva/SAA/Person/"
	InventoryNamespace = "http://goldenagents.org/uva/SAA/Inventory/"
	ItemNamespace      = "http://goldenagents.org/uva/SAA/Inventory/Item/"
)

// TGNNamespace is the base IRI for Getty Thesaurus of Geographic Names terms.
const TGNNamespace = "http://vocab.getty.edu/tgn/"

// Class IRIs for the entity types in the SAA ontology.
const (
	ClassInventory     = Namespace + "Inventory"
	ClassPerson        = Namespace + "Person"
	ClassItem          = Namespace + "Item"
	ClassArchive       = Namespace + "Archive"
	ClassInventoryBook = Namespace + "InventoryBook"
)

// Standard W3C IRIs used alongside the SAA ontology.
const (
	RDFType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSComment = "http://www.w3.org/2000/01/rdf-schema#comment"
	XSDDate   = "http://www.w3.org/2001/XMLSchema#date"
)

// EntityType identifies the kind of entity an identifier belongs to.
type EntityType string

const (
	EntityTypeInventory     EntityType = "inventory"
	EntityTypePerson        EntityType = "person"
	EntityTypeItem          EntityType = "item"
	EntityTypeArchive       EntityType = "archive"
	EntityTypeInventoryBook EntityType = "book"

	// EntityTypeTerm is an external vocabulary term (a TGN place) that the
	// graph only decorates with labels. It has no SAA class.
	EntityTypeTerm EntityType = "term"
)

// ClassIRI returns the ontology class IRI for an entity type.
func ClassIRI(t EntityType) string {
	switch t {
	case EntityTypeInventory:
		return ClassInventory
	case EntityTypePerson:
		return ClassPerson
	case EntityTypeItem:
		return ClassItem
	case EntityTypeArchive:
		return ClassArchive
	case EntityTypeInventoryBook:
		return ClassInventoryBook
	}
	return ""
}

// InstanceIRI returns the instance IRI for an entity of the given type.
// Term identifiers are already full IRIs. Archive and InventoryBook entities
// have no published namespace; they are serialized as blank nodes keyed by
// their minted identifier.
func InstanceIRI(t EntityType, id string) (iri string, blank bool) {
	switch t {
	case EntityTypeInventory:
		return InventoryNamespace + id, false
	case EntityTypePerson:
		return PersonNamespace + id, false
	case EntityTypeItem:
		return ItemNamespace + id, false
	case EntityTypeTerm:
		return id, false
	}
	return id, true
}
