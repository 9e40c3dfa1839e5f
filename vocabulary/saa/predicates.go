package saa

import "github.com/c360studio/semstreams/vocabulary"

// Inventory predicates describe one archival estate/probate record.
const (
	// InventoryIdentifier is the source record identifier, unique within
	// its dataset.
	InventoryIdentifier = "saa.inventory.identifier"

	// InventoryMontiasID is the Montias database identifier (Frick only).
	InventoryMontiasID = "saa.inventory.montias_id"

	// InventoryComment is the free-text introduction or commentary.
	InventoryComment = "saa.inventory.comment"

	// InventoryDocumentType is the document type label.
	InventoryDocumentType = "saa.inventory.document_type"

	// InventoryCountry links to a TGN country term.
	InventoryCountry = "saa.inventory.country"

	// InventoryCity links to a TGN city term.
	InventoryCity = "saa.inventory.city"

	// InventoryBeginDate is the begin date (xsd:date).
	InventoryBeginDate = "saa.inventory.begin_date"

	// InventoryEndDate is the end date (xsd:date).
	InventoryEndDate = "saa.inventory.end_date"

	// InventoryRegistrationDate is the single derived registration date.
	InventoryRegistrationDate = "saa.inventory.registration_date"

	// InventoryArchive links to the holding Archive.
	InventoryArchive = "saa.inventory.archive"

	// InventoryDocumentReference is the free-text archive document
	// reference as found in the source.
	InventoryDocumentReference = "saa.inventory.document_reference"

	// InventoryDocumentedIn links to the InventoryBook recovered from the
	// document reference.
	InventoryDocumentedIn = "saa.inventory.documented_in"

	// InventoryOwner links to an owner Person.
	InventoryOwner = "saa.inventory.owner"

	// InventoryBeneficiary links to a beneficiary Person.
	InventoryBeneficiary = "saa.inventory.beneficiary"

	// InventoryAppraiser links to an appraiser Person.
	InventoryAppraiser = "saa.inventory.appraiser"

	// InventoryAppraiserName is the appraiser carried as a plain literal
	// (Frick only, where no position index exists).
	InventoryAppraiserName = "saa.inventory.appraiser_name"

	// InventoryContent links to a cataloged Item.
	InventoryContent = "saa.inventory.content"

	// InventoryIsInRecord links an inventory to an external notarial act
	// record established by the linkage engine.
	InventoryIsInRecord = "saa.inventory.is_in_record"

	// InventoryRecord is the inverse of InventoryIsInRecord, asserted on
	// the external record.
	InventoryRecord = "saa.inventory.record"
)

// Person predicates describe a named individual in a role on one inventory.
const (
	// PersonLabel is the display name.
	PersonLabel = "saa.person.label"

	// PersonIsInRecord is the back-reference to the owning inventory.
	PersonIsInRecord = "saa.person.is_in_record"
)

// Item predicates describe one cataloged object within an inventory.
const (
	// ItemIndex is the item's index within the inventory contents list.
	ItemIndex = "saa.item.index"

	// ItemIdentifier is the external persistent identifier, when present.
	ItemIdentifier = "saa.item.identifier"

	// ItemLabel is the item title.
	ItemLabel = "saa.item.label"

	// ItemTranscription is the transcription text.
	ItemTranscription = "saa.item.transcription"

	// ItemRoom is the room label, when present.
	ItemRoom = "saa.item.room"

	// ItemValuation is the valuation amount, kept as an opaque string.
	ItemValuation = "saa.item.valuation"

	// ItemWorkType is the work/object type, when the source records one.
	ItemWorkType = "saa.item.work_type"

	// ItemArtist is the attributed artist name, when the source records one.
	ItemArtist = "saa.item.artist"

	// ItemIsInRecord is the back-reference to the owning inventory.
	ItemIsInRecord = "saa.item.is_in_record"
)

// TermLabel is the rdfs:label attached to external vocabulary terms.
const TermLabel = "saa.term.label"

// Archive and InventoryBook predicates.
const (
	// ArchiveLabel is the holding institution name.
	ArchiveLabel = "saa.archive.label"

	// ArchiveLocation is the institution's location free text.
	ArchiveLocation = "saa.archive.location"

	// BookNumber is the normalized notarial register number.
	BookNumber = "saa.book.inventory_number"

	// BookHeldBy links a book to the Archive holding it.
	BookHeldBy = "saa.book.held_by"
)

func init() {
	// Inventory
	vocabulary.Register(InventoryIdentifier,
		vocabulary.WithDescription("Source record identifier, unique within its dataset"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"identifier"))

	vocabulary.Register(InventoryMontiasID,
		vocabulary.WithDescription("Montias database identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"montiasId"))

	vocabulary.Register(InventoryComment,
		vocabulary.WithDescription("Free-text introduction or commentary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSComment))

	vocabulary.Register(InventoryDocumentType,
		vocabulary.WithDescription("Document type label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"documentType"))

	vocabulary.Register(InventoryCountry,
		vocabulary.WithDescription("TGN country reference"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"country"))

	vocabulary.Register(InventoryCity,
		vocabulary.WithDescription("TGN city reference"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"city"))

	vocabulary.Register(InventoryBeginDate,
		vocabulary.WithDescription("Begin date of the record"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(Namespace+"beginDate"))

	vocabulary.Register(InventoryEndDate,
		vocabulary.WithDescription("End date of the record"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(Namespace+"endDate"))

	vocabulary.Register(InventoryRegistrationDate,
		vocabulary.WithDescription("Derived registration date"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(Namespace+"registrationDate"))

	vocabulary.Register(InventoryArchive,
		vocabulary.WithDescription("Holding archive"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"archive"))

	vocabulary.Register(InventoryDocumentReference,
		vocabulary.WithDescription("Free-text archive document reference"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"archiveDocumentReference"))

	vocabulary.Register(InventoryDocumentedIn,
		vocabulary.WithDescription("Notarial register recovered from the document reference"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"documentedIn"))

	vocabulary.Register(InventoryOwner,
		vocabulary.WithDescription("Owner of the estate"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"owners"))

	vocabulary.Register(InventoryBeneficiary,
		vocabulary.WithDescription("Beneficiary of the estate"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"beneficiaries"))

	vocabulary.Register(InventoryAppraiser,
		vocabulary.WithDescription("Appraiser of the estate"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"appraisers"))

	vocabulary.Register(InventoryAppraiserName,
		vocabulary.WithDescription("Appraiser name carried as a literal"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"appraisers"))

	vocabulary.Register(InventoryContent,
		vocabulary.WithDescription("Cataloged item belonging to the inventory"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"content"))

	vocabulary.Register(InventoryIsInRecord,
		vocabulary.WithDescription("External notarial act documenting this inventory"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"isInRecord"))

	vocabulary.Register(InventoryRecord,
		vocabulary.WithDescription("Inventory documented by this external record"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"inventory"))

	// Person
	vocabulary.Register(PersonLabel,
		vocabulary.WithDescription("Person display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(PersonIsInRecord,
		vocabulary.WithDescription("Back-reference to the owning inventory"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"isInRecord"))

	// Item
	vocabulary.Register(ItemIndex,
		vocabulary.WithDescription("Item index within the contents list"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"index"))

	vocabulary.Register(ItemIdentifier,
		vocabulary.WithDescription("External persistent identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"identifier"))

	vocabulary.Register(ItemLabel,
		vocabulary.WithDescription("Item title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(ItemTranscription,
		vocabulary.WithDescription("Transcription of the source entry"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"transcription"))

	vocabulary.Register(ItemRoom,
		vocabulary.WithDescription("Room the item was found in"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"room"))

	vocabulary.Register(ItemValuation,
		vocabulary.WithDescription("Valuation amount, opaque string"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"valuation"))

	vocabulary.Register(ItemWorkType,
		vocabulary.WithDescription("Work/object type"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"workType"))

	vocabulary.Register(ItemArtist,
		vocabulary.WithDescription("Attributed artist"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"artist"))

	vocabulary.Register(ItemIsInRecord,
		vocabulary.WithDescription("Back-reference to the owning inventory"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"isInRecord"))

	vocabulary.Register(TermLabel,
		vocabulary.WithDescription("Label for an external vocabulary term"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	// Archive / InventoryBook
	vocabulary.Register(ArchiveLabel,
		vocabulary.WithDescription("Holding institution name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(ArchiveLocation,
		vocabulary.WithDescription("Holding institution location"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"location"))

	vocabulary.Register(BookNumber,
		vocabulary.WithDescription("Normalized notarial register number"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"inventoryNumber"))

	vocabulary.Register(BookHeldBy,
		vocabulary.WithDescription("Archive holding the register"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(Namespace+"heldBy"))
}

// PredicateIRI returns the ontology IRI a dotted predicate maps to. It is a
// thin wrapper over the vocabulary registry used by the RDF exporter.
func PredicateIRI(predicate string) string {
	if meta := vocabulary.GetPredicateMetadata(predicate); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + predicate
}
