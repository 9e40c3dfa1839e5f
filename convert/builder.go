package convert

import (
	"fmt"
	"log/slog"

	"github.com/goldenagents/saagraph/graph"
	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/saa"
	"github.com/goldenagents/saagraph/vocabulary/tgn"
)

// Builder maps source rows onto the entity graph for one dataset. Apart
// from the append-only target graph it holds no state: every description
// and item row is converted independently, so row order never changes the
// result. Empty source values skip the corresponding attribute or entity;
// nothing in a row is a fatal condition.
type Builder struct {
	schema *Schema
	gaz    *tgn.Gazetteer
	g      *graph.Graph
	logger *slog.Logger
}

// NewBuilder creates a builder writing into g.
func NewBuilder(schema *Schema, gaz *tgn.Gazetteer, g *graph.Graph, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{schema: schema, gaz: gaz, g: g, logger: logger}
}

// Graph returns the target graph.
func (b *Builder) Graph() *graph.Graph {
	return b.g
}

// AddGazetteerLabels asserts the English label of every gazetteer term in
// this partition, once.
func (b *Builder) AddGazetteerLabels() {
	for _, term := range b.gaz.Terms() {
		b.g.Add(saa.EntityTypeTerm, term.IRI(), saa.TermLabel,
			graph.Text{Value: term.Label, Lang: "en-US"})
	}
}

// AddDescription converts one description row into an Inventory entity with
// its persons, archive, and recovered inventory book.
func (b *Builder) AddDescription(row source.Row) {
	s := b.schema

	id := row.Get(s.RecordID)
	if id == "" {
		b.logger.Warn("Skipping description row without record identifier",
			"dataset", s.Dataset)
		return
	}

	b.g.Add(saa.EntityTypeInventory, id, saa.InventoryIdentifier, id)

	if s.MontiasID != "" {
		if v := row.Get(s.MontiasID); v != "" {
			b.g.Add(saa.EntityTypeInventory, id, saa.InventoryMontiasID, v)
		}
	}
	if v := row.Get(s.Introduction); v != "" {
		b.g.Add(saa.EntityTypeInventory, id, saa.InventoryComment,
			graph.Text{Value: v, Lang: "nl"})
	}
	if s.Commentary != "" {
		if v := row.Get(s.Commentary); v != "" {
			b.g.Add(saa.EntityTypeInventory, id, saa.InventoryComment,
				graph.Text{Value: v, Lang: "en"})
		}
	}

	if term, ok := b.gaz.Country(row.Get(s.Country)); ok {
		b.g.Add(saa.EntityTypeInventory, id, saa.InventoryCountry, graph.IRI(term.IRI()))
	}
	if term, ok := b.gaz.City(row.Get(s.City)); ok {
		b.g.Add(saa.EntityTypeInventory, id, saa.InventoryCity, graph.IRI(term.IRI()))
	}

	if v := row.Get(s.DocumentType); v != "" {
		b.g.Add(saa.EntityTypeInventory, id, saa.InventoryDocumentType,
			graph.Text{Value: v, Lang: "en-US"})
	}

	for _, role := range s.Roles {
		b.addPersons(row, id, role)
	}
	if s.AppraiserLiteral != "" {
		if v := row.Get(s.AppraiserLiteral); v != "" {
			b.g.Add(saa.EntityTypeInventory, id, saa.InventoryAppraiserName, v)
		}
	}

	b.addDates(row, id)
	archiveID := b.addArchive(row, id)
	b.addReference(row, id, archiveID)
}

// addPersons mints one Person per non-empty name column of a role.
func (b *Builder) addPersons(row source.Row, recordID string, spec RoleSpec) {
	for n := 1; n <= spec.Max; n++ {
		column := spec.Column
		if spec.Indexed {
			column = fmt.Sprintf("%s%d", spec.Column, n)
		}

		name := row.Get(column)
		if name == "" {
			continue
		}

		pid := graph.PersonID(recordID, spec.Role, n)
		b.g.Add(saa.EntityTypePerson, pid, saa.PersonLabel, name)
		b.g.Add(saa.EntityTypePerson, pid, saa.PersonIsInRecord,
			graph.Ref{Type: saa.EntityTypeInventory, ID: recordID})
		b.g.Add(saa.EntityTypeInventory, recordID, spec.Role.Predicate(),
			graph.Ref{Type: saa.EntityTypePerson, ID: pid})
	}
}

// addDates parses the split begin/end dates, derives the registration date,
// or carries the single free-form date column through as the registration
// date. Each date that fails to parse is absent on its own; the other date
// is unaffected.
func (b *Builder) addDates(row source.Row, recordID string) {
	s := b.schema

	if s.DateColumn != "" {
		if v := normalizeDateText(row.Get(s.DateColumn)); v != "" {
			b.g.Add(saa.EntityTypeInventory, recordID,
				saa.InventoryRegistrationDate, graph.DateText(v))
		}
		return
	}

	var begin, end graph.Date
	var hasBegin, hasEnd bool

	if s.BeginDate != nil {
		begin, hasBegin = parseDate(
			row.Get(s.BeginDate.Year), row.Get(s.BeginDate.Month), row.Get(s.BeginDate.Day))
		if hasBegin {
			b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryBeginDate, begin)
		}
	}
	if s.EndDate != nil {
		end, hasEnd = parseDate(
			row.Get(s.EndDate.Year), row.Get(s.EndDate.Month), row.Get(s.EndDate.Day))
		if hasEnd {
			b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryEndDate, end)
		}
	}

	if reg, ok := registrationDate(begin, end, hasBegin, hasEnd); ok {
		b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryRegistrationDate, reg)
	}
}

// addArchive mints the holding archive from its name (and location when the
// source has one) and links the inventory to it. Returns the archive
// identifier, or "" when the row names no archive.
func (b *Builder) addArchive(row source.Row, recordID string) string {
	s := b.schema

	name := row.Get(s.ArchiveName)
	if name == "" {
		return ""
	}

	var location string
	if s.ArchiveLocation != "" {
		location = row.Get(s.ArchiveLocation)
	}

	archiveID := graph.ArchiveID(name, location)
	b.g.Add(saa.EntityTypeArchive, archiveID, saa.ArchiveLabel, name)
	if location != "" {
		b.g.Add(saa.EntityTypeArchive, archiveID, saa.ArchiveLocation, location)
	}
	b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryArchive,
		graph.Ref{Type: saa.EntityTypeArchive, ID: archiveID})

	return archiveID
}

// addReference records the raw document reference and, when the dialect
// recognizes it, the InventoryBook it denotes.
func (b *Builder) addReference(row source.Row, recordID, archiveID string) {
	s := b.schema

	docRef := row.Get(s.DocRef)
	if docRef == "" {
		return
	}
	b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryDocumentReference, docRef)

	number, ok := s.Ref.Extract(docRef, row.Get(s.RefLocation))
	if !ok {
		return
	}

	bookID := graph.BookID(number)
	b.g.Add(saa.EntityTypeInventoryBook, bookID, saa.BookNumber, number)
	if archiveID != "" {
		b.g.Add(saa.EntityTypeInventoryBook, bookID, saa.BookHeldBy,
			graph.Ref{Type: saa.EntityTypeArchive, ID: archiveID})
	}
	b.g.Add(saa.EntityTypeInventory, recordID, saa.InventoryDocumentedIn,
		graph.Ref{Type: saa.EntityTypeInventoryBook, ID: bookID})
}

// AddItem converts one contents row into an Item entity on its inventory.
func (b *Builder) AddItem(row source.Row) {
	s := b.schema.Item

	invID := row.Get(s.InventoryID)
	if invID == "" {
		b.logger.Warn("Skipping item row without inventory identifier",
			"dataset", b.schema.Dataset)
		return
	}

	index := row.Get(s.Index)

	var itemID string
	if s.Lot != "" {
		lot := row.Get(s.Lot)
		if lot == "" {
			b.logger.Warn("Skipping item row without lot reference",
				"dataset", b.schema.Dataset, "inventory", invID)
			return
		}
		itemID = graph.ItemIDFromLot(lot)
	} else {
		if index == "" {
			b.logger.Warn("Skipping item row without item index",
				"dataset", b.schema.Dataset, "inventory", invID)
			return
		}
		itemID = graph.ItemID(invID, index)
	}

	b.g.Add(saa.EntityTypeInventory, invID, saa.InventoryContent,
		graph.Ref{Type: saa.EntityTypeItem, ID: itemID})
	b.g.Add(saa.EntityTypeItem, itemID, saa.ItemIsInRecord,
		graph.Ref{Type: saa.EntityTypeInventory, ID: invID})

	if index != "" {
		b.g.Add(saa.EntityTypeItem, itemID, saa.ItemIndex, index)
	}
	if s.PersistentUID != "" {
		if v := row.Get(s.PersistentUID); v != "" {
			b.g.Add(saa.EntityTypeItem, itemID, saa.ItemIdentifier, v)
		}
	}
	if v := row.Get(s.Title); v != "" {
		b.g.Add(saa.EntityTypeItem, itemID, saa.ItemLabel,
			graph.Text{Value: v, Lang: s.TitleLang})
	}
	if v := row.Get(s.Transcription); v != "" {
		b.g.Add(saa.EntityTypeItem, itemID, saa.ItemTranscription,
			graph.Text{Value: v, Lang: "nl"})
	}
	if v := row.Get(s.Room); v != "" {
		b.g.Add(saa.EntityTypeItem, itemID, saa.ItemRoom,
			graph.Text{Value: v, Lang: "nl"})
	}
	if v := row.Get(s.Valuation); v != "" {
		b.g.Add(saa.EntityTypeItem, itemID, saa.ItemValuation, v)
	}
	if s.WorkType != "" {
		if v := row.Get(s.WorkType); v != "" {
			b.g.Add(saa.EntityTypeItem, itemID, saa.ItemWorkType,
				graph.Text{Value: v, Lang: s.WorkTypeLang})
		}
	}
	if s.Artist != "" {
		if v := row.Get(s.Artist); v != "" {
			b.g.Add(saa.EntityTypeItem, itemID, saa.ItemArtist, v)
		}
	}
}
