package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenagents/saagraph/graph"
	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/saa"
	"github.com/goldenagents/saagraph/vocabulary/tgn"
)

func newTestBuilder(t *testing.T, schema *Schema) *Builder {
	t.Helper()
	return NewBuilder(schema, tgn.Default(), graph.New(schema.Dataset), nil)
}

// triples returns the statements asserted about one entity.
func triples(g *graph.Graph, typ saa.EntityType, id string) map[string][]any {
	out := make(map[string][]any)
	for _, e := range g.Entities() {
		if e.Type == typ && e.ID == id {
			for _, tr := range e.Triples {
				out[tr.Predicate] = append(out[tr.Predicate], tr.Object)
			}
		}
	}
	return out
}

func gettyDescription() source.Row {
	return source.Row{
		"pi_record_no":     "N-100",
		"country_auth":     "Netherlands",
		"city_auth":        "Amsterdam",
		"introduction":     "Specificatie van de ongedeclareerde schilderijen.",
		"document_type":    "Inventory",
		"owner_name_1":     "Trip, Louis",
		"benef_name_1":     "Trip, Jacob",
		"benef_name_2":     "Trip, Margaretha",
		"appraiser_1":      "Uylenburgh, Gerrit",
		"begin_date_year":  "1684",
		"begin_date_month": "10",
		"begin_date_day":   "4",
		"end_date_year":    "",
		"end_date_month":   "",
		"end_date_day":     "",
		"archive_name":     "Gemeentearchief",
		"archive_loc":      "Amsterdam, Nederland",
		"archive_doc_no":   "NAA 2413 (film 2552)",
	}
}

func TestBuilderGettyDescription(t *testing.T) {
	b := newTestBuilder(t, Getty())
	b.AddDescription(gettyDescription())
	g := b.Graph()

	inv := triples(g, saa.EntityTypeInventory, "N-100")
	require.NotEmpty(t, inv)

	assert.Equal(t, []any{"N-100"}, inv[saa.InventoryIdentifier])
	assert.Equal(t, []any{graph.Text{Value: "Inventory", Lang: "en-US"}}, inv[saa.InventoryDocumentType])
	assert.Equal(t, []any{graph.IRI(saa.TGNNamespace + "7016845")}, inv[saa.InventoryCountry])
	assert.Equal(t, []any{graph.IRI(saa.TGNNamespace + "7006952")}, inv[saa.InventoryCity])

	// Only begin date present: registration date equals it.
	assert.Equal(t, []any{graph.Date{Year: 1684, Month: 10, Day: 4}}, inv[saa.InventoryBeginDate])
	assert.Empty(t, inv[saa.InventoryEndDate])
	assert.Equal(t, []any{graph.Date{Year: 1684, Month: 10, Day: 4}}, inv[saa.InventoryRegistrationDate])

	// Persons with positional identifiers and back-references.
	owner := triples(g, saa.EntityTypePerson, "N-100owner01")
	assert.Equal(t, []any{"Trip, Louis"}, owner[saa.PersonLabel])
	assert.Equal(t, []any{graph.Ref{Type: saa.EntityTypeInventory, ID: "N-100"}}, owner[saa.PersonIsInRecord])

	assert.Len(t, inv[saa.InventoryBeneficiary], 2)
	assert.Equal(t, []any{graph.Ref{Type: saa.EntityTypePerson, ID: "N-100appraiser01"}}, inv[saa.InventoryAppraiser])

	// Archive and recovered inventory book.
	archiveID := graph.ArchiveID("Gemeentearchief", "Amsterdam, Nederland")
	archive := triples(g, saa.EntityTypeArchive, archiveID)
	assert.Equal(t, []any{"Gemeentearchief"}, archive[saa.ArchiveLabel])
	assert.Equal(t, []any{"Amsterdam, Nederland"}, archive[saa.ArchiveLocation])

	book := triples(g, saa.EntityTypeInventoryBook, "saaInventory2413")
	assert.Equal(t, []any{"2413"}, book[saa.BookNumber])
	assert.Equal(t, []any{graph.Ref{Type: saa.EntityTypeArchive, ID: archiveID}}, book[saa.BookHeldBy])
	assert.Equal(t, []any{graph.Ref{Type: saa.EntityTypeInventoryBook, ID: "saaInventory2413"}}, inv[saa.InventoryDocumentedIn])
}

func TestBuilderSkipsEmptyOptionalFields(t *testing.T) {
	b := newTestBuilder(t, Getty())
	b.AddDescription(source.Row{"pi_record_no": "N-200"})
	g := b.Graph()

	inv := triples(g, saa.EntityTypeInventory, "N-200")
	assert.Equal(t, []any{"N-200"}, inv[saa.InventoryIdentifier])
	assert.Empty(t, inv[saa.InventoryDocumentType])
	assert.Empty(t, inv[saa.InventoryCountry])
	assert.Empty(t, inv[saa.InventoryRegistrationDate])
	assert.Empty(t, inv[saa.InventoryArchive])

	// Only the inventory node exists.
	require.Len(t, g.Entities(), 1)
}

func TestBuilderSkipsRowWithoutRecordID(t *testing.T) {
	b := newTestBuilder(t, Getty())
	b.AddDescription(source.Row{"owner_name_1": "Trip, Louis"})
	assert.Empty(t, b.Graph().Entities())
}

func TestBuilderUnparseableDatesAreIndependent(t *testing.T) {
	row := gettyDescription()
	row["begin_date_month"] = "not-a-month"
	row["end_date_year"] = "1685"
	row["end_date_month"] = "1"
	row["end_date_day"] = "1"

	b := newTestBuilder(t, Getty())
	b.AddDescription(row)

	inv := triples(b.Graph(), saa.EntityTypeInventory, "N-100")
	assert.Empty(t, inv[saa.InventoryBeginDate])
	assert.Equal(t, []any{graph.Date{Year: 1685, Month: 1, Day: 1}}, inv[saa.InventoryEndDate])
	// Only the end date parsed, so it becomes the registration date.
	assert.Equal(t, []any{graph.Date{Year: 1685, Month: 1, Day: 1}}, inv[saa.InventoryRegistrationDate])
}

func TestBuilderNonAmsterdamReferenceYieldsNoBook(t *testing.T) {
	row := gettyDescription()
	row["archive_loc"] = "Antwerpen, België"

	b := newTestBuilder(t, Getty())
	b.AddDescription(row)
	g := b.Graph()

	inv := triples(g, saa.EntityTypeInventory, "N-100")
	assert.Equal(t, []any{"NAA 2413 (film 2552)"}, inv[saa.InventoryDocumentReference])
	assert.Empty(t, inv[saa.InventoryDocumentedIn])

	for _, e := range g.Entities() {
		assert.NotEqual(t, saa.EntityTypeInventoryBook, e.Type)
	}
}

func TestBuilderArchiveDeduplicationAcrossRows(t *testing.T) {
	b := newTestBuilder(t, Getty())

	r1 := gettyDescription()
	r2 := gettyDescription()
	r2["pi_record_no"] = "N-101"
	b.AddDescription(r1)
	b.AddDescription(r2)

	var archives int
	for _, e := range b.Graph().Entities() {
		if e.Type == saa.EntityTypeArchive {
			archives++
		}
	}
	assert.Equal(t, 1, archives)
}

func TestBuilderGettyItem(t *testing.T) {
	b := newTestBuilder(t, Getty())
	b.AddItem(source.Row{
		"pi_inventory_no":  "N-100",
		"assigned_item_no": "1",
		"persistent_uid":   "DUTCHINV-12704",
		"title":            "Een boere geselschap",
		"entry":            "een schilderij voor de schoorsteen",
		"room":             "Opte eedt zael",
		"valuation_amount": "f 36:--:--",
	})
	g := b.Graph()

	item := triples(g, saa.EntityTypeItem, "N-100_0001")
	require.NotEmpty(t, item)
	assert.Equal(t, []any{"1"}, item[saa.ItemIndex])
	assert.Equal(t, []any{"DUTCHINV-12704"}, item[saa.ItemIdentifier])
	assert.Equal(t, []any{graph.Text{Value: "Een boere geselschap", Lang: "nl"}}, item[saa.ItemLabel])
	assert.Equal(t, []any{"f 36:--:--"}, item[saa.ItemValuation])

	inv := triples(g, saa.EntityTypeInventory, "N-100")
	assert.Equal(t, []any{graph.Ref{Type: saa.EntityTypeItem, ID: "N-100_0001"}}, inv[saa.InventoryContent])
}

func TestBuilderFrickDescription(t *testing.T) {
	b := newTestBuilder(t, Frick())
	b.AddDescription(source.Row{
		"inventory_number": "342",
		"montias_id":       "M-342",
		"country":          "Netherlands",
		"city":             "Amsterdam",
		"introduction":     "Inventaris van de goederen.",
		"commentary":       "Taken after the death of the owner.",
		"type":             "Inventory",
		"owner_name":       "Rembrandt van Rijn",
		"appraiser":        "Haringh, Thomas",
		"date":             "1656/07/25",
		"archive":          "Gemeentearchief",
		"call_number":      "NA 1234 A",
	})
	g := b.Graph()

	inv := triples(g, saa.EntityTypeInventory, "342")
	assert.Equal(t, []any{"M-342"}, inv[saa.InventoryMontiasID])
	assert.Contains(t, inv[saa.InventoryComment], graph.Text{Value: "Inventaris van de goederen.", Lang: "nl"})
	assert.Contains(t, inv[saa.InventoryComment], graph.Text{Value: "Taken after the death of the owner.", Lang: "en"})

	// Single owner, position 01; appraiser stays a literal.
	owner := triples(g, saa.EntityTypePerson, "342owner01")
	assert.Equal(t, []any{"Rembrandt van Rijn"}, owner[saa.PersonLabel])
	assert.Equal(t, []any{"Haringh, Thomas"}, inv[saa.InventoryAppraiserName])
	assert.Empty(t, inv[saa.InventoryAppraiser])

	// Free-form date carried through as the registration date.
	assert.Equal(t, []any{graph.DateText("1656-07-25")}, inv[saa.InventoryRegistrationDate])
	assert.Empty(t, inv[saa.InventoryBeginDate])

	// Call-number dialect recovers the book.
	book := triples(g, saa.EntityTypeInventoryBook, "saaInventory1234A")
	assert.Equal(t, []any{"1234A"}, book[saa.BookNumber])

	// Archive identity from the name only.
	archive := triples(g, saa.EntityTypeArchive, "Gemeentearchief")
	assert.Equal(t, []any{"Gemeentearchief"}, archive[saa.ArchiveLabel])
	assert.Empty(t, archive[saa.ArchiveLocation])
}

func TestBuilderFrickItemFromLot(t *testing.T) {
	b := newTestBuilder(t, Frick())
	b.AddItem(source.Row{
		"inventory_number": "342",
		"inventory_lot":    "[0001]`a`",
		"assigned_item_no": "1",
		"type":             "painting",
		"title":            "Een landschap",
		"artist_name":      "Rembrandt",
		"entry":            "een landschapje van Rembrandt",
		"room":             "",
		"value":            "",
	})
	g := b.Graph()

	item := triples(g, saa.EntityTypeItem, "0001a")
	require.NotEmpty(t, item)
	assert.Equal(t, []any{graph.Text{Value: "painting", Lang: "en"}}, item[saa.ItemWorkType])
	assert.Equal(t, []any{"Rembrandt"}, item[saa.ItemArtist])
	assert.Empty(t, item[saa.ItemRoom])
	assert.Empty(t, item[saa.ItemValuation])
}

func TestBuilderGPIItemHasWorkTypeAndArtist(t *testing.T) {
	b := newTestBuilder(t, GPI())
	b.AddItem(source.Row{
		"pi_inventory_no":  "N-2405",
		"assigned_item_no": "7",
		"persistent_uid":   "",
		"title":            "Stilleven",
		"entry":            "een stilleven",
		"object_type_1":    "schilderij",
		"artist_name_1":    "Claesz, Pieter",
	})

	item := triples(b.Graph(), saa.EntityTypeItem, "N-2405_0007")
	assert.Equal(t, []any{graph.Text{Value: "schilderij", Lang: "nl"}}, item[saa.ItemWorkType])
	assert.Equal(t, []any{"Claesz, Pieter"}, item[saa.ItemArtist])
}

func TestBuilderDeterminism(t *testing.T) {
	build := func() *graph.Graph {
		b := newTestBuilder(t, Getty())
		b.AddGazetteerLabels()
		b.AddDescription(gettyDescription())
		b.AddItem(source.Row{
			"pi_inventory_no":  "N-100",
			"assigned_item_no": "1",
			"title":            "Een boere geselschap",
			"entry":            "een schilderij",
		})
		return b.Graph()
	}

	g1, g2 := build(), build()
	require.Equal(t, g1.Len(), g2.Len())
	require.Len(t, g2.Entities(), len(g1.Entities()))
	for i, e := range g1.Entities() {
		assert.Equal(t, e.ID, g2.Entities()[i].ID)
		assert.Equal(t, e.Triples, g2.Entities()[i].Triples)
	}
}

func TestAddGazetteerLabels(t *testing.T) {
	b := newTestBuilder(t, Getty())
	b.AddGazetteerLabels()

	term := triples(b.Graph(), saa.EntityTypeTerm, saa.TGNNamespace+"7006952")
	assert.Equal(t, []any{graph.Text{Value: "Amsterdam", Lang: "en-US"}}, term[saa.TermLabel])

	// 3 countries + 11 cities.
	assert.Len(t, b.Graph().Entities(), 14)
}
