// Package convert maps source CSV rows onto the canonical entity graph.
//
// The three source datasets describe the same domain through different
// column layouts. A single Builder handles all of them, driven by a Schema
// that names the columns, the person-role bounds, and the reference-parser
// dialect for one dataset. Earlier revisions kept one converter per dataset;
// the schemas exist so the conversion logic cannot drift between dialects.
package convert

import "github.com/goldenagents/saagraph/vocabulary/saa"

// DateColumns names the year/month/day columns of a split date field.
type DateColumns struct {
	Year  string
	Month string
	Day   string
}

// RoleSpec describes where one person role's names live. Indexed roles
// occupy numbered columns (owner_name_1 … owner_name_5); non-indexed roles
// occupy a single column and Max is 1.
type RoleSpec struct {
	Role    saa.Role
	Column  string
	Indexed bool
	Max     int
}

// ItemSchema names the columns of the contents (item) file.
type ItemSchema struct {
	// InventoryID keys the item to its owning inventory.
	InventoryID string

	// Index is the item's position column. When Lot is empty, the item
	// identifier is minted from InventoryID and this value.
	Index string

	// Lot, when set, mints item identifiers from a lot reference instead
	// of the index.
	Lot string

	PersistentUID string
	Title         string
	TitleLang     string
	Transcription string
	Room          string
	Valuation     string

	// WorkType/Artist exist only in some sources; empty means the source
	// has no such column.
	WorkType     string
	WorkTypeLang string
	Artist       string
}

// Schema describes one source dataset's column layout and dialect.
type Schema struct {
	// Dataset names the output graph partition.
	Dataset string

	RecordID     string
	Country      string
	City         string
	Introduction string

	// Commentary is an English-language second comment column (Frick).
	Commentary string

	// MontiasID is the Montias database key column (Frick).
	MontiasID string

	DocumentType string

	Roles []RoleSpec

	// AppraiserLiteral, when set, names a column whose value is carried as
	// a plain literal attribute instead of minting Person entities; the
	// source records appraisers without positions.
	AppraiserLiteral string

	// BeginDate/EndDate are split date fields; nil when the source has
	// none.
	BeginDate *DateColumns
	EndDate   *DateColumns

	// DateColumn is a single free-form date column used directly as the
	// registration date (Frick).
	DateColumn string

	ArchiveName string

	// ArchiveLocation is empty when the source records no location; the
	// archive identifier is then minted from the name alone.
	ArchiveLocation string

	// DocRef is the free-text archive document reference column, and
	// RefLocation its companion location column consulted by dialect A.
	DocRef      string
	RefLocation string
	Ref         RefDialect

	Item ItemSchema
}

// Getty is the schema for the Getty Dutch archival descriptions export.
func Getty() *Schema {
	return &Schema{
		Dataset:      "Dutch_Archival_Inventories",
		RecordID:     "pi_record_no",
		Country:      "country_auth",
		City:         "city_auth",
		Introduction: "introduction",
		DocumentType: "document_type",
		Roles: []RoleSpec{
			{Role: saa.RoleOwner, Column: "owner_name_", Indexed: true, Max: 5},
			{Role: saa.RoleBeneficiary, Column: "benef_name_", Indexed: true, Max: 12},
			{Role: saa.RoleAppraiser, Column: "appraiser_", Indexed: true, Max: 14},
		},
		BeginDate:       &DateColumns{Year: "begin_date_year", Month: "begin_date_month", Day: "begin_date_day"},
		EndDate:         &DateColumns{Year: "end_date_year", Month: "end_date_month", Day: "end_date_day"},
		ArchiveName:     "archive_name",
		ArchiveLocation: "archive_loc",
		DocRef:          "archive_doc_no",
		RefLocation:     "archive_loc",
		Ref:             AmsterdamNotarial{},
		Item: ItemSchema{
			InventoryID:   "pi_inventory_no",
			Index:         "assigned_item_no",
			PersistentUID: "persistent_uid",
			Title:         "title",
			TitleLang:     "nl",
			Transcription: "entry",
			Room:          "room",
			Valuation:     "valuation_amount",
		},
	}
}

// GPI is the schema for the Getty Provenance Index export. It shares the
// Getty description layout; its contents file additionally records the
// object type and a first attributed artist.
func GPI() *Schema {
	s := Getty()
	s.Dataset = "Dutch_Archival_Inventories_Getty"
	s.Item.WorkType = "object_type_1"
	s.Item.WorkTypeLang = "nl"
	s.Item.Artist = "artist_name_1"
	return s
}

// Frick is the schema for the Frick/Montias export: a single owner column,
// appraisers as a literal, one free-form date, call-number references, and
// lot-based item identifiers.
func Frick() *Schema {
	return &Schema{
		Dataset:      "Dutch_Archival_Inventories_Frick",
		RecordID:     "inventory_number",
		Country:      "country",
		City:         "city",
		Introduction: "introduction",
		Commentary:   "commentary",
		MontiasID:    "montias_id",
		DocumentType: "type",
		Roles: []RoleSpec{
			{Role: saa.RoleOwner, Column: "owner_name", Max: 1},
		},
		AppraiserLiteral: "appraiser",
		DateColumn:       "date",
		ArchiveName:      "archive",
		DocRef:           "call_number",
		Ref:              CallNumber{},
		Item: ItemSchema{
			InventoryID:   "inventory_number",
			Index:         "assigned_item_no",
			Lot:           "inventory_lot",
			Title:         "title",
			TitleLang:     "nl",
			Transcription: "entry",
			Room:          "room",
			Valuation:     "value",
			WorkType:      "type",
			WorkTypeLang:  "en",
			Artist:        "artist_name",
		},
	}
}

// Schemas returns the built-in schemas by configuration name.
func Schemas() map[string]*Schema {
	return map[string]*Schema{
		"getty": Getty(),
		"gpi":   GPI(),
		"frick": Frick(),
	}
}
