// Package dataset provides parsing and writing of the semicolon-delimited
// venom protein dataset.
package dataset

import "strings"

// Dataset column names, in field order.
const (
	ColUniqueID           = "Unique_ID"
	ColStudyName          = "Study_Name"
	ColVenomFamilySubtype = "Venom_Family_Subtype"
	ColVenomFamilyType    = "Venom_Family_Type"
	ColHymenopteraGroup   = "Hymenoptera_Group"
	ColSpecies            = "Species"
	ColSpeciesID          = "Species_ID"
	ColUniprotID          = "Uniprot_ID"
	ColDB                 = "DB"
	ColMatureSeq          = "mature_seq"
	ColFullSeq            = "full_seq"
)

// NumFields is the required number of fields per data row.
const NumFields = 11

// Delimiter separates fields in the dataset.
const Delimiter = ";"

// Record is a single dataset entry with a fixed field layout.
type Record struct {
	UniqueID           string
	StudyName          string
	VenomFamilySubtype string
	VenomFamilyType    string
	HymenopteraGroup   string
	Species            string
	SpeciesID          string
	UniprotID          string
	DB                 string
	MatureSeq          string
	FullSeq            string
}

// RecordFromFields builds a Record from a field slice.
// The slice must have at least NumFields entries; extra fields are ignored.
func RecordFromFields(fields []string) Record {
	return Record{
		UniqueID:           fields[0],
		StudyName:          fields[1],
		VenomFamilySubtype: fields[2],
		VenomFamilyType:    fields[3],
		HymenopteraGroup:   fields[4],
		Species:            fields[5],
		SpeciesID:          fields[6],
		UniprotID:          fields[7],
		DB:                 fields[8],
		MatureSeq:          fields[9],
		FullSeq:            fields[10],
	}
}

// Fields returns the record's fields in dataset column order.
func (r Record) Fields() []string {
	return []string{
		r.UniqueID,
		r.StudyName,
		r.VenomFamilySubtype,
		r.VenomFamilyType,
		r.HymenopteraGroup,
		r.Species,
		r.SpeciesID,
		r.UniprotID,
		r.DB,
		r.MatureSeq,
		r.FullSeq,
	}
}

// Join renders the record as a semicolon-delimited dataset line.
func (r Record) Join() string {
	return strings.Join(r.Fields(), Delimiter)
}

// Row pairs a Record with its 1-based line number in the source file and
// the raw line text. The line number is the join key for annotation logs
// and duplicate reports; line 1 is the header, so data rows start at 2.
type Row struct {
	Line   int
	Raw    string
	Record Record
}
