// Package gnsadm defines the domain model for the GNS administrative
// divisions processor: raw name-variant records as they appear in the
// GEOnet extract, the country reference, and the canonical division
// produced by deduplication.
package gnsadm

import "context"

// Version and Build are set by ldflags during compilation.
var (
	Version = "dev"
	Build   = "unknown"
)

// Levels lists the designation codes treated as administrative
// divisions, in report order.
var Levels = []string{"ADM1", "ADM2", "ADM3", "ADM4", "ADMD"}

// RawRecord is one row of the administrative-regions extract: a single
// name variant attached to a geographic feature. Several RawRecords
// share a FeatureID when a feature has names in multiple languages or
// from multiple authorities.
type RawRecord struct {
	// FeatureID identifies the real-world geographic feature (UFI).
	FeatureID int64
	// NameID identifies this particular name variant (UNI).
	NameID int64
	// DesignationCode classifies the administrative level (ADM1..ADMD).
	DesignationCode string
	// Name is the full place name of this variant.
	Name string
	// NameType is the raw authority marker: N (approved),
	// C (conventional), D (non-authoritative), V (variant).
	NameType string
	// NameRank is the raw preference rank; lower is more preferred,
	// empty or unparseable counts as worst.
	NameRank string
	// LanguageCode is a three-letter language code such as "eng".
	LanguageCode string
	// Latitude and Longitude are the raw decimal-degree strings.
	Latitude  string
	Longitude string
	// CountryCode joins against the country reference (cc_ft).
	CountryCode string
	// ADM1Code is the first-order division the record nests under.
	ADM1Code string
	// DisplayFlag marks records intended for public display.
	DisplayFlag string
	// Descriptive fields carried through to the output unchanged.
	TransliterationCode string
	ScriptCode          string
	GenericTerm         string
}

// Country is one row of the country reference table.
type Country struct {
	Code      string
	ShortName string
	FullName  string
}

// Division is the canonical record for one geographic feature: the
// winning name variant joined with country metadata. One Division
// exists per FeatureID that survived filtering; it is never mutated
// after creation.
type Division struct {
	CountryCode         string
	CountryName         string
	CountryFullName     string
	Level               string
	Name                string
	ADM1Code            string
	Latitude            float64
	Longitude           float64
	FeatureID           int64
	NameID              int64
	NameType            string
	NameRank            string
	LanguageCode        string
	TransliterationCode string
	ScriptCode          string
	GenericTerm         string
}

// Processor runs the full pipeline: ingest inputs, classify and
// deduplicate, write the report workbook.
type Processor interface {
	Process(ctx context.Context) error
}

// Splitter exports the primary workbook into per-country workbooks.
type Splitter interface {
	Split(ctx context.Context) error
}

// IsAdminLevel reports whether a designation code marks a record as an
// administrative division. Codes are matched by prefix: the extract
// contains historical variants such as "ADM1H".
func IsAdminLevel(code string) bool {
	for _, lv := range Levels {
		if len(code) >= len(lv) && code[:len(lv)] == lv {
			return true
		}
	}
	return false
}
