package ioingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"gnsadm/pkg/gnsadm"
)

// Administrative regions extract column names.
const (
	colUFI      = "ufi"
	colUNI      = "uni"
	colName     = "full_name"
	colNameType = "nt"
	colLat      = "lat_dd"
	colLong     = "long_dd"
	colDesig    = "desig_cd"
	colCountry  = "cc_ft"
	colADM1     = "adm1"
	colRank     = "name_rank"
	colLang     = "lang_cd"
	colTransl   = "transl_cd"
	colScript   = "script_cd"
	colDisplay  = "display"
	colGeneric  = "generic"
)

var regionColumns = []string{
	colUFI, colUNI, colName, colNameType, colLat, colLong, colDesig,
	colCountry, colADM1, colRank, colLang, colTransl, colScript,
	colDisplay, colGeneric,
}

// RecordSink consumes raw records one at a time in file order.
// classify.Classifier satisfies it.
type RecordSink interface {
	// Add feeds one parsed record; the return value reports whether
	// the record survived filtering and is ignored here.
	Add(gnsadm.RawRecord) bool
	// CountMalformed records a row that could not be parsed at all.
	CountMalformed()
}

// ReadRegions streams the administrative regions extract into the
// sink, showing byte progress on stderr. The file can hold hundreds of
// thousands of rows, so it is never held in memory whole. Returns the
// number of data rows read.
func ReadRegions(path string, sink RecordSink) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, RegionsFileError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, RegionsFileError(path, err)
	}

	bar := pb.Full.Start64(info.Size())
	bar.Set("prefix", "regions ")
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	r := csv.NewReader(bufio.NewReader(bar.NewProxyReader(f)))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, RegionsFileError(path, err)
	}
	cols, err := resolveColumns(path, header, regionColumns, regionsHeaderError)
	if err != nil {
		return 0, err
	}

	rows := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A row the csv reader cannot make sense of is skipped,
			// not fatal; the extract is known to carry rough edges.
			if _, ok := err.(*csv.ParseError); ok {
				sink.CountMalformed()
				continue
			}
			return rows, RegionsFileError(path, err)
		}
		rows++

		rec, ok := parseRecord(row, cols)
		if !ok {
			sink.CountMalformed()
			continue
		}
		sink.Add(rec)
	}

	return rows, nil
}

// parseRecord converts one raw row into a typed record. Only the
// feature ID is load-bearing enough to reject the row; every other
// field degrades to its zero value or worst priority downstream.
func parseRecord(row []string, cols map[string]int) (gnsadm.RawRecord, bool) {
	ufi, err := strconv.ParseInt(
		strings.TrimSpace(field(row, cols[colUFI])), 10, 64)
	if err != nil {
		return gnsadm.RawRecord{}, false
	}
	// The name ID is descriptive; a missing one parses to zero.
	uni, _ := strconv.ParseInt(
		strings.TrimSpace(field(row, cols[colUNI])), 10, 64)

	rec := gnsadm.RawRecord{
		FeatureID:           ufi,
		NameID:              uni,
		DesignationCode:     strings.TrimSpace(field(row, cols[colDesig])),
		Name:                field(row, cols[colName]),
		NameType:            strings.TrimSpace(field(row, cols[colNameType])),
		NameRank:            strings.TrimSpace(field(row, cols[colRank])),
		LanguageCode:        strings.TrimSpace(field(row, cols[colLang])),
		Latitude:            field(row, cols[colLat]),
		Longitude:           field(row, cols[colLong]),
		CountryCode:         strings.TrimSpace(field(row, cols[colCountry])),
		ADM1Code:            strings.TrimSpace(field(row, cols[colADM1])),
		DisplayFlag:         field(row, cols[colDisplay]),
		TransliterationCode: strings.TrimSpace(field(row, cols[colTransl])),
		ScriptCode:          strings.TrimSpace(field(row, cols[colScript])),
		GenericTerm:         field(row, cols[colGeneric]),
	}
	return rec, true
}
