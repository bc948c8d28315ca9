package ioreport

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"gnsadm/pkg/gnsadm"
)

// ReadDivisions loads the canonical division set back from the primary
// sheet of a previously written workbook, preserving row order.
func ReadDivisions(path string) ([]gnsadm.Division, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetAll)
	if err != nil {
		return nil, SheetError(path, SheetAll, err)
	}
	if len(rows) == 0 {
		return nil, SheetError(path, SheetAll, errMissingHeader)
	}

	// Column positions come from the header row, not from assumptions
	// about how the workbook was produced.
	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[name] = i
	}
	for _, name := range Columns {
		if _, ok := idx[name]; !ok {
			return nil, SheetError(path, SheetAll, errMissingHeader)
		}
	}

	res := make([]gnsadm.Division, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(name string) string {
			i := idx[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		lat, _ := strconv.ParseFloat(get("Latitude"), 64)
		long, _ := strconv.ParseFloat(get("Longitude"), 64)
		ufi, _ := strconv.ParseInt(get("Unique_Feature_ID"), 10, 64)
		uni, _ := strconv.ParseInt(get("Unique_Name_ID"), 10, 64)

		res = append(res, gnsadm.Division{
			CountryCode:         get("Country_Code"),
			CountryName:         get("Country_Name"),
			CountryFullName:     get("Country_Full_Name"),
			Level:               get("Administrative_Level"),
			Name:                get("Administrative_Name"),
			ADM1Code:            get("ADM1_Code"),
			Latitude:            lat,
			Longitude:           long,
			FeatureID:           ufi,
			NameID:              uni,
			NameType:            get("Name_Type"),
			NameRank:            get("Name_Rank"),
			LanguageCode:        get("Language_Code"),
			TransliterationCode: get("Transliteration_Code"),
			ScriptCode:          get("Script_Code"),
			GenericTerm:         get("Generic_Term"),
		})
	}
	return res, nil
}
