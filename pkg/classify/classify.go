// Package classify implements the record classifier and deduplicator.
// It collapses many name-variant rows sharing a feature ID into one
// canonical division per feature, using a three-key priority policy:
// name authority type, then name rank, then language.
//
// The package is pure: it performs no I/O and holds no global state.
// Records are fed one at a time in input order, so the caller controls
// ordering and with it the tie-break behavior. Given the same input in
// the same order the output is byte-identical between runs; a true tie
// (identical score tuples) is won by the record seen first, which means
// output is not stable across differently-ordered inputs.
package classify

import (
	"strconv"
	"strings"

	"gnsadm/pkg/gnsadm"
)

// Score assigned when a value cannot participate in ranking: unknown
// name types and missing or unparseable ranks always lose.
const worstScore = 999

// Name-type priority per the GEOnet authority markers.
var typeScores = map[string]int{
	"N": 1, // approved
	"C": 2, // conventional
	"D": 3, // non-authoritative
	"V": 4, // variant
}

// DisplayPolicy selects which historical display-filter variant is in
// effect. The extract's display column holds comma-separated display
// context codes, so NonEmpty is the default; Affirmative reproduces the
// stricter variant that required a literal Y marker.
type DisplayPolicy string

const (
	DisplayNonEmpty    DisplayPolicy = "nonempty"
	DisplayAffirmative DisplayPolicy = "affirmative"
)

// Policy configures the configurable parts of classification.
type Policy struct {
	// Display selects the display-filter variant.
	Display DisplayPolicy
	// PriorityLanguages score between English and the rest. An empty
	// set collapses the language score to two tiers (English, other).
	PriorityLanguages []string
}

// Stats counts records through each pipeline stage. Stages are total:
// a record dropped by one filter is still counted as seen.
type Stats struct {
	Seen          int
	Malformed     int
	AdminLevel    int
	Displayable   int
	WithCoords    int
	UniqueFeature int
}

// Classifier accumulates raw records and retains only the best variant
// per feature. It is not safe for concurrent use; the pipeline feeds it
// from a single goroutine.
type Classifier struct {
	policy    Policy
	langRank  map[string]int
	otherLang int
	countries map[string]gnsadm.Country

	best  map[int64]candidate
	order []int64
	stats Stats
}

type candidate struct {
	rec       gnsadm.RawRecord
	lat, long float64
	score     [3]int
}

// New creates a Classifier joining against the given country reference.
// An empty reference is valid; enrichment then degrades to empty
// country fields.
func New(countries map[string]gnsadm.Country, policy Policy) *Classifier {
	if policy.Display == "" {
		policy.Display = DisplayNonEmpty
	}
	langRank := make(map[string]int, len(policy.PriorityLanguages)+1)
	langRank["eng"] = 1
	for _, lang := range policy.PriorityLanguages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" && lang != "eng" {
			langRank[lang] = 2
		}
	}
	otherLang := 3
	if len(langRank) == 1 {
		// Two-tier historical policy: English, then everything else.
		otherLang = 2
	}
	return &Classifier{
		policy:    policy,
		langRank:  langRank,
		otherLang: otherLang,
		countries: countries,
		best:      make(map[int64]candidate),
	}
}

// Add feeds one raw record through the level, display and coordinate
// filters and, if it survives, lets it compete for its feature's
// canonical slot. It reports whether the record survived filtering.
func (c *Classifier) Add(rec gnsadm.RawRecord) bool {
	c.stats.Seen++

	if !gnsadm.IsAdminLevel(rec.DesignationCode) {
		return false
	}
	c.stats.AdminLevel++

	if !c.displayable(rec.DisplayFlag) {
		return false
	}
	c.stats.Displayable++

	lat, err := strconv.ParseFloat(strings.TrimSpace(rec.Latitude), 64)
	if err != nil {
		return false
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(rec.Longitude), 64)
	if err != nil {
		return false
	}
	c.stats.WithCoords++

	cand := candidate{
		rec:   rec,
		lat:   lat,
		long:  long,
		score: c.score(rec),
	}

	prev, ok := c.best[rec.FeatureID]
	if !ok {
		c.best[rec.FeatureID] = cand
		c.order = append(c.order, rec.FeatureID)
		return true
	}
	// Strictly-smaller comparison keeps the earlier record on ties,
	// matching a stable sort followed by first-per-group selection.
	if lessScore(cand.score, prev.score) {
		c.best[rec.FeatureID] = cand
	}
	return true
}

func (c *Classifier) displayable(flag string) bool {
	flag = strings.TrimSpace(flag)
	switch c.policy.Display {
	case DisplayAffirmative:
		return strings.EqualFold(flag, "Y")
	default:
		return flag != ""
	}
}

// score computes the (type, rank, language) priority tuple,
// lower-is-better on every key.
func (c *Classifier) score(rec gnsadm.RawRecord) [3]int {
	typeScore, ok := typeScores[strings.ToUpper(strings.TrimSpace(rec.NameType))]
	if !ok {
		typeScore = worstScore
	}

	rankScore := worstScore
	if n, err := strconv.Atoi(strings.TrimSpace(rec.NameRank)); err == nil && n >= 0 {
		rankScore = n
	}

	langScore, ok := c.langRank[strings.ToLower(strings.TrimSpace(rec.LanguageCode))]
	if !ok {
		langScore = c.otherLang
	}

	return [3]int{typeScore, rankScore, langScore}
}

func lessScore(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Divisions returns one enriched canonical division per feature, in
// the order features were first encountered.
func (c *Classifier) Divisions() []gnsadm.Division {
	res := make([]gnsadm.Division, 0, len(c.order))
	for _, ufi := range c.order {
		cand := c.best[ufi]
		div := gnsadm.Division{
			CountryCode:         cand.rec.CountryCode,
			Level:               cand.rec.DesignationCode,
			Name:                cand.rec.Name,
			ADM1Code:            cand.rec.ADM1Code,
			Latitude:            cand.lat,
			Longitude:           cand.long,
			FeatureID:           cand.rec.FeatureID,
			NameID:              cand.rec.NameID,
			NameType:            cand.rec.NameType,
			NameRank:            cand.rec.NameRank,
			LanguageCode:        cand.rec.LanguageCode,
			TransliterationCode: cand.rec.TransliterationCode,
			ScriptCode:          cand.rec.ScriptCode,
			GenericTerm:         cand.rec.GenericTerm,
		}
		Enrich(&div, c.countries)
		res = append(res, div)
	}
	c.stats.UniqueFeature = len(res)
	return res
}

// Stats returns counters for each pipeline stage.
func (c *Classifier) Stats() Stats {
	s := c.stats
	s.UniqueFeature = len(c.order)
	return s
}

// CountMalformed records a row that could not be parsed into a
// RawRecord at all. Such rows never reach Add.
func (c *Classifier) CountMalformed() {
	c.stats.Seen++
	c.stats.Malformed++
}

// Enrich joins a division's country code against the reference table.
// A missing code leaves the country fields empty; re-enriching an
// already enriched division against the same reference is a no-op.
func Enrich(div *gnsadm.Division, countries map[string]gnsadm.Country) {
	country, ok := countries[div.CountryCode]
	if !ok {
		div.CountryName = ""
		div.CountryFullName = ""
		return
	}
	div.CountryName = country.ShortName
	div.CountryFullName = country.FullName
}
