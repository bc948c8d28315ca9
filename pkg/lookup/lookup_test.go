package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnsadm/pkg/gnsadm"
	"gnsadm/pkg/lookup"
)

var divs = []gnsadm.Division{
	{CountryCode: "CA", CountryName: "Canada", Level: "ADM1", Name: "Quebec"},
	{CountryCode: "CA", CountryName: "Canada", Level: "ADM2", Name: "Montreal"},
	{CountryCode: "FR", CountryName: "France", Level: "ADM1", Name: "Normandie"},
	{CountryCode: "FR", CountryName: "France", Level: "ADM1", Name: "Bretagne"},
}

func TestIsZero(t *testing.T) {
	assert.True(t, lookup.Filter{}.IsZero())
	assert.False(t, lookup.Filter{CountryCode: "CA"}.IsZero())
	assert.False(t, lookup.Filter{Name: "que"}.IsZero())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		msg    string
		filter lookup.Filter
		names  []string
	}{
		{"zero filter matches all", lookup.Filter{},
			[]string{"Quebec", "Montreal", "Normandie", "Bretagne"}},
		{"country exact", lookup.Filter{CountryCode: "fr"},
			[]string{"Normandie", "Bretagne"}},
		{"level exact", lookup.Filter{Level: "adm2"},
			[]string{"Montreal"}},
		{"name substring", lookup.Filter{Name: "TAG"},
			[]string{"Bretagne"}},
		{"combined", lookup.Filter{CountryCode: "CA", Level: "ADM1"},
			[]string{"Quebec"}},
		{"no hits", lookup.Filter{CountryCode: "DE"}, nil},
	}

	for _, tt := range tests {
		got := lookup.Match(divs, tt.filter)
		require.Len(t, got, len(tt.names), tt.msg)
		for i, name := range tt.names {
			assert.Equal(t, name, got[i].Name, tt.msg)
		}
	}
}

func TestSummarize(t *testing.T) {
	stats := lookup.Summarize(divs)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Countries)
	assert.Equal(t, map[string]int{"ADM1": 3, "ADM2": 1}, stats.ByLevel)

	empty := lookup.Summarize(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Countries)
}
