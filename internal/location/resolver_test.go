package location

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(knowledge.New(), time.Minute, time.Minute)
}

func TestResolver_BidirectionalMatch(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		location string
		region   string
		country  string
	}{
		{"region inside sentence", "I live in Punjab", "punjab", knowledge.CountryIndia},
		{"region with suffix", "punjab state", "punjab", knowledge.CountryIndia},
		{"upper case", "KERALA", "kerala", knowledge.CountryIndia},
		{"location inside key", "rajas", "rajasthan", knowledge.CountryIndia},
		{"usa region", "Fresno, California", "california", knowledge.CountryUSA},
		{"underscore key", "tamil_nadu", "tamil_nadu", knowledge.CountryIndia},
		{"empty matches first region", "", "punjab", knowledge.CountryIndia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := r.Resolve(tt.location)
			assert.True(t, report.Matched)
			assert.Equal(t, tt.region, report.Region)
			assert.Equal(t, tt.country, report.Country)
			assert.Equal(t, tt.location, report.Location)
		})
	}
}

func TestResolver_PunjabProfile(t *testing.T) {
	report := newTestResolver().Resolve("punjab")

	assert.Equal(t, "alluvial", report.DominantSoil)
	assert.Equal(t, "semi-arid", report.ClimateZone)
	assert.Equal(t, []string{"alluvial", "clay_loam", "sandy_loam"}, report.SoilTypes)
	require.NotNil(t, report.RainfallInfo)
	assert.Equal(t, 700.0, report.RainfallInfo.Average)
	assert.Empty(t, report.GeneralAdvice)
}

func TestResolver_IndiaCheckedBeforeUSA(t *testing.T) {
	// "iowa" and "kerala" both appear; the Indian table is searched first.
	report := newTestResolver().Resolve("iowa kerala exchange")
	assert.Equal(t, "kerala", report.Region)
}

func TestResolver_GenericFallback(t *testing.T) {
	r := newTestResolver()

	for _, loc := range []string{"india", "West Bengal", "Nairobi"} {
		report := r.Resolve(loc)
		assert.False(t, report.Matched, loc)
		assert.Equal(t, GenericClimateZone, report.ClimateZone, loc)
		assert.Equal(t, GenericAdvice, report.GeneralAdvice, loc)
		assert.Empty(t, report.DominantSoil, loc)
		assert.Nil(t, report.RainfallInfo, loc)
		assert.Len(t, report.SoilRecommendations, 6, loc)
	}
}

func TestResolver_CachedAndUncachedAgree(t *testing.T) {
	cached := newTestResolver()
	uncached := NewResolver(knowledge.New(), 0, 0)

	for _, loc := range []string{"Punjab", "Punjab", "iowa", "nowhere"} {
		assert.Equal(t, uncached.Resolve(loc), cached.Resolve(loc), loc)
	}
	assert.Equal(t, 2, cached.cache.ItemCount())
	assert.Nil(t, uncached.cache)
}

func TestResolver_CacheBoundedByRegionTable(t *testing.T) {
	r := newTestResolver()

	long := strings.Repeat("x", 10<<10)
	for i := 0; i < 200; i++ {
		report := r.Resolve(fmt.Sprintf("%s-%d", long, i))
		require.False(t, report.Matched)
	}
	assert.Zero(t, r.cache.ItemCount())

	for i := 0; i < 200; i++ {
		report := r.Resolve(fmt.Sprintf("farm %d near Punjab", i))
		require.True(t, report.Matched)
		assert.Equal(t, fmt.Sprintf("farm %d near Punjab", i), report.Location)
	}
	assert.Equal(t, 1, r.cache.ItemCount())
}

func TestResolver_CachedReportIsCopied(t *testing.T) {
	r := newTestResolver()

	first := r.Resolve("punjab")
	first.SoilTypes[0] = "mutated"
	first.RainfallInfo.Average = 0

	second := r.Resolve("punjab")
	assert.Equal(t, "alluvial", second.SoilTypes[0])
	assert.Equal(t, 700.0, second.RainfallInfo.Average)
}
