package location

import (
	"strings"
	"time"

	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	"github.com/patrickmn/go-cache"
)

const (
	GenericClimateZone = "general"
	GenericAdvice      = "Soil testing recommended for specific recommendations"
)

// Resolver maps free-text locations onto knowledge-base regions.
//
// A region matches when its key is contained in the lower-cased location or
// the location is contained in the key. Short inputs therefore match broadly
// (an empty location matches the first region) and keys with underscores
// such as "west_bengal" only match inputs spelled the same way. Callers rely
// on this behavior, so it is kept as is.
type Resolver struct {
	kb    *knowledge.Base
	cache *cache.Cache
}

// NewResolver memoises matched region reports for ttl. A zero ttl disables
// the cache. Entries are keyed by region, so the cache never holds more than
// one entry per table row no matter what callers send.
func NewResolver(kb *knowledge.Base, ttl, cleanup time.Duration) *Resolver {
	r := &Resolver{kb: kb}
	if ttl > 0 {
		r.cache = cache.New(ttl, cleanup)
	}
	return r
}

// Resolve returns the first matching region's soil report, or the generic
// report when nothing matches. The report's Location echoes the input.
func (r *Resolver) Resolve(location string) models.SoilReport {
	entry, ok := r.match(location)
	if !ok {
		return models.SoilReport{
			Location:            location,
			ClimateZone:         GenericClimateZone,
			SoilRecommendations: r.kb.GenericSoilRecommendations(),
			GeneralAdvice:       GenericAdvice,
		}
	}

	var report models.SoilReport
	if cached, found := r.cacheGet(entry); found {
		report = cached
	} else {
		report = regionReport(entry)
		if r.cache != nil {
			r.cache.SetDefault(cacheKey(entry), report)
		}
	}

	report = report.Clone()
	report.Location = location
	return report
}

func (r *Resolver) match(location string) (knowledge.RegionEntry, bool) {
	lower := strings.ToLower(location)
	for _, entry := range r.kb.AllRegions() {
		key := entry.Profile.Key
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return entry, true
		}
	}
	return knowledge.RegionEntry{}, false
}

func (r *Resolver) cacheGet(entry knowledge.RegionEntry) (models.SoilReport, bool) {
	if r.cache == nil {
		return models.SoilReport{}, false
	}
	cached, ok := r.cache.Get(cacheKey(entry))
	if !ok {
		return models.SoilReport{}, false
	}
	return cached.(models.SoilReport), true
}

func regionReport(entry knowledge.RegionEntry) models.SoilReport {
	region := entry.Profile
	report := models.SoilReport{
		Country:             entry.Country,
		Region:              region.Key,
		Matched:             true,
		ClimateZone:         region.ClimateZone,
		DominantSoil:        region.DominantSoil,
		SoilTypes:           region.SoilTypes,
		SoilRecommendations: region.SoilRecommendations,
		MajorCrops:          region.MajorCrops,
	}
	if region.Rainfall != nil {
		rainfall := *region.Rainfall
		report.RainfallInfo = &rainfall
	}
	return report
}

func cacheKey(entry knowledge.RegionEntry) string {
	return "soil:" + entry.Country + ":" + entry.Profile.Key
}
