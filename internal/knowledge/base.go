// Package knowledge holds the static farming knowledge base: crop profiles,
// regional climate and soil data, seasonal calendars and reference tables.
//
// A Base is built once with New and is read-only afterwards, so a single
// value can be shared by every request goroutine. Accessors hand out copies.
package knowledge

import (
	"sort"
	"strings"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
)

// RegionEntry is a region together with the country it belongs to.
type RegionEntry struct {
	Country string
	Profile models.RegionProfile
}

type Base struct {
	crops       map[string]models.CropProfile
	cropKeys    []string
	countries   []string
	regions     map[string][]models.RegionProfile
	soils       []models.SoilType
	pests       []models.PestCategory
	nutrients   []models.NutrientFunction
	irrigation  []models.IrrigationMethod
	seasons     map[string]models.SeasonCalendar
	insights    models.MarketInsights
	quote       models.MarketQuote
	genericSoil models.SoilRecommendations
}

func New() *Base {
	b := &Base{
		crops:       make(map[string]models.CropProfile),
		regions:     make(map[string][]models.RegionProfile),
		seasons:     make(map[string]models.SeasonCalendar),
		soils:       soilTable(),
		pests:       pestTable(),
		nutrients:   nutrientTable(),
		irrigation:  irrigationTable(),
		insights:    marketInsights(),
		quote:       marketQuote(),
		genericSoil: genericSoilRecommendations(),
	}

	for _, crop := range cropTable() {
		b.crops[crop.Key] = crop
		b.cropKeys = append(b.cropKeys, crop.Key)
	}
	sort.Strings(b.cropKeys)

	for _, c := range regionTable() {
		b.countries = append(b.countries, c.country)
		b.regions[c.country] = c.regions
	}

	for _, s := range seasonTable() {
		b.seasons[s.Key] = s
	}

	return b
}

// Crop returns the profile for a crop key such as "rice".
func (b *Base) Crop(key string) (models.CropProfile, bool) {
	crop, ok := b.crops[key]
	if !ok {
		return models.CropProfile{}, false
	}
	return crop.Clone(), true
}

func (b *Base) CropKeys() []string {
	return append([]string(nil), b.cropKeys...)
}

// Countries lists country keys in the order regions are searched.
func (b *Base) Countries() []string {
	return append([]string(nil), b.countries...)
}

// Regions returns a country's regions in table order.
func (b *Base) Regions(country string) []models.RegionProfile {
	regions := b.regions[country]
	if regions == nil {
		return nil
	}
	out := make([]models.RegionProfile, len(regions))
	for i, r := range regions {
		out[i] = r.Clone()
	}
	return out
}

func (b *Base) Region(country, key string) (models.RegionProfile, bool) {
	for _, r := range b.regions[country] {
		if r.Key == key {
			return r.Clone(), true
		}
	}
	return models.RegionProfile{}, false
}

// AllRegions flattens the region table in search priority order.
func (b *Base) AllRegions() []RegionEntry {
	var out []RegionEntry
	for _, country := range b.countries {
		for _, r := range b.regions[country] {
			out = append(out, RegionEntry{Country: country, Profile: r.Clone()})
		}
	}
	return out
}

func (b *Base) GenericSoilRecommendations() models.SoilRecommendations {
	return b.genericSoil.Clone()
}

// Season looks up a seasonal calendar by "kharif", "rabi" or the full
// "kharif_season" key, case-insensitively.
func (b *Base) Season(name string) (models.SeasonCalendar, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return models.SeasonCalendar{}, false
	}
	if !strings.HasSuffix(key, "_season") {
		key += "_season"
	}
	s, ok := b.seasons[key]
	if !ok {
		return models.SeasonCalendar{}, false
	}
	return s.Clone(), true
}

func (b *Base) SoilTypes() []models.SoilType {
	out := make([]models.SoilType, len(b.soils))
	for i, s := range b.soils {
		out[i] = s.Clone()
	}
	return out
}

func (b *Base) SoilType(name string) (models.SoilType, bool) {
	for _, s := range b.soils {
		if s.Name == name {
			return s.Clone(), true
		}
	}
	return models.SoilType{}, false
}

func (b *Base) PestCategory(name string) (models.PestCategory, bool) {
	for _, p := range b.pests {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return models.PestCategory{}, false
}

func (b *Base) NutrientFunction(nutrient string) (string, bool) {
	for _, n := range b.nutrients {
		if n.Nutrient == nutrient {
			return n.Function, true
		}
	}
	return "", false
}

func (b *Base) IrrigationMethods() []models.IrrigationMethod {
	out := make([]models.IrrigationMethod, len(b.irrigation))
	for i, m := range b.irrigation {
		out[i] = m.Clone()
	}
	return out
}

func (b *Base) IrrigationMethod(name string) (models.IrrigationMethod, bool) {
	for _, m := range b.irrigation {
		if m.Name == name {
			return m.Clone(), true
		}
	}
	return models.IrrigationMethod{}, false
}

func (b *Base) MarketInsights() models.MarketInsights { return b.insights.Clone() }

// MarketQuote returns the mock market snapshot. Every crop gets the same
// figures until a price feed exists.
func (b *Base) MarketQuote(crop string) models.MarketQuote {
	return b.quote.Clone()
}
