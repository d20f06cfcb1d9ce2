// Package weather produces synthetic weather readings for farming advice.
// There is no upstream provider: base values come from a small city table
// and the forecast is jittered from an injectable random source.
package weather

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
)

// Source yields floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// LockedSource is a seeded generator safe for concurrent handlers. It also
// satisfies the advisor's Intn chooser so one seed drives all jitter.
type LockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

type reading struct {
	temp     float64
	humidity float64
	rainfall float64
}

var defaultReading = reading{temp: 28, humidity: 65, rainfall: 3.0}

var cityReadings = map[string]reading{
	"delhi":      {temp: 35, humidity: 65, rainfall: 2.5},
	"mumbai":     {temp: 30, humidity: 80, rainfall: 15.0},
	"bangalore":  {temp: 25, humidity: 70, rainfall: 5.0},
	"chennai":    {temp: 32, humidity: 75, rainfall: 3.0},
	"kolkata":    {temp: 28, humidity: 85, rainfall: 8.0},
	"hyderabad":  {temp: 33, humidity: 60, rainfall: 1.5},
	"pune":       {temp: 29, humidity: 65, rainfall: 4.0},
	"jaipur":     {temp: 38, humidity: 45, rainfall: 0.5},
	"lucknow":    {temp: 36, humidity: 70, rainfall: 2.0},
	"chandigarh": {temp: 32, humidity: 55, rainfall: 1.0},
}


type Lookup struct {
	rnd Source
}

// NewLookup returns a Lookup drawing jitter from src, or from the shared
// math/rand generator when src is nil.
func NewLookup(src Source) *Lookup {
	if src == nil {
		src = globalSource{}
	}
	return &Lookup{rnd: src}
}

// Get returns a sample for "city" or "city, region". It never fails: unknown
// cities use default base values and unparseable input gets a fixed sample.
func (l *Lookup) Get(location string) models.WeatherSample {
	parts := strings.Split(location, ",")
	if len(parts) > 2 {
		return fallbackSample(location)
	}

	city := strings.TrimSpace(parts[0])
	label := city
	if len(parts) == 2 {
		if region := strings.TrimSpace(parts[1]); region != "" {
			label = city + ", " + region
		}
	}

	base, ok := cityReadings[strings.ToLower(city)]
	if !ok {
		base = defaultReading
	}

	condition := Condition(base.temp, base.rainfall)

	return models.WeatherSample{
		Location:         label,
		Temperature:      base.temp,
		Humidity:         base.humidity,
		Rainfall:         base.rainfall,
		WindSpeed:        l.uniform(5, 15),
		Pressure:         l.uniform(1010, 1020),
		WeatherCondition: condition,
		Forecast: []models.ForecastDay{
			{
				Day:       "Today",
				Temp:      base.temp,
				Humidity:  base.humidity,
				Rain:      base.rainfall,
				Condition: condition,
			},
			{
				Day:       "Tomorrow",
				Temp:      round1(base.temp + l.uniform(-2, 2)),
				Humidity:  round1(base.humidity + l.uniform(-5, 5)),
				Rain:      round1(base.rainfall + l.uniform(-1, 3)),
				Condition: models.ConditionPartlyCloudy,
			},
			{
				Day:       "Day 3",
				Temp:      round1(base.temp + l.uniform(-3, 3)),
				Humidity:  round1(base.humidity + l.uniform(-10, 10)),
				Rain:      round1(base.rainfall + l.uniform(-2, 5)),
				Condition: models.ConditionCloudy,
			},
		},
	}
}

// Condition classifies a reading. Rainfall rules are checked before
// temperature rules.
func Condition(temp, rainfall float64) string {
	switch {
	case rainfall > 10:
		return models.ConditionRainy
	case rainfall > 5:
		return models.ConditionCloudy
	case temp > 35:
		return models.ConditionHot
	case temp < 15:
		return models.ConditionCold
	default:
		return models.ConditionClear
	}
}

func fallbackSample(location string) models.WeatherSample {
	return models.WeatherSample{
		Location:         location,
		Temperature:      28,
		Humidity:         65,
		Rainfall:         3.0,
		WindSpeed:        8.0,
		Pressure:         1013.25,
		WeatherCondition: models.ConditionClear,
		Forecast: []models.ForecastDay{
			{Day: "Today", Temp: 28, Humidity: 65, Rain: 3.0, Condition: models.ConditionClear},
			{Day: "Tomorrow", Temp: 29, Humidity: 68, Rain: 4.0, Condition: models.ConditionPartlyCloudy},
			{Day: "Day 3", Temp: 27, Humidity: 70, Rain: 2.0, Condition: models.ConditionClear},
		},
	}
}

func (l *Lookup) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*l.rnd.Float64()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
