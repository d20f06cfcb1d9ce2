package weather

import (
	"math/rand"
	"testing"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestLookup_KnownCitiesEchoBaseValues(t *testing.T) {
	lookup := NewLookup(rand.New(rand.NewSource(7)))

	for city, base := range cityReadings {
		t.Run(city, func(t *testing.T) {
			sample := lookup.Get(city)

			require.Len(t, sample.Forecast, 3)
			today := sample.Forecast[0]
			assert.Equal(t, "Today", today.Day)
			assert.Equal(t, base.temp, today.Temp)
			assert.Equal(t, base.humidity, today.Humidity)
			assert.Equal(t, base.rainfall, today.Rain)
			assert.Equal(t, Condition(base.temp, base.rainfall), today.Condition)

			assert.Equal(t, base.temp, sample.Temperature)
			assert.Equal(t, base.humidity, sample.Humidity)
			assert.Equal(t, base.rainfall, sample.Rainfall)
		})
	}
}

func TestLookup_CaseInsensitiveCity(t *testing.T) {
	sample := NewLookup(fixedSource(0.5)).Get("MUMBAI")
	assert.Equal(t, 30.0, sample.Temperature)
	assert.Equal(t, models.ConditionRainy, sample.WeatherCondition)
	assert.Equal(t, "MUMBAI", sample.Location)
}

func TestLookup_UnknownCityDefaults(t *testing.T) {
	lookup := NewLookup(nil)

	for _, loc := range []string{"Springfield", "", "ludhiana, punjab", "  "} {
		sample := lookup.Get(loc)
		assert.Equal(t, 28.0, sample.Temperature, loc)
		assert.Equal(t, 65.0, sample.Humidity, loc)
		assert.Equal(t, 3.0, sample.Rainfall, loc)
		assert.Equal(t, models.ConditionClear, sample.WeatherCondition, loc)
	}
}

func TestLookup_RegionLabel(t *testing.T) {
	sample := NewLookup(fixedSource(0.5)).Get(" Pune ,  Maharashtra ")
	assert.Equal(t, "Pune, Maharashtra", sample.Location)
	assert.Equal(t, 29.0, sample.Temperature)
}

func TestLookup_EmptyRegionDropped(t *testing.T) {
	lookup := NewLookup(fixedSource(0.5))

	for _, loc := range []string{"Delhi,", "Delhi ,  ", " Delhi"} {
		sample := lookup.Get(loc)
		assert.Equal(t, "Delhi", sample.Location, loc)
		assert.Equal(t, 35.0, sample.Temperature, loc)
	}
}

func TestLookup_MalformedLocationFallsBack(t *testing.T) {
	sample := NewLookup(fixedSource(0.5)).Get("a, b, c")
	assert.Equal(t, "a, b, c", sample.Location)
	assert.Equal(t, 28.0, sample.Temperature)
	assert.Equal(t, 1013.25, sample.Pressure)
	require.Len(t, sample.Forecast, 3)
	assert.Equal(t, 29.0, sample.Forecast[1].Temp)
}

func TestLookup_Jitter(t *testing.T) {
	sample := NewLookup(fixedSource(0.5)).Get("Delhi")

	assert.Equal(t, 10.0, sample.WindSpeed)
	assert.Equal(t, 1015.0, sample.Pressure)

	tomorrow := sample.Forecast[1]
	assert.Equal(t, "Tomorrow", tomorrow.Day)
	assert.Equal(t, 35.0, tomorrow.Temp)
	assert.Equal(t, 65.0, tomorrow.Humidity)
	assert.Equal(t, 3.5, tomorrow.Rain)
	assert.Equal(t, models.ConditionPartlyCloudy, tomorrow.Condition)

	day3 := sample.Forecast[2]
	assert.Equal(t, "Day 3", day3.Day)
	assert.Equal(t, 4.0, day3.Rain)
	assert.Equal(t, models.ConditionCloudy, day3.Condition)
}

func TestLookup_JitterBounds(t *testing.T) {
	lookup := NewLookup(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		s := lookup.Get("Jaipur")
		assert.GreaterOrEqual(t, s.WindSpeed, 5.0)
		assert.Less(t, s.WindSpeed, 15.0)
		assert.GreaterOrEqual(t, s.Pressure, 1010.0)
		assert.Less(t, s.Pressure, 1020.0)

		assert.InDelta(t, 38.0, s.Forecast[1].Temp, 2.05)
		assert.InDelta(t, 45.0, s.Forecast[1].Humidity, 5.05)
		assert.InDelta(t, 38.0, s.Forecast[2].Temp, 3.05)
		assert.InDelta(t, 45.0, s.Forecast[2].Humidity, 10.05)
		assert.GreaterOrEqual(t, s.Forecast[1].Rain, 0.5-1.05)
		assert.LessOrEqual(t, s.Forecast[1].Rain, 0.5+3.05)
		assert.GreaterOrEqual(t, s.Forecast[2].Rain, 0.5-2.05)
		assert.LessOrEqual(t, s.Forecast[2].Rain, 0.5+5.05)
	}
}

func TestCondition(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		rainfall float64
		want     string
	}{
		{"rain beats heat", 40, 12, models.ConditionRainy},
		{"cloudy beats cold", 10, 6, models.ConditionCloudy},
		{"rain boundary is exclusive", 30, 10, models.ConditionCloudy},
		{"cloud boundary is exclusive", 30, 5, models.ConditionClear},
		{"hot", 36, 0, models.ConditionHot},
		{"hot boundary is exclusive", 35, 0, models.ConditionClear},
		{"cold", 14, 1, models.ConditionCold},
		{"clear", 25, 3, models.ConditionClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Condition(tt.temp, tt.rainfall))
		})
	}
}

func TestLockedSource_DeterministicAndConcurrent(t *testing.T) {
	a, b := NewLockedSource(7), NewLockedSource(7)
	assert.Equal(t, NewLookup(a).Get("Pune"), NewLookup(b).Get("Pune"))
	assert.Equal(t, a.Intn(4), b.Intn(4))

	lookup := NewLookup(NewLockedSource(1))
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			lookup.Get("Delhi")
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
