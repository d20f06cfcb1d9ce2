package models

import (
	"bytes"
	"encoding/json"
)

type RainfallStats struct {
	Average float64 `json:"average"`
	Monsoon string  `json:"monsoon"`
}

type TemperatureStats struct {
	Summer          float64 `json:"summer"`
	Winter          float64 `json:"winter"`
	OptimalCropTemp float64 `json:"optimal_crop_temp"`
}

// SoilCrops pairs a soil type with the crops recommended on it.
type SoilCrops struct {
	Soil  string
	Crops []string
}

// SoilRecommendations keeps table order but encodes as a JSON object.
type SoilRecommendations []SoilCrops

func (s SoilRecommendations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Soil)
		if err != nil {
			return nil, err
		}
		crops, err := json.Marshal(entry.Crops)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(crops)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lookup returns the crops listed for a soil type.
func (s SoilRecommendations) Lookup(soil string) ([]string, bool) {
	for _, entry := range s {
		if entry.Soil == soil {
			return entry.Crops, true
		}
	}
	return nil, false
}

// RegionProfile describes one state/province. Rainfall, Temperature and
// SoilTypes are absent for regions the table has no figures for.
type RegionProfile struct {
	Key                 string              `json:"key"`
	ClimateZone         string              `json:"climate_zone"`
	DominantSoil        string              `json:"dominant_soil"`
	Rainfall            *RainfallStats      `json:"rainfall,omitempty"`
	Temperature         *TemperatureStats   `json:"temperature,omitempty"`
	MajorCrops          []string            `json:"major_crops"`
	SoilTypes           []string            `json:"soil_types,omitempty"`
	SoilRecommendations SoilRecommendations `json:"soil_recommendations"`
}

// SoilReport is what the location resolver hands back: either a matched
// region or the generic fallback.
type SoilReport struct {
	Location            string              `json:"location"`
	Country             string              `json:"country,omitempty"`
	Region              string              `json:"region,omitempty"`
	Matched             bool                `json:"matched"`
	ClimateZone         string              `json:"climate_zone"`
	DominantSoil        string              `json:"dominant_soil,omitempty"`
	SoilTypes           []string            `json:"soil_types,omitempty"`
	SoilRecommendations SoilRecommendations `json:"soil_recommendations"`
	MajorCrops          []string            `json:"major_crops,omitempty"`
	RainfallInfo        *RainfallStats      `json:"rainfall_info,omitempty"`
	GeneralAdvice       string              `json:"general_advice,omitempty"`
}
