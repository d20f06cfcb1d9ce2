package knowledge

import "github.com/BerylCAtieno/agriguru-agent/internal/models"

// Country keys in lookup priority order.
const (
	CountryIndia = "india"
	CountryUSA   = "usa"
)

type countryRegions struct {
	country string
	regions []models.RegionProfile
}

func regionTable() []countryRegions {
	return []countryRegions{
		{country: CountryIndia, regions: []models.RegionProfile{
			{
				Key:          "punjab",
				ClimateZone:  "semi-arid",
				DominantSoil: "alluvial",
				Rainfall:     &models.RainfallStats{Average: 700, Monsoon: "july-september"},
				Temperature:  &models.TemperatureStats{Summer: 35, Winter: 10, OptimalCropTemp: 25},
				MajorCrops:   []string{"wheat", "rice", "maize", "cotton"},
				SoilTypes:    []string{"alluvial", "clay_loam", "sandy_loam"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "alluvial", Crops: []string{"wheat", "rice", "sugarcane", "vegetables"}},
					{Soil: "clay_loam", Crops: []string{"rice", "wheat", "cotton", "pulses"}},
					{Soil: "sandy_loam", Crops: []string{"maize", "vegetables", "fodder_crops"}},
				},
			},
			{
				Key:          "maharashtra",
				ClimateZone:  "tropical",
				DominantSoil: "black_cotton",
				Rainfall:     &models.RainfallStats{Average: 1200, Monsoon: "june-september"},
				Temperature:  &models.TemperatureStats{Summer: 38, Winter: 15, OptimalCropTemp: 28},
				MajorCrops:   []string{"cotton", "sugarcane", "rice", "wheat"},
				SoilTypes:    []string{"black_cotton", "red_loam", "laterite"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "black_cotton", Crops: []string{"cotton", "sugarcane", "soybean", "wheat"}},
					{Soil: "red_loam", Crops: []string{"rice", "millet", "pulses", "vegetables"}},
					{Soil: "laterite", Crops: []string{"cashew", "coconut", "spices", "fruits"}},
				},
			},
			{
				Key:          "kerala",
				ClimateZone:  "tropical_humid",
				DominantSoil: "laterite",
				Rainfall:     &models.RainfallStats{Average: 3000, Monsoon: "june-september"},
				Temperature:  &models.TemperatureStats{Summer: 32, Winter: 22, OptimalCropTemp: 27},
				MajorCrops:   []string{"rice", "coconut", "spices", "rubber"},
				SoilTypes:    []string{"laterite", "alluvial", "coastal_sandy"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "laterite", Crops: []string{"coconut", "rubber", "spices", "fruits"}},
					{Soil: "alluvial", Crops: []string{"rice", "vegetables", "banana", "sugarcane"}},
					{Soil: "coastal_sandy", Crops: []string{"coconut", "cashew", "vegetables"}},
				},
			},
			{
				Key:          "rajasthan",
				ClimateZone:  "arid",
				DominantSoil: "sandy",
				Rainfall:     &models.RainfallStats{Average: 300, Monsoon: "july-august"},
				Temperature:  &models.TemperatureStats{Summer: 42, Winter: 8, OptimalCropTemp: 25},
				MajorCrops:   []string{"wheat", "barley", "millet", "mustard"},
				SoilTypes:    []string{"sandy", "sandy_loam", "saline"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "sandy", Crops: []string{"millet", "drought_resistant_crops", "barley"}},
					{Soil: "sandy_loam", Crops: []string{"wheat", "mustard", "gram", "vegetables"}},
					{Soil: "saline", Crops: []string{"salt_tolerant_crops", "barley", "mustard"}},
				},
			},
			{
				Key:          "west_bengal",
				ClimateZone:  "humid_subtropical",
				DominantSoil: "alluvial",
				Rainfall:     &models.RainfallStats{Average: 1500, Monsoon: "june-september"},
				Temperature:  &models.TemperatureStats{Summer: 35, Winter: 12, OptimalCropTemp: 26},
				MajorCrops:   []string{"rice", "wheat", "jute", "vegetables"},
				SoilTypes:    []string{"alluvial", "clay", "laterite"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "alluvial", Crops: []string{"rice", "wheat", "jute", "vegetables"}},
					{Soil: "clay", Crops: []string{"rice", "sugarcane", "wheat"}},
					{Soil: "laterite", Crops: []string{"tea", "fruits", "spices"}},
				},
			},
			{
				Key:          "tamil_nadu",
				ClimateZone:  "tropical",
				DominantSoil: "red_loam",
				Rainfall:     &models.RainfallStats{Average: 1000, Monsoon: "october-december"},
				Temperature:  &models.TemperatureStats{Summer: 38, Winter: 18, OptimalCropTemp: 28},
				MajorCrops:   []string{"rice", "sugarcane", "cotton", "millet"},
				SoilTypes:    []string{"red_loam", "black_cotton", "alluvial"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "red_loam", Crops: []string{"rice", "millet", "pulses", "cotton"}},
					{Soil: "black_cotton", Crops: []string{"cotton", "sugarcane", "wheat"}},
					{Soil: "alluvial", Crops: []string{"rice", "sugarcane", "vegetables"}},
				},
			},
		}},
		{country: CountryUSA, regions: []models.RegionProfile{
			{
				Key:          "california",
				ClimateZone:  "mediterranean",
				DominantSoil: "clay_loam",
				MajorCrops:   []string{"grapes", "almonds", "tomatoes", "lettuce"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "clay_loam", Crops: []string{"grapes", "tomatoes", "vegetables"}},
					{Soil: "sandy_loam", Crops: []string{"almonds", "fruits", "vegetables"}},
				},
			},
			{
				Key:          "iowa",
				ClimateZone:  "humid_continental",
				DominantSoil: "prairie",
				MajorCrops:   []string{"corn", "soybeans", "wheat"},
				SoilRecommendations: models.SoilRecommendations{
					{Soil: "prairie", Crops: []string{"corn", "soybeans", "wheat"}},
					{Soil: "loam", Crops: []string{"corn", "soybeans", "vegetables"}},
				},
			},
		}},
	}
}

// genericSoilRecommendations is served when no region matches a location.
func genericSoilRecommendations() models.SoilRecommendations {
	return models.SoilRecommendations{
		{Soil: "clay", Crops: []string{"rice", "wheat", "cotton", "sugarcane"}},
		{Soil: "loam", Crops: []string{"wheat", "maize", "vegetables", "fruits"}},
		{Soil: "sandy", Crops: []string{"millet", "vegetables", "legumes", "drought_resistant_crops"}},
		{Soil: "black_cotton", Crops: []string{"cotton", "sugarcane", "soybean", "wheat"}},
		{Soil: "red_loam", Crops: []string{"rice", "millet", "pulses", "vegetables"}},
		{Soil: "alluvial", Crops: []string{"rice", "wheat", "sugarcane", "vegetables"}},
	}
}
