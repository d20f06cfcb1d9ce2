package knowledge

import "github.com/BerylCAtieno/agriguru-agent/internal/models"

func soilTable() []models.SoilType {
	return []models.SoilType{
		{
			Name:            "clay",
			Characteristics: "Heavy, water-retentive, nutrient-rich",
			Advantages:      []string{"High water holding capacity", "Rich in nutrients"},
			Disadvantages:   []string{"Poor drainage", "Difficult to work when wet"},
			SuitableCrops:   []string{"rice", "wheat", "cotton"},
			Management:      "Add organic matter, improve drainage",
		},
		{
			Name:            "loam",
			Characteristics: "Well-balanced, ideal for most crops",
			Advantages:      []string{"Good drainage", "Nutrient retention", "Easy to work"},
			Disadvantages:   []string{"May need regular fertilization"},
			SuitableCrops:   []string{"wheat", "maize", "vegetables"},
			Management:      "Maintain organic matter, balanced fertilization",
		},
		{
			Name:            "sandy",
			Characteristics: "Light, well-draining, low nutrient retention",
			Advantages:      []string{"Good drainage", "Easy to work", "Warms up quickly"},
			Disadvantages:   []string{"Low water retention", "Nutrient leaching"},
			SuitableCrops:   []string{"vegetables", "legumes", "root crops"},
			Management:      "Add organic matter, frequent irrigation",
		},
	}
}

func pestTable() []models.PestCategory {
	return []models.PestCategory{
		{
			Name:           "insects",
			Examples:       []string{"aphids", "stem_borer", "bollworm"},
			Identification: "Visual inspection, damage patterns",
			ControlMethods: []string{"biological", "chemical", "cultural", "physical"},
		},
		{
			Name:           "diseases",
			Examples:       []string{"blast", "rust", "wilt"},
			Identification: "Symptoms on leaves, stems, roots",
			ControlMethods: []string{"resistant_varieties", "fungicides", "crop_rotation"},
		},
		{
			Name:           "weeds",
			Examples:       []string{"grass_weeds", "broadleaf_weeds", "sedges"},
			Identification: "Plant morphology, growth habits",
			ControlMethods: []string{"mechanical", "cultural", "herbicides"},
		},
	}
}

func nutrientTable() []models.NutrientFunction {
	return []models.NutrientFunction{
		{Nutrient: "nitrogen", Function: "Vegetative growth, leaf development, protein synthesis"},
		{Nutrient: "phosphorus", Function: "Root development, flowering, fruit formation"},
		{Nutrient: "potassium", Function: "Disease resistance, water regulation, overall plant health"},
		{Nutrient: "calcium", Function: "Cell wall formation, root growth"},
		{Nutrient: "magnesium", Function: "Chlorophyll formation, enzyme activation"},
		{Nutrient: "sulfur", Function: "Protein synthesis, oil formation"},
	}
}

func irrigationTable() []models.IrrigationMethod {
	return []models.IrrigationMethod{
		{
			Name:          "surface",
			Types:         []string{"furrow", "basin", "border"},
			Advantages:    []string{"Low cost", "Simple operation"},
			Disadvantages: []string{"Water wastage", "Uneven distribution"},
			SuitableFor:   []string{"field_crops", "flat_terrain"},
		},
		{
			Name:          "sprinkler",
			Types:         []string{"fixed", "rotating", "traveling"},
			Advantages:    []string{"Even distribution", "Suitable for all terrains"},
			Disadvantages: []string{"High initial cost", "Wind interference"},
			SuitableFor:   []string{"vegetables", "fodder_crops"},
		},
		{
			Name:          "drip",
			Types:         []string{"surface", "subsurface", "micro_sprinklers"},
			Advantages:    []string{"Water saving", "Precise application"},
			Disadvantages: []string{"High cost", "Clogging issues"},
			SuitableFor:   []string{"fruit_trees", "vegetables", "water_scarce_areas"},
		},
	}
}

func seasonTable() []models.SeasonCalendar {
	return []models.SeasonCalendar{
		{
			Key:    "kharif_season",
			Period: "June-October",
			Activities: []models.MonthActivity{
				{Month: "may", Activity: "Field preparation, seed selection"},
				{Month: "june", Activity: "Sowing, transplanting"},
				{Month: "july", Activity: "Weeding, fertilizer application"},
				{Month: "august", Activity: "Pest monitoring, irrigation"},
				{Month: "september", Activity: "Disease management, nutrient management"},
				{Month: "october", Activity: "Harvesting, post-harvest operations"},
			},
			MajorCrops: []string{"rice", "cotton", "sugarcane", "maize"},
		},
		{
			Key:    "rabi_season",
			Period: "November-April",
			Activities: []models.MonthActivity{
				{Month: "november", Activity: "Field preparation, sowing"},
				{Month: "december", Activity: "Irrigation, fertilizer application"},
				{Month: "january", Activity: "Pest management, weeding"},
				{Month: "february", Activity: "Disease monitoring, nutrition"},
				{Month: "march", Activity: "Harvesting preparation"},
				{Month: "april", Activity: "Harvesting, storage"},
			},
			MajorCrops: []string{"wheat", "barley", "mustard", "gram"},
		},
	}
}

func marketInsights() models.MarketInsights {
	return models.MarketInsights{
		PriceFactors:   []string{"supply_demand", "weather", "government_policies", "global_markets"},
		ValueAddition:  []string{"processing", "packaging", "branding", "direct_marketing"},
		MarketChannels: []string{"local_markets", "mandis", "contract_farming", "e_commerce"},
	}
}

func marketQuote() models.MarketQuote {
	return models.MarketQuote{
		CurrentPrice: 2500,
		PriceTrend:   "increasing",
		PriceChange:  "+5.2%",
		MarketDemand: "high",
		SupplyStatus: "normal",
		PriceForecast: []models.PricePoint{
			{Period: "Next Week", Price: 2550, Trend: "up"},
			{Period: "Next Month", Price: 2600, Trend: "up"},
			{Period: "3 Months", Price: 2450, Trend: "down"},
		},
	}
}
