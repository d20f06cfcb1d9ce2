package knowledge

import "github.com/BerylCAtieno/agriguru-agent/internal/models"

const kgPerHectare = "kg/hectare"

func cropTable() []models.CropProfile {
	return []models.CropProfile{
		{
			Key:            "rice",
			ScientificName: "Oryza sativa",
			GrowthStages:   []string{"seedling", "tillering", "heading", "flowering", "ripening"},
			Conditions: models.OptimalConditions{
				Temperature: models.Range{Min: 20, Max: 35, Optimal: 25},
				Humidity:    models.Range{Min: 60, Max: 80, Optimal: 70},
				Rainfall:    models.RainfallNeed{Annual: 1200, GrowingSeason: 800},
				SoilPH:      models.Range{Min: 5.5, Max: 7.0, Optimal: 6.5},
				SoilTypes:   []string{"clay", "loam", "alluvial"},
			},
			PlantingSeasons: []string{"kharif", "rabi"},
			HarvestTime: []models.SeasonWindow{
				{Season: "kharif", Months: "October-November"},
				{Season: "rabi", Months: "March-April"},
			},
			Yield:    models.YieldPotential{Average: 3.5, High: 6.0, Unit: "tons/hectare"},
			Diseases: []string{"blast", "bacterial_blight", "sheath_blight"},
			Pests:    []string{"stem_borer", "leaf_folder", "brown_planthopper"},
			Fertilizer: models.FertilizerSchedule{
				// The nitrogen split for rice carries no unit in the source table.
				Nitrogen: models.NutrientSchedule{Doses: []models.Dose{
					{Stage: "basal", Amount: 50}, {Stage: "tillering", Amount: 25}, {Stage: "panicle", Amount: 25},
				}},
				Phosphorus: models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 100}}, Unit: kgPerHectare},
				Potassium:  models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 60}}, Unit: kgPerHectare},
			},
			WaterManagement: []models.StageNote{
				{Stage: "land_preparation", Instruction: "5-10 cm standing water"},
				{Stage: "vegetative", Instruction: "maintain 2-5 cm water"},
				{Stage: "reproductive", Instruction: "maintain 5 cm water"},
				{Stage: "maturity", Instruction: "drain field 15 days before harvest"},
			},
		},
		{
			Key:            "wheat",
			ScientificName: "Triticum aestivum",
			GrowthStages:   []string{"germination", "tillering", "jointing", "booting", "flowering", "maturity"},
			Conditions: models.OptimalConditions{
				Temperature: models.Range{Min: 15, Max: 25, Optimal: 20},
				Humidity:    models.Range{Min: 50, Max: 70, Optimal: 60},
				Rainfall:    models.RainfallNeed{Annual: 600, GrowingSeason: 400},
				SoilPH:      models.Range{Min: 6.0, Max: 7.5, Optimal: 7.0},
				SoilTypes:   []string{"loam", "clay_loam", "sandy_loam"},
			},
			PlantingSeasons: []string{"rabi"},
			HarvestTime:     []models.SeasonWindow{{Season: "rabi", Months: "March-April"}},
			Yield:           models.YieldPotential{Average: 4.0, High: 7.0, Unit: "tons/hectare"},
			Diseases:        []string{"rust", "smut", "powdery_mildew"},
			Pests:           []string{"aphids", "termites", "cutworms"},
			Fertilizer: models.FertilizerSchedule{
				Nitrogen: models.NutrientSchedule{Doses: []models.Dose{
					{Stage: "basal", Amount: 60}, {Stage: "crown_root", Amount: 40},
				}, Unit: kgPerHectare},
				Phosphorus: models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 80}}, Unit: kgPerHectare},
				Potassium:  models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 40}}, Unit: kgPerHectare},
			},
			WaterManagement: []models.StageNote{
				{Stage: "sowing", Instruction: "pre-sowing irrigation"},
				{Stage: "crown_root", Instruction: "first irrigation at 20-25 days"},
				{Stage: "tillering", Instruction: "second irrigation at 40-45 days"},
				{Stage: "flowering", Instruction: "third irrigation at 60-65 days"},
				{Stage: "grain_filling", Instruction: "fourth irrigation at 80-85 days"},
			},
		},
		{
			Key:            "cotton",
			ScientificName: "Gossypium hirsutum",
			GrowthStages:   []string{"seedling", "squaring", "flowering", "boll_development", "maturity"},
			Conditions: models.OptimalConditions{
				Temperature: models.Range{Min: 21, Max: 35, Optimal: 28},
				Humidity:    models.Range{Min: 50, Max: 70, Optimal: 60},
				Rainfall:    models.RainfallNeed{Annual: 800, GrowingSeason: 600},
				SoilPH:      models.Range{Min: 5.8, Max: 8.0, Optimal: 7.0},
				SoilTypes:   []string{"black_cotton", "alluvial", "red_loam"},
			},
			PlantingSeasons: []string{"kharif"},
			HarvestTime:     []models.SeasonWindow{{Season: "kharif", Months: "October-January"}},
			Yield:           models.YieldPotential{Average: 500, High: 800, Unit: kgPerHectare},
			Diseases:        []string{"wilt", "leaf_curl", "alternaria_blight"},
			Pests:           []string{"bollworm", "aphids", "whitefly"},
			Fertilizer: models.FertilizerSchedule{
				Nitrogen: models.NutrientSchedule{Doses: []models.Dose{
					{Stage: "basal", Amount: 50}, {Stage: "flowering", Amount: 50},
				}, Unit: kgPerHectare},
				Phosphorus: models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 100}}, Unit: kgPerHectare},
				Potassium:  models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 50}}, Unit: kgPerHectare},
			},
			WaterManagement: []models.StageNote{
				{Stage: "pre_sowing", Instruction: "heavy irrigation"},
				{Stage: "vegetative", Instruction: "light frequent irrigation"},
				{Stage: "flowering", Instruction: "adequate moisture critical"},
				{Stage: "boll_development", Instruction: "maintain soil moisture"},
			},
		},
		{
			Key:            "maize",
			ScientificName: "Zea mays",
			GrowthStages:   []string{"germination", "vegetative", "tasseling", "silking", "grain_filling", "maturity"},
			Conditions: models.OptimalConditions{
				Temperature: models.Range{Min: 18, Max: 32, Optimal: 25},
				Humidity:    models.Range{Min: 60, Max: 80, Optimal: 70},
				Rainfall:    models.RainfallNeed{Annual: 700, GrowingSeason: 500},
				SoilPH:      models.Range{Min: 6.0, Max: 7.5, Optimal: 6.8},
				SoilTypes:   []string{"loam", "sandy_loam", "clay_loam"},
			},
			PlantingSeasons: []string{"kharif", "rabi"},
			HarvestTime: []models.SeasonWindow{
				{Season: "kharif", Months: "September-October"},
				{Season: "rabi", Months: "March-April"},
			},
			Yield:    models.YieldPotential{Average: 5.0, High: 8.0, Unit: "tons/hectare"},
			Diseases: []string{"blight", "rust", "downy_mildew"},
			Pests:    []string{"stem_borer", "fall_armyworm", "aphids"},
			Fertilizer: models.FertilizerSchedule{
				Nitrogen: models.NutrientSchedule{Doses: []models.Dose{
					{Stage: "basal", Amount: 60}, {Stage: "knee_high", Amount: 60},
				}, Unit: kgPerHectare},
				Phosphorus: models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 80}}, Unit: kgPerHectare},
				Potassium:  models.NutrientSchedule{Doses: []models.Dose{{Stage: "basal", Amount: 40}}, Unit: kgPerHectare},
			},
			WaterManagement: []models.StageNote{
				{Stage: "germination", Instruction: "adequate soil moisture"},
				{Stage: "vegetative", Instruction: "regular irrigation"},
				{Stage: "tasseling", Instruction: "critical water period"},
				{Stage: "grain_filling", Instruction: "maintain moisture"},
			},
		},
	}
}
