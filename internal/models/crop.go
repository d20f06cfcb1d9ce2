package models

type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

type RainfallNeed struct {
	Annual        float64 `json:"annual"`
	GrowingSeason float64 `json:"growing_season"`
}

type OptimalConditions struct {
	Temperature Range        `json:"temperature"`
	Humidity    Range        `json:"humidity"`
	Rainfall    RainfallNeed `json:"rainfall"`
	SoilPH      Range        `json:"soil_ph"`
	SoilTypes   []string     `json:"soil_type"`
}

// SeasonWindow maps a planting season to its harvest months.
type SeasonWindow struct {
	Season string `json:"season"`
	Months string `json:"months"`
}

type YieldPotential struct {
	Average float64 `json:"average"`
	High    float64 `json:"high"`
	Unit    string  `json:"unit"`
}

// Dose is one application of a nutrient at a named stage.
type Dose struct {
	Stage  string  `json:"stage"`
	Amount float64 `json:"amount"`
}

type NutrientSchedule struct {
	Doses []Dose `json:"doses"`
	Unit  string `json:"unit,omitempty"`
}

type FertilizerSchedule struct {
	Nitrogen   NutrientSchedule `json:"nitrogen"`
	Phosphorus NutrientSchedule `json:"phosphorus"`
	Potassium  NutrientSchedule `json:"potassium"`
}

// StageNote is a growth-stage instruction, kept in stage order.
type StageNote struct {
	Stage       string `json:"stage"`
	Instruction string `json:"instruction"`
}

type CropProfile struct {
	Key             string             `json:"key"`
	ScientificName  string             `json:"scientific_name"`
	GrowthStages    []string           `json:"growth_stages"`
	Conditions      OptimalConditions  `json:"optimal_conditions"`
	PlantingSeasons []string           `json:"planting_season"`
	HarvestTime     []SeasonWindow     `json:"harvest_time"`
	Yield           YieldPotential     `json:"yield_potential"`
	Diseases        []string           `json:"common_diseases"`
	Pests           []string           `json:"common_pests"`
	Fertilizer      FertilizerSchedule `json:"fertilizer_schedule"`
	WaterManagement []StageNote        `json:"water_management"`
}
