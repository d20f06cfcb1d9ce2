package models

type SoilType struct {
	Name            string   `json:"name"`
	Characteristics string   `json:"characteristics"`
	Advantages      []string `json:"advantages"`
	Disadvantages   []string `json:"disadvantages"`
	SuitableCrops   []string `json:"suitable_crops"`
	Management      string   `json:"management"`
}

type PestCategory struct {
	Name           string   `json:"name"`
	Examples       []string `json:"examples"`
	Identification string   `json:"identification"`
	ControlMethods []string `json:"control_methods"`
}

type NutrientFunction struct {
	Nutrient string `json:"nutrient"`
	Function string `json:"function"`
}

type IrrigationMethod struct {
	Name          string   `json:"name"`
	Types         []string `json:"types"`
	Advantages    []string `json:"advantages"`
	Disadvantages []string `json:"disadvantages"`
	SuitableFor   []string `json:"suitable_for"`
}

// MonthActivity is one line of a seasonal calendar.
type MonthActivity struct {
	Month    string `json:"month"`
	Activity string `json:"activity"`
}

type SeasonCalendar struct {
	Key        string          `json:"key"`
	Period     string          `json:"period"`
	Activities []MonthActivity `json:"activities"`
	MajorCrops []string        `json:"major_crops"`
}

type MarketInsights struct {
	PriceFactors   []string `json:"price_factors"`
	ValueAddition  []string `json:"value_addition"`
	MarketChannels []string `json:"market_channels"`
}

type PricePoint struct {
	Period string  `json:"period"`
	Price  float64 `json:"price"`
	Trend  string  `json:"trend"`
}

type MarketQuote struct {
	CurrentPrice  float64      `json:"current_price"`
	PriceTrend    string       `json:"price_trend"`
	PriceChange   string       `json:"price_change"`
	MarketDemand  string       `json:"market_demand"`
	SupplyStatus  string       `json:"supply_status"`
	PriceForecast []PricePoint `json:"price_forecast"`
}
