package advisor

// Kind names the template a query was routed to.
type Kind string

const (
	KindWeatherLocal   Kind = "weather_location"
	KindWeatherGeneral Kind = "weather_general"
	KindLocationSoil   Kind = "location_soil"
	KindPlanting       Kind = "planting"
	KindFertilizer     Kind = "fertilizer"
	KindIrrigation     Kind = "irrigation"
	KindPest           Kind = "pest"
	KindHarvest        Kind = "harvest"
	KindTiming         Kind = "timing"
	KindCropOverview   Kind = "crop_overview"
	KindSoil           Kind = "soil"
	KindMarket         Kind = "market"
	KindSeasonal       Kind = "seasonal"
	KindSustainable    Kind = "sustainable"
	KindTechnology     Kind = "technology"
	KindGeneral        Kind = "general"
)

var weatherWords = []string{"weather", "temperature", "rain", "climate"}

type rule struct {
	kind   Kind
	when   func(r *request) bool
	render func(a *Advisor, r *request) string
}

// rules is evaluated top to bottom; the first match wins and the last rule
// always matches.
var rules = []rule{
	{KindWeatherLocal, func(r *request) bool {
		return r.mentions(weatherWords...) && r.Location != ""
	}, (*Advisor).renderWeatherLocal},
	{KindWeatherGeneral, func(r *request) bool {
		return r.mentions(weatherWords...)
	}, (*Advisor).renderWeatherGeneral},
	{KindLocationSoil, func(r *request) bool {
		return r.mentions("soil") && r.Location != ""
	}, (*Advisor).renderLocationSoil},

	// Known crop: sub-dispatch on the question topic.
	{KindPlanting, cropAnd("plant", "sow", "grow"), (*Advisor).renderPlanting},
	{KindFertilizer, cropAnd("fertilizer", "nutrition", "nutrient"), (*Advisor).renderFertilizer},
	{KindIrrigation, cropAnd("irrigation", "water"), (*Advisor).renderIrrigation},
	{KindPest, cropAnd("pest", "disease", "insect"), (*Advisor).renderPest},
	{KindHarvest, cropAnd("harvest", "yield"), (*Advisor).renderHarvest},
	{KindTiming, cropAnd("time", "when"), (*Advisor).renderTiming},
	{KindCropOverview, func(r *request) bool { return r.hasCrop }, (*Advisor).renderCropOverview},

	{KindSoil, keywords("soil", "ph", "nutrient"), (*Advisor).renderSoil},
	{KindMarket, keywords("market", "price", "sell"), (*Advisor).renderMarket},
	{KindSeasonal, keywords("season", "calendar", "kharif", "rabi"), (*Advisor).renderSeasonal},
	{KindSustainable, keywords("organic", "sustainable"), (*Advisor).renderSustainable},
	{KindTechnology, keywords("technology", "modern", "equipment"), (*Advisor).renderTechnology},
	{KindGeneral, func(*request) bool { return true }, (*Advisor).renderGeneral},
}

func cropAnd(words ...string) func(r *request) bool {
	return func(r *request) bool {
		return r.hasCrop && r.mentions(words...)
	}
}

func keywords(words ...string) func(r *request) bool {
	return func(r *request) bool {
		return r.mentions(words...)
	}
}

func match(r *request) rule {
	for _, rl := range rules {
		if rl.when(r) {
			return rl
		}
	}
	return rules[len(rules)-1]
}
