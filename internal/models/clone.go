package models

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func (n NutrientSchedule) Clone() NutrientSchedule {
	if n.Doses != nil {
		n.Doses = append([]Dose(nil), n.Doses...)
	}
	return n
}

// Clone returns a deep copy, so callers may edit the result freely.
func (c CropProfile) Clone() CropProfile {
	c.GrowthStages = cloneStrings(c.GrowthStages)
	c.Conditions.SoilTypes = cloneStrings(c.Conditions.SoilTypes)
	c.PlantingSeasons = cloneStrings(c.PlantingSeasons)
	if c.HarvestTime != nil {
		c.HarvestTime = append([]SeasonWindow(nil), c.HarvestTime...)
	}
	c.Diseases = cloneStrings(c.Diseases)
	c.Pests = cloneStrings(c.Pests)
	c.Fertilizer.Nitrogen = c.Fertilizer.Nitrogen.Clone()
	c.Fertilizer.Phosphorus = c.Fertilizer.Phosphorus.Clone()
	c.Fertilizer.Potassium = c.Fertilizer.Potassium.Clone()
	if c.WaterManagement != nil {
		c.WaterManagement = append([]StageNote(nil), c.WaterManagement...)
	}
	return c
}

func (s SoilRecommendations) Clone() SoilRecommendations {
	if s == nil {
		return nil
	}
	out := make(SoilRecommendations, len(s))
	for i, entry := range s {
		out[i] = SoilCrops{Soil: entry.Soil, Crops: cloneStrings(entry.Crops)}
	}
	return out
}

func (r RegionProfile) Clone() RegionProfile {
	if r.Rainfall != nil {
		rainfall := *r.Rainfall
		r.Rainfall = &rainfall
	}
	if r.Temperature != nil {
		temp := *r.Temperature
		r.Temperature = &temp
	}
	r.MajorCrops = cloneStrings(r.MajorCrops)
	r.SoilTypes = cloneStrings(r.SoilTypes)
	r.SoilRecommendations = r.SoilRecommendations.Clone()
	return r
}

func (r SoilReport) Clone() SoilReport {
	r.SoilTypes = cloneStrings(r.SoilTypes)
	r.SoilRecommendations = r.SoilRecommendations.Clone()
	r.MajorCrops = cloneStrings(r.MajorCrops)
	if r.RainfallInfo != nil {
		rainfall := *r.RainfallInfo
		r.RainfallInfo = &rainfall
	}
	return r
}

func (s SoilType) Clone() SoilType {
	s.Advantages = cloneStrings(s.Advantages)
	s.Disadvantages = cloneStrings(s.Disadvantages)
	s.SuitableCrops = cloneStrings(s.SuitableCrops)
	return s
}

func (p PestCategory) Clone() PestCategory {
	p.Examples = cloneStrings(p.Examples)
	p.ControlMethods = cloneStrings(p.ControlMethods)
	return p
}

func (m IrrigationMethod) Clone() IrrigationMethod {
	m.Types = cloneStrings(m.Types)
	m.Advantages = cloneStrings(m.Advantages)
	m.Disadvantages = cloneStrings(m.Disadvantages)
	m.SuitableFor = cloneStrings(m.SuitableFor)
	return m
}

func (s SeasonCalendar) Clone() SeasonCalendar {
	if s.Activities != nil {
		s.Activities = append([]MonthActivity(nil), s.Activities...)
	}
	s.MajorCrops = cloneStrings(s.MajorCrops)
	return s
}

func (m MarketInsights) Clone() MarketInsights {
	m.PriceFactors = cloneStrings(m.PriceFactors)
	m.ValueAddition = cloneStrings(m.ValueAddition)
	m.MarketChannels = cloneStrings(m.MarketChannels)
	return m
}

func (q MarketQuote) Clone() MarketQuote {
	if q.PriceForecast != nil {
		q.PriceForecast = append([]PricePoint(nil), q.PriceForecast...)
	}
	return q
}
