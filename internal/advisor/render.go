package advisor

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
)

func (a *Advisor) renderWeatherLocal(r *request) string {
	w := a.weather.Get(r.Location)
	soil := a.soil.Resolve(r.Location)

	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ **Weather & Farming Advice for %s**\n\n", w.Location)

	writeBullets(&b, "Current Weather Conditions",
		fmt.Sprintf("Temperature: %s°C", num(w.Temperature)),
		fmt.Sprintf("Humidity: %s%%", num(w.Humidity)),
		fmt.Sprintf("Rainfall: %smm", num(w.Rainfall)),
		fmt.Sprintf("Wind Speed: %.1f km/h", w.WindSpeed),
		fmt.Sprintf("Condition: %s", title(w.WeatherCondition)),
	)

	b.WriteString("**Weather-Based Farming Recommendations:**\n")
	writeWeatherAlerts(&b, w)

	if r.hasCrop {
		writeSuitability(&b, r.cropKey, r.crop, w)
	}

	fmt.Fprintf(&b, "**Soil & Crop Recommendations for %s:**\n", soil.Location)
	fmt.Fprintf(&b, "• Climate Zone: %s\n", title(soil.ClimateZone))
	if soil.DominantSoil != "" {
		fmt.Fprintf(&b, "• Dominant Soil: %s\n", title(soil.DominantSoil))
	}
	if len(soil.MajorCrops) > 0 {
		fmt.Fprintf(&b, "• Recommended Crops: %s\n", list(soil.MajorCrops))
	}
	if len(soil.SoilRecommendations) > 0 {
		b.WriteString("\n**Soil-Specific Crop Recommendations:**\n")
		writeSoilRecommendations(&b, soil.SoilRecommendations)
	}

	if len(w.Forecast) > 0 {
		b.WriteString("\n**3-Day Weather Forecast:**\n")
		for _, day := range w.Forecast {
			fmt.Fprintf(&b, "• **%s:** %s°C, %s%% humidity, %smm rain\n",
				day.Day, num(day.Temp), num(day.Humidity), num(day.Rain))
		}
	}

	return b.String()
}

func writeWeatherAlerts(b *strings.Builder, w models.WeatherSample) {
	alert := func(heading string, tips ...string) {
		b.WriteString(heading + "\n")
		for _, tip := range tips {
			fmt.Fprintf(b, "   • %s\n", tip)
		}
		b.WriteString("\n")
	}

	switch {
	case w.Temperature > 35:
		alert(fmt.Sprintf("🔥 **High Temperature Alert (%s°C):**", num(w.Temperature)),
			"Increase irrigation frequency",
			"Provide shade protection for sensitive crops",
			"Avoid field work during peak hours (11 AM - 3 PM)",
			"Consider heat-tolerant crop varieties")
	case w.Temperature < 15:
		alert(fmt.Sprintf("❄️ **Low Temperature Alert (%s°C):**", num(w.Temperature)),
			"Protect crops from frost damage",
			"Use mulching to retain soil warmth",
			"Delay planting of warm-season crops")
	}

	switch {
	case w.Humidity > 80:
		alert(fmt.Sprintf("💧 **High Humidity (%s%%):**", num(w.Humidity)),
			"Monitor for fungal diseases",
			"Ensure proper air circulation",
			"Apply preventive fungicides if needed")
	case w.Humidity < 40:
		alert(fmt.Sprintf("🌵 **Low Humidity (%s%%):**", num(w.Humidity)),
			"Increase irrigation frequency",
			"Use drip irrigation to maintain moisture",
			"Apply mulch to reduce evaporation")
	}

	switch {
	case w.Rainfall > 10:
		alert(fmt.Sprintf("🌧️ **Heavy Rainfall (%smm):**", num(w.Rainfall)),
			"Ensure proper field drainage",
			"Delay fertilizer application",
			"Monitor for waterlogging")
	case w.Rainfall < 1:
		alert(fmt.Sprintf("☀️ **Dry Conditions (%smm):**", num(w.Rainfall)),
			"Plan irrigation schedule",
			"Consider drought-resistant varieties",
			"Implement water conservation techniques")
	}
}

func writeSuitability(b *strings.Builder, key string, crop models.CropProfile, w models.WeatherSample) {
	t := crop.Conditions.Temperature
	b.WriteString("**Location Suitability Check:**\n")
	if w.Temperature >= t.Min && w.Temperature <= t.Max {
		fmt.Fprintf(b, "✅ Current temperature (%s°C) is suitable for %s\n", num(w.Temperature), key)
	} else {
		fmt.Fprintf(b, "⚠️ Current temperature (%s°C) may need adjustment for optimal %s growth\n", num(w.Temperature), key)
	}
	b.WriteString("\n")
}

func (a *Advisor) renderLocationSoil(r *request) string {
	soil := a.soil.Resolve(r.Location)

	var b strings.Builder
	fmt.Fprintf(&b, "🌱 **Soil Analysis & Recommendations for %s**\n\n", r.Location)

	b.WriteString("**Location Information:**\n")
	fmt.Fprintf(&b, "• Climate Zone: %s\n", title(soil.ClimateZone))
	if soil.DominantSoil != "" {
		fmt.Fprintf(&b, "• Dominant Soil Type: %s\n", title(soil.DominantSoil))
	}
	if len(soil.SoilTypes) > 0 {
		fmt.Fprintf(&b, "• Available Soil Types: %s\n", titledList(soil.SoilTypes))
	}
	if soil.RainfallInfo != nil {
		fmt.Fprintf(&b, "• Average Rainfall: %smm\n", num(soil.RainfallInfo.Average))
		fmt.Fprintf(&b, "• Monsoon Period: %s\n", soil.RainfallInfo.Monsoon)
	}
	if soil.GeneralAdvice != "" {
		fmt.Fprintf(&b, "• Note: %s\n", soil.GeneralAdvice)
	}

	b.WriteString("\n**Soil-Specific Crop Recommendations:**\n")
	writeSoilRecommendations(&b, soil.SoilRecommendations)

	if len(soil.MajorCrops) > 0 {
		fmt.Fprintf(&b, "\n**Major Crops in %s:** %s\n", r.Location, list(soil.MajorCrops))
	}

	b.WriteString("\n")
	writeBullets(&b, "General Soil Management Tips",
		"Conduct soil pH testing annually",
		"Add organic matter to improve soil structure",
		"Practice crop rotation for soil health",
		"Use appropriate fertilizers based on soil test results",
		"Implement proper drainage systems",
	)

	return b.String()
}

func (a *Advisor) renderPlanting(r *request) string {
	name := title(r.cropKey)
	headings := []string{
		fmt.Sprintf("🌱 **%s Planting Guide**", name),
		fmt.Sprintf("🚜 **Complete %s Planting Manual**", name),
		fmt.Sprintf("🌾 **Expert %s Cultivation Guide**", name),
		fmt.Sprintf("🌾 **Professional %s Planting Instructions**", name),
	}

	var b strings.Builder
	b.WriteString(headings[a.rnd.Intn(len(headings))] + "\n\n")
	fmt.Fprintf(&b, "*Generated on %s*\n\n", a.now().Format("January 02, 2006"))

	var w models.WeatherSample
	if r.Location != "" {
		w = a.weather.Get(r.Location)
		soil := a.soil.Resolve(r.Location)

		fmt.Fprintf(&b, "**Location-Specific Information for %s:**\n", r.Location)
		fmt.Fprintf(&b, "• Current Temperature: %s°C\n", num(w.Temperature))
		fmt.Fprintf(&b, "• Current Humidity: %s%%\n", num(w.Humidity))
		fmt.Fprintf(&b, "• Recent Rainfall: %smm\n", num(w.Rainfall))
		fmt.Fprintf(&b, "• Climate Zone: %s\n", title(soil.ClimateZone))
		if soil.DominantSoil != "" {
			fmt.Fprintf(&b, "• Recommended Soil: %s\n", title(soil.DominantSoil))
		}
		b.WriteString("\n")
	}

	c := r.crop.Conditions
	writeBullets(&b, "Optimal Growing Conditions",
		fmt.Sprintf("Temperature: %s°C (range: %s-%s°C)", num(c.Temperature.Optimal), num(c.Temperature.Min), num(c.Temperature.Max)),
		fmt.Sprintf("Soil pH: %.1f (range: %.1f-%.1f)", c.SoilPH.Optimal, c.SoilPH.Min, c.SoilPH.Max),
		fmt.Sprintf("Soil types: %s", list(c.SoilTypes)),
		fmt.Sprintf("Rainfall requirement: %smm during growing season", num(c.Rainfall.GrowingSeason)),
	)

	if r.Location != "" {
		writeSuitability(&b, r.cropKey, r.crop, w)
	}

	fmt.Fprintf(&b, "**Planting Season:** %s\n", list(r.crop.PlantingSeasons))
	fmt.Fprintf(&b, "**Harvest Time:** %s\n\n", harvestWindows(r.crop.HarvestTime))

	if r.Season != "" {
		fmt.Fprintf(&b, "**%s Season Specific Tips:**\n", title(r.Season))
		switch strings.ToLower(r.Season) {
		case "kharif":
			b.WriteString("• Plant after monsoon onset\n")
			b.WriteString("• Ensure good drainage during heavy rains\n")
		case "rabi":
			b.WriteString("• Plant in winter months\n")
			b.WriteString("• Protect from frost damage\n")
		}
		b.WriteString("\n")
	}

	writeBullets(&b, "Field Preparation Steps",
		"Deep plowing (20-25 cm) during summer",
		"Add farmyard manure (10-15 tons/hectare)",
		"Level the field using land leveler",
		"Prepare seedbed with fine tilth",
		"Ensure proper drainage channels",
	)

	return b.String()
}

func (a *Advisor) renderFertilizer(r *request) string {
	name := title(r.cropKey)
	headings := []string{
		fmt.Sprintf("🌿 **%s Fertilizer Management**", name),
		fmt.Sprintf("🧪 **Nutrient Management for %s**", name),
		fmt.Sprintf("💚 **Complete %s Nutrition Guide**", name),
		fmt.Sprintf("🔬 **Scientific %s Fertilization Plan**", name),
	}

	var b strings.Builder
	b.WriteString(headings[a.rnd.Intn(len(headings))] + "\n\n")
	fmt.Fprintf(&b, "*Updated recommendations as of %s*\n\n", a.now().Format("January 2006"))

	f := r.crop.Fertilizer
	b.WriteString("**Recommended Fertilizer Schedule:**\n")
	fmt.Fprintf(&b, "• **Nitrogen (N):** %s\n", doses(f.Nitrogen))
	fmt.Fprintf(&b, "• **Phosphorus (P):** %s\n", doses(f.Phosphorus))
	fmt.Fprintf(&b, "• **Potassium (K):** %s\n\n", doses(f.Potassium))

	var roles []string
	for _, n := range []string{"nitrogen", "phosphorus", "potassium"} {
		if fn, ok := a.kb.NutrientFunction(n); ok {
			roles = append(roles, fmt.Sprintf("%s: %s", title(n), fn))
		}
	}
	if len(roles) > 0 {
		writeBullets(&b, "What Each Nutrient Does", roles...)
	}

	writeBullets(&b, "Application Guidelines",
		"Apply basal dose 2-3 days before sowing",
		"Split nitrogen application for better efficiency",
		"Apply phosphorus as single basal dose",
		"Monitor plant response and adjust accordingly",
		"Conduct soil test before application",
	)
	writeBullets(&b, "Organic Alternatives",
		"Compost: 5-10 tons/hectare",
		"Vermicompost: 2-3 tons/hectare",
		"Biofertilizers: As per manufacturer's recommendation",
		"Green manure: Incorporate before flowering",
	)

	return b.String()
}

func (a *Advisor) renderIrrigation(r *request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💧 **%s Water Management**\n\n", title(r.cropKey))

	b.WriteString("**Irrigation Schedule:**\n")
	for _, note := range r.crop.WaterManagement {
		fmt.Fprintf(&b, "• **%s:** %s\n", title(note.Stage), note.Instruction)
	}
	b.WriteString("\n")

	writeBullets(&b, "General Water Management",
		"Monitor soil moisture regularly",
		"Avoid over-irrigation to prevent diseases",
		"Use mulching to conserve moisture",
		"Consider drip irrigation for water efficiency",
	)

	b.WriteString("**Irrigation Methods:**\n")
	for _, m := range a.kb.IrrigationMethods() {
		fmt.Fprintf(&b, "• **%s** (%s): %s\n", title(m.Name), list(m.Types), list(m.Advantages))
	}
	b.WriteString("\n")

	return b.String()
}

func (a *Advisor) renderPest(r *request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🐛 **%s Pest & Disease Management**\n\n", title(r.cropKey))

	fmt.Fprintf(&b, "**Common Diseases:** %s\n", list(r.crop.Diseases))
	fmt.Fprintf(&b, "**Common Pests:** %s\n\n", list(r.crop.Pests))

	for _, name := range []string{"insects", "diseases"} {
		category, ok := a.kb.PestCategory(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", title(category.Name))
		fmt.Fprintf(&b, "• Identification: %s\n", category.Identification)
		fmt.Fprintf(&b, "• Control Methods: %s\n\n", titledList(category.ControlMethods))
	}

	writeBullets(&b, "Integrated Pest Management",
		"Regular field monitoring",
		"Use resistant varieties when available",
		"Practice crop rotation",
		"Biological control methods",
		"Targeted chemical control when necessary",
	)

	return b.String()
}

func (a *Advisor) renderHarvest(r *request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌾 **%s Harvesting Guide**\n\n", title(r.cropKey))

	fmt.Fprintf(&b, "**Harvest Time:** %s\n", harvestWindows(r.crop.HarvestTime))
	fmt.Fprintf(&b, "**Expected Yield:** %s\n\n", yieldRange(r.crop.Yield))

	writeBullets(&b, "Harvesting Tips",
		"Harvest at proper maturity",
		"Choose appropriate weather conditions",
		"Use proper harvesting equipment",
		"Handle produce carefully to avoid damage",
		"Plan for immediate processing/storage",
	)

	return b.String()
}

func (a *Advisor) renderTiming(r *request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏰ **%s Timing Guide**\n\n", title(r.cropKey))

	fmt.Fprintf(&b, "**Planting Season:** %s\n", list(r.crop.PlantingSeasons))
	fmt.Fprintf(&b, "**Harvest Time:** %s\n\n", harvestWindows(r.crop.HarvestTime))

	b.WriteString("**Critical Timing Points:**\n")
	for _, note := range r.crop.WaterManagement {
		fmt.Fprintf(&b, "• **%s:** %s\n", title(note.Stage), note.Instruction)
	}

	b.WriteString("\n**Growth Duration:** Typically 90-120 days depending on variety\n")
	b.WriteString("**Best Planting Window:** Early in the season for optimal yield\n\n")

	return b.String()
}

func (a *Advisor) renderCropOverview(r *request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌾 **%s Cultivation Overview**\n\n", title(r.cropKey))

	fmt.Fprintf(&b, "**Scientific Name:** %s\n", r.crop.ScientificName)
	fmt.Fprintf(&b, "**Growth Stages:** %s\n\n", list(r.crop.GrowthStages))

	c := r.crop.Conditions
	writeBullets(&b, "Optimal Growing Conditions",
		fmt.Sprintf("Temperature: %s°C", num(c.Temperature.Optimal)),
		fmt.Sprintf("Soil pH: %.1f", c.SoilPH.Optimal),
		fmt.Sprintf("Rainfall: %smm", num(c.Rainfall.GrowingSeason)),
	)

	fmt.Fprintf(&b, "**Expected Yield:** %s\n\n", yieldRange(r.crop.Yield))

	return b.String()
}

func (a *Advisor) renderSoil(*request) string {
	var b strings.Builder
	b.WriteString("🌱 **Soil Management Guide**\n\n")

	writeBullets(&b, "Soil Testing Importance",
		"Test soil pH and nutrient levels",
		"Adjust pH using lime or sulfur",
		"Add organic matter regularly",
		"Monitor salinity levels",
	)
	writeBullets(&b, "Soil Health Improvement",
		"Use cover crops",
		"Practice crop rotation",
		"Minimize tillage",
		"Add compost and organic matter",
	)

	b.WriteString("**Common Soil Types:**\n")
	for _, s := range a.kb.SoilTypes() {
		fmt.Fprintf(&b, "• **%s:** %s. %s\n", title(s.Name), s.Characteristics, s.Management)
	}
	b.WriteString("\n")

	return b.String()
}

func (a *Advisor) renderMarket(*request) string {
	var b strings.Builder
	b.WriteString("📈 **Market Intelligence & Economics**\n\n")

	writeBullets(&b, "Price Factors",
		"Supply and demand dynamics",
		"Weather conditions",
		"Government policies",
		"Global market trends",
	)
	writeBullets(&b, "Value Addition Strategies",
		"Direct marketing to consumers",
		"Processing and packaging",
		"Contract farming",
		"Organic certification",
	)

	fmt.Fprintf(&b, "**Market Channels:** %s\n\n", titledList(a.kb.MarketInsights().MarketChannels))

	return b.String()
}

func (a *Advisor) renderSeasonal(r *request) string {
	var b strings.Builder
	b.WriteString("📅 **Seasonal Farming Calendar**\n\n")

	season, ok := a.kb.Season(r.Season)
	if !ok {
		writeBullets(&b, "General Seasonal Guidelines",
			"Plan activities according to monsoon",
			"Select appropriate crops for season",
			"Prepare for weather challenges",
			"Monitor market prices",
		)
		return b.String()
	}

	fmt.Fprintf(&b, "**%s Season (%s)**\n\n", title(strings.TrimSuffix(season.Key, "_season")), season.Period)

	b.WriteString("**Monthly Activities:**\n")
	for _, m := range season.Activities {
		fmt.Fprintf(&b, "• **%s:** %s\n", title(m.Month), m.Activity)
	}
	fmt.Fprintf(&b, "\n**Major Crops:** %s\n\n", list(season.MajorCrops))

	return b.String()
}

func (a *Advisor) renderSustainable(*request) string {
	var b strings.Builder
	b.WriteString("🌱 **Sustainable Farming Practices**\n\n")

	writeBullets(&b, "Organic Methods",
		"Use compost and organic fertilizers",
		"Practice crop rotation",
		"Encourage beneficial insects",
		"Avoid synthetic pesticides",
	)
	writeBullets(&b, "Soil Conservation",
		"Minimize tillage",
		"Use cover crops",
		"Implement contour farming",
		"Maintain soil organic matter",
	)
	writeBullets(&b, "Water Conservation",
		"Use drip irrigation",
		"Practice mulching",
		"Harvest rainwater",
		"Choose drought-resistant varieties",
	)

	return b.String()
}

func (a *Advisor) renderTechnology(*request) string {
	var b strings.Builder
	b.WriteString("🚀 **Modern Agricultural Technology**\n\n")

	writeBullets(&b, "Precision Agriculture",
		"Use GPS-guided machinery",
		"Implement variable rate application",
		"Monitor with drones and satellites",
		"Use soil sensors for real-time data",
	)
	writeBullets(&b, "Digital Tools",
		"Weather forecasting apps",
		"Crop management software",
		"Market price tracking",
		"Pest identification apps",
	)
	writeBullets(&b, "Automation",
		"Automated irrigation systems",
		"Greenhouse climate control",
		"Robotic harvesting",
		"Smart farm monitoring",
	)

	return b.String()
}

func (a *Advisor) renderWeatherGeneral(*request) string {
	var b strings.Builder
	b.WriteString("🌤️ **Weather-Smart Farming**\n\n")

	writeBullets(&b, "Weather Monitoring",
		"Check daily weather forecasts",
		"Monitor rainfall patterns",
		"Track temperature extremes",
		"Watch for storm warnings",
	)
	writeBullets(&b, "Weather-Based Actions",
		"**Hot Weather:** Increase irrigation frequency",
		"**Cold Weather:** Protect sensitive crops",
		"**Rainy Season:** Ensure proper drainage",
		"**Dry Spell:** Implement water conservation",
	)

	return b.String()
}

func (a *Advisor) renderGeneral(*request) string {
	var b strings.Builder
	b.WriteString("🌾 **General Farming Best Practices**\n\n")

	writeBullets(&b, "Sustainable Farming",
		"Practice crop rotation",
		"Use integrated pest management",
		"Conserve water resources",
		"Maintain soil health",
	)
	writeBullets(&b, "Technology Adoption",
		"Use weather forecasting",
		"Adopt precision agriculture",
		"Leverage mobile apps",
		"Access market information",
	)

	return b.String()
}
