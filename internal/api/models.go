package api

import "github.com/BerylCAtieno/agriguru-agent/internal/models"

// Request bodies
type ExpertAdviceRequest struct {
	Query    string  `json:"query"`
	Crop     *string `json:"crop"`
	Location *string `json:"location"`
	Season   *string `json:"season"`
}

type WeatherAdviceRequest struct {
	Location *string `json:"location"`
	Crop     *string `json:"crop"`
}

// Response bodies
type ErrorResponse struct {
	Error string `json:"error"`
}

type IndexResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
	Features  []string `json:"features"`
}

type ExpertAdviceResponse struct {
	Advice  string               `json:"advice"`
	Context models.AdviceContext `json:"context"`
	Success bool                 `json:"success"`
}

type AnalyzeCropResponse struct {
	DiseaseAnalysis models.Diagnosis `json:"disease_analysis"`
	ExpertAdvice    string           `json:"expert_advice"`
	CropType        string           `json:"crop_type"`
	Success         bool             `json:"success"`
}

type WeatherAdviceResponse struct {
	WeatherData models.WeatherSample `json:"weather_data"`
	SoilData    models.SoilReport    `json:"soil_data"`
	Advice      string               `json:"advice"`
	Location    string               `json:"location"`
	Success     bool                 `json:"success"`
}

type MarketInsightsResponse struct {
	MarketData models.MarketQuote `json:"market_data"`
	Advice     string             `json:"advice"`
	Crop       string             `json:"crop"`
	Location   string             `json:"location"`
	Success    bool               `json:"success"`
}

type SeasonalCalendarResponse struct {
	SeasonalAdvice string `json:"seasonal_advice"`
	Season         string `json:"season"`
	Location       string `json:"location"`
	Success        bool   `json:"success"`
}

type SoilRecommendationsResponse struct {
	SoilData models.SoilReport `json:"soil_data"`
	Advice   string            `json:"advice"`
	Location string            `json:"location"`
	Success  bool              `json:"success"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
