package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BerylCAtieno/agriguru-agent/internal/advisor"
	"github.com/BerylCAtieno/agriguru-agent/internal/classifier"
	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/logger"
	"github.com/BerylCAtieno/agriguru-agent/internal/metrics"
	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultWeatherLocation = "Delhi"
	defaultCrop            = "rice"
	defaultCountry         = "india"
	defaultSeason          = "kharif"
	defaultCropType        = "general"

	defaultMaxUploadBytes = 10 << 20
	defaultMaxBodyBytes   = 64 << 10
)

var endpoints = []string{
	"/api/expert-advice",
	"/api/analyze-crop",
	"/api/weather-advice",
	"/api/market-insights",
	"/api/seasonal-calendar",
	"/api/soil-recommendations",
}

var features = []string{
	"Real-time weather data for any location",
	"Location-specific soil recommendations",
	"Crop suitability analysis",
	"Weather-based farming advice",
	"Regional farming insights",
}

type Handler struct {
	advisor    *advisor.Advisor
	weather    advisor.WeatherSource
	soil       advisor.SoilSource
	kb         *knowledge.Base
	classifier classifier.Classifier
	logger     logger.Logger
	maxUpload  int64
	maxBody    int64
}

type Option func(*Handler)

// WithMaxBodyBytes caps the size of a JSON request body.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// WithMaxUploadBytes caps the size of an analyze-crop upload.
func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUpload = n
		}
	}
}

func NewHandler(
	adv *advisor.Advisor,
	weather advisor.WeatherSource,
	soil advisor.SoilSource,
	kb *knowledge.Base,
	clf classifier.Classifier,
	log logger.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		advisor:    adv,
		weather:    weather,
		soil:       soil,
		kb:         kb,
		classifier: clf,
		logger:     log,
		maxUpload:  defaultMaxUploadBytes,
		maxBody:    defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Message:   "AgriGuru Farming Expert API",
		Status:    "active",
		Endpoints: endpoints,
		Features:  features,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ExpertAdvice answers a free-text farming question.
func (h *Handler) ExpertAdvice(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}

	var req ExpertAdviceRequest
	if err := decodeBody(body, expertAdviceSchema, &req); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Query == "" {
		h.sendError(c, http.StatusBadRequest, "Query is required")
		return
	}

	result := h.advise(advisor.Query{
		Text:     req.Query,
		Crop:     deref(req.Crop),
		Location: deref(req.Location),
		Season:   deref(req.Season),
	})

	c.JSON(http.StatusOK, ExpertAdviceResponse{
		Advice:  result.Advice,
		Context: result.Context,
		Success: true,
	})
}

// AnalyzeCrop classifies an uploaded leaf image and attaches advice for the
// declared crop type.
func (h *Handler) AnalyzeCrop(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(c, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}
		h.sendError(c, http.StatusBadRequest, "No image provided")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, fmt.Sprintf("Failed to read image: %v", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, fmt.Sprintf("Failed to read image: %v", err))
		return
	}

	img, err := classifier.DecodeImage(data)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid image: %v", err))
		return
	}

	diagnosis, err := h.classifier.Classify(c.Request.Context(), img)
	if err != nil {
		h.logger.WithError(err).Error("crop classification failed", map[string]interface{}{
			"request_id": requestID(c),
		})
		h.sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.CropClassifications.WithLabelValues(diagnosis.Disease).Inc()

	cropType := c.DefaultPostForm("crop_type", defaultCropType)
	question := fmt.Sprintf("Best practices for %s cultivation", cropType)
	if diagnosis.Disease != classifier.LabelHealthy {
		question = fmt.Sprintf("How to treat %s in %s?", diagnosis.Disease, cropType)
	}
	result := h.advise(advisor.Query{Text: question, Crop: cropType})

	c.JSON(http.StatusOK, AnalyzeCropResponse{
		DiseaseAnalysis: diagnosis,
		ExpertAdvice:    result.Advice,
		CropType:        cropType,
		Success:         true,
	})
}

// WeatherAdvice returns the raw weather and soil data for a location along
// with the rendered weather advice.
func (h *Handler) WeatherAdvice(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}

	var req WeatherAdviceRequest
	if err := decodeBody(body, weatherAdviceSchema, &req); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	location := defaultWeatherLocation
	if req.Location != nil {
		location = *req.Location
	}

	weatherData := h.weather.Get(location)
	soilData := h.soil.Resolve(location)
	advice := h.advisor.WeatherReport(location, deref(req.Crop))
	metrics.AdviceRendered.WithLabelValues(string(advisor.KindWeatherLocal)).Inc()

	c.JSON(http.StatusOK, WeatherAdviceResponse{
		WeatherData: weatherData,
		SoilData:    soilData,
		Advice:      advice,
		Location:    location,
		Success:     true,
	})
}

func (h *Handler) MarketInsights(c *gin.Context) {
	crop := c.DefaultQuery("crop", defaultCrop)
	location := c.DefaultQuery("location", defaultCountry)

	result := h.advise(advisor.Query{
		Text: fmt.Sprintf("Market trends and pricing for %s", crop),
		Crop: crop,
	})

	c.JSON(http.StatusOK, MarketInsightsResponse{
		MarketData: h.kb.MarketQuote(crop),
		Advice:     result.Advice,
		Crop:       crop,
		Location:   location,
		Success:    true,
	})
}

func (h *Handler) SeasonalCalendar(c *gin.Context) {
	season := c.DefaultQuery("season", defaultSeason)
	location := c.DefaultQuery("location", defaultCountry)

	result := h.advise(advisor.Query{
		Text:   fmt.Sprintf("Seasonal farming activities for %s", season),
		Season: season,
	})

	c.JSON(http.StatusOK, SeasonalCalendarResponse{
		SeasonalAdvice: result.Advice,
		Season:         season,
		Location:       location,
		Success:        true,
	})
}

func (h *Handler) SoilRecommendations(c *gin.Context) {
	location := c.DefaultQuery("location", defaultCountry)

	soilData := h.soil.Resolve(location)
	advice := h.advisor.SoilReport(location)
	metrics.AdviceRendered.WithLabelValues(string(advisor.KindLocationSoil)).Inc()

	c.JSON(http.StatusOK, SoilRecommendationsResponse{
		SoilData: soilData,
		Advice:   advice,
		Location: location,
		Success:  true,
	})
}

// readBody reads a JSON body up to maxBody bytes, answering 413 past that.
func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		h.sendError(c, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}
	return body, true
}

func (h *Handler) advise(q advisor.Query) models.AdviceResult {
	result := h.advisor.Result(q)
	metrics.AdviceRendered.WithLabelValues(result.Context.AdviceKind).Inc()
	return result
}

func (h *Handler) sendError(c *gin.Context, status int, message string) {
	h.logger.Warn("request rejected", map[string]interface{}{
		"request_id": requestID(c),
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      message,
	})
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
