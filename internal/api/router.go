package api

import (
	"github.com/BerylCAtieno/agriguru-agent/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route and the shared middleware onto a gin engine.
func NewRouter(h *Handler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = h.maxUpload
	router.Use(RequestID(), RequestLogging(log), Metrics(), Recovery(log))

	router.GET("/", h.Index)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/expert-advice", h.ExpertAdvice)
	api.POST("/analyze-crop", h.AnalyzeCrop)
	api.POST("/weather-advice", h.WeatherAdvice)
	api.GET("/market-insights", h.MarketInsights)
	api.GET("/seasonal-calendar", h.SeasonalCalendar)
	api.GET("/soil-recommendations", h.SoilRecommendations)

	return router
}
