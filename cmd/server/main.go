package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/BerylCAtieno/agriguru-agent/internal/advisor"
	"github.com/BerylCAtieno/agriguru-agent/internal/api"
	"github.com/BerylCAtieno/agriguru-agent/internal/classifier"
	"github.com/BerylCAtieno/agriguru-agent/internal/config"
	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/location"
	"github.com/BerylCAtieno/agriguru-agent/internal/logger"
	"github.com/BerylCAtieno/agriguru-agent/internal/weather"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	clf, closeClassifier, err := newClassifier(cfg.Classifier)
	if err != nil {
		appLog.WithError(err).Error("failed to create classifier", nil)
		os.Exit(1)
	}
	defer closeClassifier()

	kb := knowledge.New()

	var lookup *weather.Lookup
	advisorOpts := []advisor.Option{}
	if cfg.Weather.Seed != 0 {
		src := weather.NewLockedSource(cfg.Weather.Seed)
		lookup = weather.NewLookup(src)
		advisorOpts = append(advisorOpts, advisor.WithChooser(src))
	} else {
		lookup = weather.NewLookup(nil)
	}
	resolver := location.NewResolver(kb, cfg.Cache.RegionTTL, cfg.Cache.CleanupInterval)
	adv := advisor.New(kb, lookup, resolver, advisorOpts...)

	handler := api.NewHandler(adv, lookup, resolver, kb, clf, appLog,
		api.WithMaxUploadBytes(cfg.Server.MaxUploadBytes),
		api.WithMaxBodyBytes(cfg.Server.MaxBodyBytes))
	router := api.NewRouter(handler, appLog)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin", api.HeaderRequestID},
		ExposedHeaders: []string{api.HeaderRequestID},
		MaxAge:         86400,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		appLog.Info("AgriGuru Farming Expert API starting", map[string]interface{}{
			"port":       cfg.Server.Port,
			"classifier": cfg.Classifier.Provider,
			"version":    cfg.App.Version,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		appLog.Info("shutdown signal received", map[string]interface{}{"signal": sig.String()})
	case err := <-serverErrors:
		appLog.WithError(err).Error("server failed", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.WithError(err).Error("error during server shutdown", nil)
	}
	appLog.Info("server stopped", nil)
}

func newClassifier(cfg config.ClassifierConfig) (classifier.Classifier, func(), error) {
	if cfg.Provider != config.ProviderGemini {
		return classifier.Fixed{}, func() {}, nil
	}

	gemini, err := classifier.NewGemini(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	return gemini, func() { _ = gemini.Close() }, nil
}
