package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homicide-insights-go/internal/config"
	"homicide-insights-go/internal/dashboard"
	"homicide-insights-go/internal/dataset"
	"homicide-insights-go/internal/logger"
	"homicide-insights-go/internal/observability"
	"homicide-insights-go/internal/server"
)

func main() {
	_ = godotenv.Load() // loads .env

	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("failed to load config")
	}

	log := logger.New()
	log.WithField("service", "homicide-insights-go").Info("starting service")

	if cfg.DatasetURL != "" {
		if _, statErr := os.Stat(cfg.DatasetPath); os.IsNotExist(statErr) {
			log.WithField("url", cfg.DatasetURL).Info("fetching dataset")
			if err := dataset.Fetch(cfg.DatasetURL, cfg.DatasetPath); err != nil {
				log.WithError(err).Fatal("failed to fetch dataset")
			}
		}
	}

	records, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}
	summary := dataset.Summarize(records)
	log.WithFields(map[string]interface{}{
		"records":     summary.TotalRecords,
		"years":       len(summary.Years),
		"provinces":   summary.Provinces,
		"geo_located": summary.GeoLocated,
	}).Info("dataset ready")

	metrics := observability.NewMetrics()
	metrics.RecordsLoaded.Set(float64(summary.TotalRecords))

	ctrl := dashboard.New(records, dataset.CantonProvinceIndex(records),
		cfg.RefreshDebounce, nil, log, metrics)

	router := server.SetupRouter(ctrl, summary, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}
}
