package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mood-insights-go/internal/api"
	"mood-insights-go/internal/config"
	"mood-insights-go/internal/dataset"
	"mood-insights-go/internal/insights"
	"mood-insights-go/internal/logger"
	"mood-insights-go/internal/source"
	"mood-insights-go/internal/taxonomy"
)

func main() {
	cfg := config.Load() // loads .env

	log := logger.NewFromOptions(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Output:      os.Stdout,
	})
	log.WithField("service", "mood-insights-go").Info("starting service")
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	eng := insights.New(taxonomy.Default())
	srv := &api.Server{Engine: eng, Log: log}

	if cfg.DatasetPath != "" {
		log.WithField("dataset_path", cfg.DatasetPath).Info("loading dataset summary")
		rep, err := dataset.LoadAndSummarize(cfg.DatasetPath, eng, log)
		if err != nil {
			log.WithError(err).Fatal("failed to load dataset summary")
		}
		srv.Dataset = &rep
		log.WithField("observations", rep.Overall.ObservationCount).Info("dataset summary loaded")
	}
	if cfg.ObservationsURL != "" || os.Getenv("USE_MOCK_SOURCE") == "true" {
		srv.Source = source.New(cfg.ObservationsURL, cfg.FetchTimeout, log)
	}

	httpSrv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(cfg.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", httpSrv.Addr).Info("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
