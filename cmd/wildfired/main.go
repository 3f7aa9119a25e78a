package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/artifact"
	"wildfire-risk/internal/cfg"
	"wildfire-risk/internal/infer"
	"wildfire-risk/internal/metrics"
	"wildfire-risk/internal/server"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	c, err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	mw := metrics.NewWrapper(m)

	svc := loadService(c, mw)

	startMetricsServer(ctx, c)

	srv := server.New(svc, c.ListenPort)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("prediction server failed")
			cancel()
		}
	}()

	waitForShutdown(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("prediction server shutdown failed")
	}
	log.Info().Msg("stopped")
}

// loadService opens the artifact store and builds an inference service from
// the latest trained model. A missing model is not fatal: the server starts
// anyway and reports unavailable until a model is trained.
func loadService(c cfg.Settings, mw *metrics.Wrapper) *infer.Service {
	store, err := artifact.Open(c.DataPath)
	if err != nil {
		log.Warn().Err(err).Msg("artifact store unavailable, serving without a model")
		return nil
	}
	defer store.Close()

	art, err := store.Latest()
	if err != nil {
		if errors.Is(err, artifact.ErrNoArtifact) {
			log.Warn().Msg("no trained model found, serving without a model")
		} else {
			log.Error().Err(err).Msg("failed to load latest model")
		}
		return nil
	}

	svc, err := infer.New(art, mw)
	if err != nil {
		log.Error().Err(err).Msg("failed to build inference service")
		return nil
	}

	mw.ModelAUCSet(art.AUC)
	mw.ModelAgeSet(time.Since(art.CreatedAt).Seconds())
	log.Info().
		Str("version", art.Version).
		Float64("auc", art.AUC).
		Int("trainSamples", art.TrainSamples).
		Int("testSamples", art.TestSamples).
		Msg("model loaded")
	return svc
}

// startMetricsServer starts the Prometheus metrics HTTP server.
func startMetricsServer(ctx context.Context, c cfg.Settings) {
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		mux.Handle("/metrics", promhttp.Handler())

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", c.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		go func() {
			<-ctx.Done()
			if err := srv.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("failed to shutdown metrics server")
			}
		}()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// waitForShutdown blocks until a shutdown signal arrives or the context is
// canceled.
func waitForShutdown(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info().Msg("shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("context canceled")
	}
	log.Info().Msg("shutting down gracefully...")
}
