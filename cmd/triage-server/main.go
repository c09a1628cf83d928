package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ticket-triage/internal/common/config"
	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/common/observability"
	"ticket-triage/internal/models"
	"ticket-triage/internal/triage/dataset"
	"ticket-triage/internal/triage/presenter"
	"ticket-triage/internal/triage/scorer"
	"ticket-triage/internal/web"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting triage server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
		defer zapLog.Sync()
		log = logger.NewZapAdapter(zapLog)
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Ticket dataset ---
	var tickets []models.Ticket
	if cfg.Triage.DatasetPath != "" {
		tickets, err = dataset.LoadFromFile(cfg.Triage.DatasetPath)
		if err != nil {
			zapLog.Fatal("dataset load failed",
				zap.String("path", cfg.Triage.DatasetPath),
				zap.Error(err),
			)
		}
		zapLog.Info("loaded ticket dataset from file",
			zap.String("path", cfg.Triage.DatasetPath),
			zap.Int("tickets", len(tickets)),
		)
	} else {
		tickets = dataset.Default()
		zapLog.Info("using built-in sample dataset", zap.Int("tickets", len(tickets)))
	}

	// Malformed ticket records fail fast at startup, not on first POST.
	for _, t := range tickets {
		if err := t.Validate(); err != nil {
			zapLog.Fatal("invalid ticket record", zap.Error(err))
		}
	}

	// --- Triage pipeline ---
	sc := scorer.New(log)
	pres := presenter.New(sc, tickets, log)

	srv, err := web.New(pres, cfg, obs, log)
	if err != nil {
		zapLog.Fatal("web server init failed", zap.Error(err))
	}

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Web Server ---
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("Triage web server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("web server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down web server", zap.Error(err))
	}

	zapLog.Info("Triage server stopped gracefully")
}
