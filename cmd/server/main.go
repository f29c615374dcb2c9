package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/craftstats/leaderboard-api/internal/config"
	"github.com/craftstats/leaderboard-api/internal/handlers"
	"github.com/craftstats/leaderboard-api/internal/refresh"
	"github.com/craftstats/leaderboard-api/internal/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	store := roster.NewStore()
	loader := roster.NewLoader(roster.LoaderConfig{
		Path:    cfg.SnapshotPath,
		URL:     cfg.SnapshotURL,
		Timeout: cfg.LoadTimeout,
		Logger:  logger,
	})
	refresher := refresh.New(loader, store, cfg.RefreshInterval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial session load. On failure the service stays up in the visible
	// error state: data endpoints answer 503 until a load succeeds.
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.LoadTimeout)
	if err := refresher.LoadOnce(loadCtx); err != nil {
		sugar.Errorw("Initial roster load failed", "error", err)
	}
	cancelLoad()

	h := handlers.New(handlers.Config{
		Store:  store,
		Logger: logger,
	})

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/api/v1", h.Routes())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("HTTP server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		refresher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("Server exited", "error", err)
	}
	sugar.Info("Shutdown complete")
}
