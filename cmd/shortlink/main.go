package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortlink/internal/config"
	del "shortlink/internal/http-server/handlers/link/delete"
	"shortlink/internal/http-server/handlers/link/list"
	"shortlink/internal/http-server/handlers/link/save"
	"shortlink/internal/http-server/handlers/link/update"
	"shortlink/internal/http-server/handlers/redirect"
	mwAuth "shortlink/internal/http-server/middleware/auth"
	mwLogger "shortlink/internal/http-server/middleware/logger"
	mwMetrics "shortlink/internal/http-server/middleware/metrics"
	"shortlink/internal/lib/api/random"
	"shortlink/internal/lib/jwt"
	"shortlink/internal/lib/logger/slogcute"
	linkservice "shortlink/internal/service/link"
	"shortlink/internal/storage/instrumented"
	"shortlink/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := SetupLogger(cfg.Env)

	log.Info("Starting Shortlink Service", slog.String("env", cfg.Env))

	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	pemPublicKey, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		log.Error("Failed to read JWT public key", slog.String("error", err.Error()))
		os.Exit(1)
	}

	validator, err := jwt.New(string(pemPublicKey))
	if err != nil {
		log.Error("Failed to initialize JWT validator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	service := linkservice.New(log, instrumented.New(storage), random.New(nil))

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwMetrics.New())

	// Public read path: anyone may follow a short link.
	router.Get("/l/{shortCode}", redirect.New(log, service))

	router.Handle("/metrics", promhttp.Handler())

	// Mutation and listing paths require an authenticated principal.
	router.Route("/api/links", func(r chi.Router) {
		r.Use(mwAuth.New(log, validator))

		r.Post("/", save.New(log, service))
		r.Get("/", list.New(log, service))
		r.Put("/{id}", update.New(log, service))
		r.Delete("/{id}", del.New(log, service))
	})

	log.Info("starting HTTP server", slog.String("addr", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPServer.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPServer.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPServer.IdleTimeout) * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-done
	log.Info("stopping HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTPServer.Timeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop HTTP server", slog.String("error", err.Error()))
		return
	}

	log.Info("HTTP server stopped")
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = SetupCuteSlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func SetupCuteSlog() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
