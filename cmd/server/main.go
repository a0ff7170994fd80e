package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tripmate/internal/amqp"
	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
	"github.com/mmynk/tripmate/pkg/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}

func run(cfg *config.Config) error {
	trip, err := config.LoadTrip(cfg.TripFile)
	if err != nil {
		return fmt.Errorf("failed to load trip: %w", err)
	}
	slog.Info("Trip loaded",
		"trip", trip.Name,
		"city", trip.City,
		"travelers", len(trip.Travelers),
		"rate", trip.ExchangeRate.String(),
	)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	explorer := genai.NewExplorer(newGenerator(cfg), trip.City, cfg.AICacheTTL)

	handler, err := newRouter(cfg.StaticPath, store, trip, explorer)
	if err != nil {
		return err
	}

	var publisher *amqp.Client
	if cfg.AMQPEnabled() {
		publisher, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to initialize AMQP client: %w", err)
		}
		defer publisher.Close()
	} else {
		slog.Info("AMQP disabled - no AMQP_URL provided")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Watch streams only end when their request context does.
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect streaming)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", "http://localhost"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if publisher != nil {
		g.Go(func() error {
			return amqp.Forward(ctx, store, publisher)
		})
	}

	return g.Wait()
}

func newGenerator(cfg *config.Config) genai.Generator {
	if !cfg.AIEnabled() {
		slog.Warn("Generative AI disabled - no AI_API_KEY provided")
		return genai.Disabled{}
	}
	slog.Info("Generative AI enabled", "model", cfg.AIModel, "rpm", cfg.AIRequestsPerMinute)
	return genai.NewOpenAIClient(genai.Options{
		APIKey:            cfg.AIAPIKey,
		BaseURL:           cfg.AIBaseURL,
		Model:             cfg.AIModel,
		Timeout:           cfg.AITimeout,
		RequestsPerMinute: cfg.AIRequestsPerMinute,
	})
}
