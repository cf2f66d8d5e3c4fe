package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stevenkilzer/calc/internal/server"
	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/constants"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	addr := os.Getenv("CALC_LISTEN_ADDR")
	if addr == "" {
		addr = constants.DefaultServerAddress
	}

	horizon := constants.DefaultHorizonMonths
	if raw := os.Getenv("CALC_HORIZON_MONTHS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logger.Fatal("invalid CALC_HORIZON_MONTHS",
				zap.String("op", "main"),
				zap.String("value", raw),
			)
		}
		horizon = parsed
	}

	repo, cleanup, err := buildRepository(logger)
	if err != nil {
		logger.Fatal("failed to initialize project store",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer cleanup()

	handler := server.NewHandler(logger, repo, server.Options{
		HorizonMonths: horizon,
		Version:       version,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("address", addr),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case sig := <-stop:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// buildRepository selects Redis persistence when CALC_REDIS_ADDR is set and
// falls back to the in-memory store otherwise.
func buildRepository(logger *zap.Logger) (store.ProjectRepository, func(), error) {
	redisAddr := os.Getenv("CALC_REDIS_ADDR")
	if redisAddr == "" {
		logger.Info("using in-memory project store",
			zap.String("op", "main"),
		)
		return store.NewMemoryStore(), func() {}, nil
	}

	redisStore := store.NewRedisStore(redisAddr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisStore.Ping(ctx); err != nil {
		return nil, nil, fmt.Errorf("redis at %s unreachable: %w", redisAddr, err)
	}

	logger.Info("using redis project store",
		zap.String("op", "main"),
		zap.String("address", redisAddr),
	)
	return redisStore, func() { _ = redisStore.Close() }, nil
}
