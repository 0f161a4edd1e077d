package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/srgjo27/shareit/internal/gateway"
	"github.com/srgjo27/shareit/internal/platform/config"
	"github.com/srgjo27/shareit/internal/platform/logging"
	"github.com/srgjo27/shareit/internal/platform/tracing"
)

func main() {
	envFile := pflag.String("env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	pflag.Parse()

	if err := run(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "shareit-gateway: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	cfg, err := config.LoadGateway(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.Environment)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(tctx)
	}()

	fwd, err := gateway.NewForwarder(cfg.BackendURL, cfg.BackendTimeout, logger)
	if err != nil {
		return err
	}

	router, err := gateway.NewRouter(fwd, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway starting", slog.String("addr", cfg.HTTPAddr), slog.String("backend", cfg.BackendURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gateway")
	case err := <-errCh:
		return fmt.Errorf("gateway startup failed: %w", err)
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(sctx); err != nil {
		return fmt.Errorf("gateway forced to shutdown: %w", err)
	}

	logger.Info("gateway exiting")
	return nil
}
