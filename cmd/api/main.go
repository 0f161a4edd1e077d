package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/srgjo27/shareit/internal/adapter/cache"
	"github.com/srgjo27/shareit/internal/adapter/events"
	"github.com/srgjo27/shareit/internal/adapter/handler"
	"github.com/srgjo27/shareit/internal/adapter/repository/memory"
	"github.com/srgjo27/shareit/internal/adapter/repository/postgres"
	"github.com/srgjo27/shareit/internal/core/ports"
	"github.com/srgjo27/shareit/internal/core/services"
	"github.com/srgjo27/shareit/internal/platform/config"
	"github.com/srgjo27/shareit/internal/platform/database"
	"github.com/srgjo27/shareit/internal/platform/logging"
	"github.com/srgjo27/shareit/internal/platform/tracing"
)

type stores struct {
	users    ports.UserRepository
	items    ports.ItemRepository
	bookings ports.BookingRepository
	comments ports.CommentRepository
	requests ports.RequestRepository
}

func main() {
	envFile := pflag.String("env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	migrateOnly := pflag.Bool("migrate-only", false, "apply database migrations and exit")
	pflag.Parse()

	if err := run(*envFile, *migrateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "shareit-api: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string, migrateOnly bool) error {
	cfg, err := config.LoadAPI(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	slog.SetDefault(logger)

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

	repos, closeStore, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if migrateOnly {
		logger.Info("migrations applied, exiting", slog.String("storage", cfg.Storage))
		return nil
	}

	opts := []services.Option{}

	if cfg.RedisAddr != "" {
		logger.Info("connecting to redis", slog.String("addr", cfg.RedisAddr))

		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		opts = append(opts, services.WithCache(cache.NewBookingCache(rdb, cfg.CacheTTL, logger)))
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaBuffer, logger)
		producer.Start()
		opts = append(opts, services.WithEventPublisher(events.NewKafkaPublisher(producer, cfg.ServiceName, logger)))
		logger.Info("publishing booking events", slog.String("topic", cfg.KafkaTopic))
	} else {
		opts = append(opts, services.WithEventPublisher(events.NewLogPublisher(logger)))
	}

	bookingService := services.NewBookingService(repos.users, repos.items, repos.bookings, logger, opts...)
	userService := services.NewUserService(repos.users, repos.items, repos.requests, bookingService, logger)
	itemService := services.NewItemService(repos.items, repos.users, repos.comments, repos.requests, bookingService, logger)
	commentService := services.NewCommentService(repos.comments, repos.users, repos.items, bookingService, logger)
	requestService := services.NewRequestService(repos.requests, repos.users, repos.items, logger)

	h := handler.NewHandler(bookingService, itemService, userService, commentService, requestService, logger, cfg.RequestTimeout)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr), slog.String("storage", cfg.Storage))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err := <-errCh:
		return fmt.Errorf("server startup failed: %w", err)
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(sctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}

	logger.Info("server exiting")
	return nil
}

func openStores(ctx context.Context, cfg config.API, logger *slog.Logger) (stores, func(), error) {
	if cfg.Storage == "memory" {
		return stores{
			users:    memory.NewUserRepository(),
			items:    memory.NewItemRepository(),
			bookings: memory.NewBookingRepository(),
			comments: memory.NewCommentRepository(),
			requests: memory.NewRequestRepository(),
		}, func() {}, nil
	}

	db, err := database.NewPostgresDB(ctx, cfg.DB, logger)
	if err != nil {
		return stores{}, nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return stores{}, nil, err
	}

	return postgresStores(db), func() { db.Close() }, nil
}

func postgresStores(db *sql.DB) stores {
	return stores{
		users:    postgres.NewUserRepository(db),
		items:    postgres.NewItemRepository(db),
		bookings: postgres.NewBookingRepository(db),
		comments: postgres.NewCommentRepository(db),
		requests: postgres.NewRequestRepository(db),
	}
}
