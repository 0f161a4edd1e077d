package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:""`
	DBName          string        `envconfig:"DB_NAME" default:"shareit"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnectRetries  int           `envconfig:"DB_CONNECT_RETRIES" default:"10"`
	RetryDelay      time.Duration `envconfig:"DB_RETRY_DELAY" default:"2s"`
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// NewPostgresDB opens the pool and pings until the database answers or the
// retries run out.
func NewPostgresDB(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	maxRetries := cfg.ConnectRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	for i := 1; i <= maxRetries; i++ {
		logger.InfoContext(ctx, "connecting to database",
			slog.Int("attempt", i),
			slog.Int("max_attempts", maxRetries),
			slog.String("host", cfg.Host),
		)

		if err = db.PingContext(ctx); err == nil {
			logger.InfoContext(ctx, "database connected", slog.String("database", cfg.DBName))
			return db, nil
		}

		if i == maxRetries {
			break
		}

		logger.WarnContext(ctx, "database not ready yet",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", cfg.RetryDelay),
		)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("connect database after %d attempts: %w", maxRetries, err)
}
