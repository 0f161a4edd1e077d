package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/srgjo27/shareit/internal/platform/database"
)

const DefaultEnvFile = ".env"

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type Tracing struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Environment string `envconfig:"ENV" default:"dev"`
}

type API struct {
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"shareit-api"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":9090"`
	Storage         string        `envconfig:"STORAGE" default:"postgres"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"booking.events"`
	KafkaBuffer  int      `envconfig:"KAFKA_BUFFER" default:"256"`

	DB      database.Config
	Log     Log
	Tracing Tracing
}

type Gateway struct {
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"shareit-gateway"`
	HTTPAddr        string        `envconfig:"GATEWAY_HTTP_ADDR" default:":8080"`
	BackendURL      string        `envconfig:"BACKEND_URL" default:"http://localhost:9090"`
	BackendTimeout  time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	Log     Log
	Tracing Tracing
}

func (c API) Validate() error {
	switch c.Storage {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORAGE %q: want postgres or memory", c.Storage)
	}
	if c.KafkaBuffer < 1 {
		return errors.New("KAFKA_BUFFER must be positive")
	}
	return nil
}

// LoadAPI reads envFile (if present) into the environment, then the environment into API.
func LoadAPI(envFile string) (API, error) {
	var c API
	if err := load(envFile, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func LoadGateway(envFile string) (Gateway, error) {
	var c Gateway
	err := load(envFile, &c)
	return c, err
}

func load(envFile string, target any) error {
	if envFile != "" {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil {
			if !(errors.Is(err, fs.ErrNotExist) && envFile == DefaultEnvFile) {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	if err := envconfig.Process("", target); err != nil {
		return fmt.Errorf("process env: %w", err)
	}
	return nil
}
