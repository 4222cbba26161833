// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads at startup.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

// AppConfig configures the HTTP server and logging.
type AppConfig struct {
	Host            string        `env:"APP_HOST" envDefault:"localhost"`
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	ReadTimeout     time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr is the listen address of the HTTP server.
func (c AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// PostgresConfig configures the database connection pool.
type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string `env:"POSTGRES_USER" envDefault:"user"`
	Password     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	DB           string `env:"POSTGRES_DB" envDefault:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`
}

// DSN is the connection URL used by the pgx driver.
func (c PostgresConfig) DSN() string {
	return c.url("postgres")
}

// MigrationURL is the connection URL used by golang-migrate's pgx/v5 driver.
func (c PostgresConfig) MigrationURL() string {
	return c.url("pgx5")
}

func (c PostgresConfig) url(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// KafkaConfig configures the registration event publisher.
// Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers      []string      `env:"KAFKA_BROKERS" envSeparator:","`
	Topic        string        `env:"KAFKA_TOPIC" envDefault:"users.registered"`
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms"` // flush deadline for a partial batch
}

// Enabled reports whether any broker is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load reads the optional env file at path and then parses the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}
	return &cfg, nil
}
