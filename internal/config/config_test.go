package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 16, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 8, cfg.Postgres.MaxIdleConns)

	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "users.registered", cfg.Kafka.Topic)
	assert.Equal(t, 10*time.Millisecond, cfg.Kafka.BatchTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	os.Clearenv()
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("POSTGRES_DB=wardrobe\nAPP_LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "wardrobe", cfg.Postgres.DB)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := Load("nonexistent.env")
	assert.Error(t, err)
}

func TestPostgresConfig_URLs(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DB: "wardrobe"}

	assert.Equal(t, "postgres://app:p%40ss@db:5432/wardrobe?sslmode=disable", cfg.DSN())
	assert.Equal(t, "pgx5://app:p%40ss@db:5432/wardrobe?sslmode=disable", cfg.MigrationURL())
}
