package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	"github.com/sbilibin2017/gw-wardrobe/docs"
	"github.com/sbilibin2017/gw-wardrobe/internal/config"
	"github.com/sbilibin2017/gw-wardrobe/internal/handlers"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/metrics"
	"github.com/sbilibin2017/gw-wardrobe/internal/middlewares"
	"github.com/sbilibin2017/gw-wardrobe/internal/migrations"
	"github.com/sbilibin2017/gw-wardrobe/internal/repositories"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const metricsNamespace = "wardrobe"

// @title gw-wardrobe API
// @version 1.0.0
// @description User registration and wardrobe service
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, migrations, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(cfg.Postgres.MigrationURL()); err != nil {
		return err
	}

	gormDB, err := repositories.NewGormDB(db)
	if err != nil {
		return fmt.Errorf("gorm initialization error: %w", err)
	}

	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := newKafkaWriter(cfg.Kafka)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	provider := metrics.NewProvider(metricsNamespace)
	docs.SwaggerInfo.Host = cfg.App.Addr()

	srv := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      newRouter(db, gormDB, kafkaWriter, provider),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds the registration event writer. Events are written one at a
// time on the request path, so the batch is flushed after BatchTimeout instead of
// kafka-go's one second default.
func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// kafkaWriter may be nil.
func newRouter(db *sqlx.DB, gormDB *gorm.DB, kafkaWriter services.KafkaWriter, provider *metrics.Provider) http.Handler {
	// Initialize repositories
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userClothesWriteRepo := repositories.NewUserClothesWriteRepository(db, middlewares.GetTxFromContext)
	userClothesReadRepo := repositories.NewUserClothesReadRepository(gormDB)
	clothesRepo := repositories.NewClothesRepository(gormDB)

	// Initialize services
	registrationService := services.NewRegistrationService(userWriteRepo, kafkaWriter)
	wardrobeService := services.NewWardrobeService(userClothesReadRepo, clothesRepo, userClothesWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(provider.Middleware)

	handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(registrationService, provider))
	handlers.RegisterGetUserHandler(r, handlers.NewGetUserHandler(wardrobeService))
	handlers.RegisterCreateClothesHandler(r, handlers.NewCreateClothesHandler(wardrobeService))
	handlers.RegisterGetClothesHandler(r, handlers.NewGetClothesHandler(wardrobeService))

	// Association changes run in one transaction per request
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		handlers.RegisterUserClothesHandlers(r,
			handlers.NewLinkClothesHandler(wardrobeService),
			handlers.NewUnlinkClothesHandler(wardrobeService),
		)
	})

	r.Handle("/metrics", provider.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
