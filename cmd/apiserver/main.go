// API server entry point for FilingDesk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	appfiling "github.com/turtacn/FilingDesk/internal/application/filing"
	"github.com/turtacn/FilingDesk/internal/config"
	domainfiling "github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/database/postgres"
	"github.com/turtacn/FilingDesk/internal/infrastructure/database/postgres/repositories"
	redisdb "github.com/turtacn/FilingDesk/internal/infrastructure/database/redis"
	"github.com/turtacn/FilingDesk/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/FilingDesk/internal/infrastructure/rendering/pdf"
	miniostore "github.com/turtacn/FilingDesk/internal/infrastructure/storage/minio"
	httpserver "github.com/turtacn/FilingDesk/internal/interfaces/http"
	"github.com/turtacn/FilingDesk/internal/interfaces/http/handlers"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger.Info("starting FilingDesk API server", logging.Int("port", cfg.Server.Port))

	ctx := context.Background()

	// PostgreSQL is the system of record; a failure here is fatal.
	pg, err := postgres.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("postgres connection failed", logging.Err(err))
	}
	defer pg.Close()

	if err := postgres.RunMigrations(postgres.BuildDSN(cfg.Database), "file://"+cfg.Database.MigrationPath); err != nil {
		logger.Fatal("database migration failed", logging.Err(err))
	}

	// Redis, MinIO, and Kafka are optional at startup: the orchestrator
	// degrades to uncached fees, unsaved artifacts, and unannounced events.
	var feeCache appfiling.FeeCache
	redisClient, err := redisdb.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, fee caching disabled", logging.Err(err))
	} else {
		defer redisClient.Close()
		feeCache = redisdb.NewFeeCache(redisClient, cfg.Redis.DefaultTTL, cfg.Redis.KeyPrefix, logger)
	}

	var artifacts appfiling.ArtifactStore
	var artifactHandler *handlers.ArtifactHandler
	minioClient, err := miniostore.NewClient(ctx, cfg.MinIO, logger)
	if err != nil {
		logger.Warn("minio unavailable, artifact storage disabled", logging.Err(err))
	} else {
		store := miniostore.NewArtifactStore(minioClient)
		artifacts = store
		artifactHandler = handlers.NewArtifactHandler(store)
	}

	producer := kafka.NewProducer(cfg.Kafka, logger)
	defer producer.Close()

	repo := repositories.NewFilingRepository(pg.Pool(), logger)
	records := domainfiling.NewService(repo, producer, logger)

	set := documents.NewSet(cfg.Firm)
	renderer := pdf.NewRenderer(cfg.Firm)
	orchestrator := appfiling.NewOrchestrator(records, set, renderer, artifacts, feeCache, producer, logger)

	checks := map[string]handlers.HealthChecker{"postgres": pg}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	if minioClient != nil {
		checks["minio"] = minioClient
	}

	metrics := prometheus.NewMetrics()
	router := httpserver.NewRouter(httpserver.RouterConfig{
		FilingHandler:   handlers.NewFilingHandler(records, metrics),
		DocumentHandler: handlers.NewDocumentHandler(orchestrator, metrics),
		ArtifactHandler: artifactHandler,
		HealthHandler:   handlers.NewHealthHandler(checks),
		Logger:          logger,
		Metrics:         metrics,
		Mode:            cfg.Server.Mode,
	})

	server := httpserver.NewServer(cfg.Server, router, logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("http server error", logging.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")
	if err := server.Stop(context.Background()); err != nil {
		logger.Error("http server shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}

// loadConfig reads the config file when present and falls back to pure
// environment configuration for containerised deployments.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
