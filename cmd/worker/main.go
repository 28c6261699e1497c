// Background worker entry point for FilingDesk.  The worker consumes the
// platform's event topics and keeps the derived state that lives outside the
// database honest: cached fee breakdowns are invalidated when a filing
// changes, and document announcements are logged for the audit trail.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/turtacn/FilingDesk/internal/config"
	redisdb "github.com/turtacn/FilingDesk/internal/infrastructure/database/redis"
	"github.com/turtacn/FilingDesk/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
)

const (
	defaultConfigPath = "configs/config.yaml"
	healthAddr        = ":8081"
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	topicFilter := flag.String("topics", "", "comma-separated list of topics to consume (default: all)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger = logger.Named("worker")
	logger.Info("starting FilingDesk worker", logging.String("group_id", cfg.Kafka.GroupID))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The fee cache is the worker's only mutable dependency; without Redis
	// there is nothing to invalidate and the worker degrades to logging.
	var feeCache *redisdb.FeeCache
	redisClient, err := redisdb.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, cache invalidation disabled", logging.Err(err))
	} else {
		defer redisClient.Close()
		feeCache = redisdb.NewFeeCache(redisClient, cfg.Redis.DefaultTTL, cfg.Redis.KeyPrefix, logger)
	}

	consumer := kafka.NewConsumer(cfg.Kafka, logger)
	for _, topic := range selectTopics(*topicFilter) {
		switch topic {
		case kafka.TopicFilingUpdated, kafka.TopicFeesRecomputed:
			consumer.Subscribe(topic, invalidateFeeCache(feeCache, logger))
		default:
			consumer.Subscribe(topic, logEvent(logger))
		}
	}

	go serveHealth(logger)

	consumer.Run(ctx)
	logger.Info("worker stopped")
}

// invalidateFeeCache drops the cached breakdown for the filing named by the
// event so the next read reflects the updated record.
func invalidateFeeCache(feeCache *redisdb.FeeCache, logger logging.Logger) kafka.Handler {
	return func(ctx context.Context, env *kafka.EventEnvelope) error {
		logger.Info("filing changed",
			logging.String("topic", env.Topic),
			logging.String("docket_number", env.AggregateID))
		if feeCache != nil && env.AggregateID != "" {
			feeCache.Invalidate(ctx, env.AggregateID)
		}
		return nil
	}
}

// logEvent records an event for the audit trail without further action.
func logEvent(logger logging.Logger) kafka.Handler {
	return func(_ context.Context, env *kafka.EventEnvelope) error {
		logger.Info("event received",
			logging.String("topic", env.Topic),
			logging.String("event_id", env.EventID),
			logging.String("docket_number", env.AggregateID))
		return nil
	}
}

// selectTopics applies the --topics filter against the known topic registry.
func selectTopics(filter string) []string {
	if filter == "" {
		return kafka.AllTopics
	}
	var topics []string
	for _, t := range strings.Split(filter, ",") {
		t = strings.TrimSpace(t)
		if kafka.IsKnownTopic(t) {
			topics = append(topics, t)
		}
	}
	return topics
}

// serveHealth exposes a liveness endpoint for orchestration probes.
func serveHealth(logger logging.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if err := http.ListenAndServe(healthAddr, mux); err != nil {
		logger.Error("health endpoint failed", logging.Err(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
