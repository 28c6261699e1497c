package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
)

// FeeCache caches derived fee breakdowns per docket number with a TTL.  The
// cache is strictly best-effort: any Redis failure reads as a miss and
// logs at debug, never surfacing to the caller.  The derivation it fronts is
// pure, so a stale or lost entry costs one repository read, nothing more.
type FeeCache struct {
	client    *Client
	ttl       time.Duration
	keyPrefix string
	logger    logging.Logger
}

// NewFeeCache constructs the cache over an established client.
func NewFeeCache(client *Client, ttl time.Duration, keyPrefix string, log logging.Logger) *FeeCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if keyPrefix == "" {
		keyPrefix = "filingdesk"
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &FeeCache{client: client, ttl: ttl, keyPrefix: keyPrefix, logger: log.Named("fee_cache")}
}

func (c *FeeCache) key(docketNumber string) string {
	return c.keyPrefix + ":fees:" + docketNumber
}

// Get returns the cached breakdown for a docket, with ok=false on miss or
// any Redis failure.
func (c *FeeCache) Get(ctx context.Context, docketNumber string) (fees.FeeBreakdown, bool) {
	payload, err := c.client.Raw().Get(ctx, c.key(docketNumber)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("fee cache read failed",
				logging.String("docket_number", docketNumber), logging.Err(err))
		}
		return fees.FeeBreakdown{}, false
	}

	var fb fees.FeeBreakdown
	if err := json.Unmarshal(payload, &fb); err != nil {
		c.logger.Debug("fee cache entry corrupt",
			logging.String("docket_number", docketNumber), logging.Err(err))
		return fees.FeeBreakdown{}, false
	}
	return fb, true
}

// Set stores the breakdown for a docket, overwriting any previous entry.
func (c *FeeCache) Set(ctx context.Context, docketNumber string, fb fees.FeeBreakdown) {
	payload, err := json.Marshal(fb)
	if err != nil {
		return
	}
	if err := c.client.Raw().Set(ctx, c.key(docketNumber), payload, c.ttl).Err(); err != nil {
		c.logger.Debug("fee cache write failed",
			logging.String("docket_number", docketNumber), logging.Err(err))
	}
}

// Invalidate drops the entry for a docket.  Used by the worker when a filing
// update event arrives from another process.
func (c *FeeCache) Invalidate(ctx context.Context, docketNumber string) {
	if err := c.client.Raw().Del(ctx, c.key(docketNumber)).Err(); err != nil {
		c.logger.Debug("fee cache invalidation failed",
			logging.String("docket_number", docketNumber), logging.Err(err))
	}
}
