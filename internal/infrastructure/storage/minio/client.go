// Package minio provides object storage for rendered document artifacts.
package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/turtacn/FilingDesk/internal/config"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// Client wraps the MinIO SDK client with bucket management.
type Client struct {
	mc     *minio.Client
	cfg    config.MinIOConfig
	logger logging.Logger
}

// NewClient connects to the object store and ensures the configured bucket
// exists.
func NewClient(ctx context.Context, cfg config.MinIOConfig, log logging.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "creating minio client")
	}

	c := &Client{mc: mc, cfg: cfg, logger: log}
	if err := c.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("connected to object storage",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket))
	return c, nil
}

func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "checking bucket")
	}
	if exists {
		return nil
	}
	if err := c.mc.MakeBucket(ctx, c.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "creating bucket "+c.cfg.Bucket)
	}
	return nil
}

// HealthCheck verifies the object store is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := c.mc.BucketExists(checkCtx, c.cfg.Bucket); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "object storage health check failed")
	}
	return nil
}
