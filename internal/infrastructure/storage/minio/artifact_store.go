package minio

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// keyPrefix namespaces artifacts inside the bucket.
const keyPrefix = "artifacts/"

// ArtifactStore persists rendered documents in the object store.  It
// implements the application layer's ArtifactStore interface.
type ArtifactStore struct {
	client *Client
}

// NewArtifactStore constructs the store over an established client.
func NewArtifactStore(client *Client) *ArtifactStore {
	return &ArtifactStore{client: client}
}

// Put writes the artifact and returns its object key.  Re-generating a
// document overwrites the previous artifact under the same key.
func (s *ArtifactStore) Put(ctx context.Context, artifact *documents.Artifact) (string, error) {
	key := keyPrefix + artifact.Name

	_, err := s.client.mc.PutObject(ctx, s.client.cfg.Bucket, key,
		bytes.NewReader(artifact.Data), int64(len(artifact.Data)),
		minio.PutObjectOptions{ContentType: artifact.ContentType})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeArtifactUploadFailed, "uploading "+key)
	}

	s.client.logger.Debug("artifact stored",
		logging.String("key", key),
		logging.Int("bytes", len(artifact.Data)))
	return key, nil
}

// Get fetches a stored artifact by object key.
func (s *ArtifactStore) Get(ctx context.Context, key string) (*documents.Artifact, error) {
	obj, err := s.client.mc.GetObject(ctx, s.client.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "fetching "+key)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		respErr := minio.ToErrorResponse(err)
		if respErr.Code == "NoSuchKey" {
			return nil, errors.New(errors.ErrCodeArtifactNotFound, "artifact not found: "+key)
		}
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "reading "+key)
	}

	stat, err := obj.Stat()
	contentType := "application/octet-stream"
	if err == nil && stat.ContentType != "" {
		contentType = stat.ContentType
	}

	return &documents.Artifact{
		Name:        strings.TrimPrefix(key, keyPrefix),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// PresignedURL returns a time-limited download URL for a stored artifact.
func (s *ArtifactStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = s.client.cfg.PresignExpiry
	}
	u, err := s.client.mc.PresignedGetObject(ctx, s.client.cfg.Bucket, key, expiry, url.Values{})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, "presigning "+key)
	}
	return u.String(), nil
}
