package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// ArtifactRepository reads back stored document artifacts.  The minio adapter
// implements it; the handler stays storage-agnostic.
type ArtifactRepository interface {
	Get(ctx context.Context, key string) (*documents.Artifact, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ArtifactHandler serves previously generated artifacts by their storage key,
// as returned in the X-Artifact-Key header of the generate endpoints.
type ArtifactHandler struct {
	store ArtifactRepository
}

// NewArtifactHandler constructs the handler.
func NewArtifactHandler(store ArtifactRepository) *ArtifactHandler {
	return &ArtifactHandler{store: store}
}

// Download streams the stored artifact bytes.
func (h *ArtifactHandler) Download(c *gin.Context) {
	key, ok := artifactKey(c)
	if !ok {
		return
	}
	artifact, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Name+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// DownloadURL returns a time-limited presigned URL for the artifact so large
// documents can be fetched from the object store directly.
func (h *ArtifactHandler) DownloadURL(c *gin.Context) {
	key, ok := artifactKey(c)
	if !ok {
		return
	}
	url, err := h.store.PresignedURL(c.Request.Context(), key, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"key": key, "url": url})
}

func artifactKey(c *gin.Context) (string, bool) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "artifact key is required"))
		return "", false
	}
	return key, true
}
