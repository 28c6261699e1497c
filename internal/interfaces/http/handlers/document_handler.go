package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appfiling "github.com/turtacn/FilingDesk/internal/application/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/FilingDesk/pkg/errors"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// DocumentHandler serves fee computation and document generation.
type DocumentHandler struct {
	orchestrator *appfiling.Orchestrator
	metrics      *prometheus.Metrics
}

// NewDocumentHandler constructs the handler.  metrics may be nil.
func NewDocumentHandler(orchestrator *appfiling.Orchestrator, metrics *prometheus.Metrics) *DocumentHandler {
	return &DocumentHandler{orchestrator: orchestrator, metrics: metrics}
}

// Fees returns the derived fee breakdown for a filing.
func (h *DocumentHandler) Fees(c *gin.Context) {
	fb, err := h.orchestrator.ComputeFees(c.Request.Context(), c.Param("docket"))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.FeeRecomputations.Inc()
	}
	respond(c, http.StatusOK, fb)
}

// Kinds lists the available document kinds.
func (h *DocumentHandler) Kinds(c *gin.Context) {
	respond(c, http.StatusOK, ftypes.AllDocumentKinds)
}

// Preview returns the view model for one document kind without rendering.
func (h *DocumentHandler) Preview(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	vm, err := h.orchestrator.Preview(c.Request.Context(), c.Param("docket"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, vm)
}

// Generate renders one document, stores the artifact, and streams the bytes
// back to the caller.
func (h *DocumentHandler) Generate(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	start := time.Now()
	artifact, key, err := h.orchestrator.GenerateDocument(c.Request.Context(), c.Param("docket"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveRender(string(kind), time.Since(start))
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Name+`"`)
	if key != "" {
		c.Header("X-Artifact-Key", key)
	}
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// GenerateAll renders every document kind and returns the artifact names.
func (h *DocumentHandler) GenerateAll(c *gin.Context) {
	start := time.Now()
	artifacts, err := h.orchestrator.GenerateAll(c.Request.Context(), c.Param("docket"))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil && len(artifacts) > 0 {
		elapsed := time.Since(start) / time.Duration(len(artifacts))
		for kind := range artifacts {
			h.metrics.ObserveRender(string(kind), elapsed)
		}
	}

	names := make(map[string]string, len(artifacts))
	for kind, artifact := range artifacts {
		names[string(kind)] = artifact.Name
	}
	respond(c, http.StatusOK, names)
}

func parseKind(c *gin.Context) (ftypes.DocumentKind, bool) {
	kind, ok := ftypes.ParseDocumentKind(c.Param("kind"))
	if !ok {
		respondError(c, errors.New(errors.ErrCodeDocumentKindUnknown,
			"unknown document kind: "+c.Param("kind")))
		return "", false
	}
	return kind, true
}
