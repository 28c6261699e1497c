package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// FilingHandler serves the application-record CRUD and field-edit endpoints.
type FilingHandler struct {
	service filing.Service
	metrics *prometheus.Metrics
}

// NewFilingHandler constructs the handler.  metrics may be nil.
func NewFilingHandler(service filing.Service, metrics *prometheus.Metrics) *FilingHandler {
	return &FilingHandler{service: service, metrics: metrics}
}

type createFilingRequest struct {
	DocketNumber string `json:"docket_number" binding:"required"`
}

// Create registers a new filing with a fresh record.
func (h *FilingHandler) Create(c *gin.Context) {
	var req createFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.service.Create(c.Request.Context(), req.DocketNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.FilingsCreated.Inc()
	}
	respond(c, http.StatusCreated, record)
}

// Get returns one filing by docket number.
func (h *FilingHandler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("docket"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, record)
}

// List returns filings ordered by docket number.
func (h *FilingHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	records, err := h.service.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, records)
}

// Delete removes a filing.
func (h *FilingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("docket")); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

type setFieldRequest struct {
	Value string `json:"value"`
}

// SetField applies one named scalar field edit.  The response carries the
// full record so clients see the recomputed fee breakdown immediately.
func (h *FilingHandler) SetField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.service.SetField(c.Request.Context(), c.Param("docket"), c.Param("field"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	h.countEdit()
	respond(c, http.StatusOK, record)
}

func (h *FilingHandler) countEdit() {
	if h.metrics != nil {
		h.metrics.FieldEdits.Inc()
	}
}

// AddEntry appends a blank entry to a repeated list.
func (h *FilingHandler) AddEntry(c *gin.Context) {
	record, err := h.service.AddEntry(c.Request.Context(), c.Param("docket"), c.Param("list"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.countEdit()
	respond(c, http.StatusOK, record)
}

// RemoveEntry deletes one list entry by index.
func (h *FilingHandler) RemoveEntry(c *gin.Context) {
	index, ok := parseIndex(c, "index")
	if !ok {
		return
	}
	record, err := h.service.RemoveEntry(c.Request.Context(), c.Param("docket"), c.Param("list"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	h.countEdit()
	respond(c, http.StatusOK, record)
}

// UpdateEntry edits one named field of one list entry.
func (h *FilingHandler) UpdateEntry(c *gin.Context) {
	index, ok := parseIndex(c, "index")
	if !ok {
		return
	}
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.service.UpdateEntry(c.Request.Context(),
		c.Param("docket"), c.Param("list"), index, c.Param("field"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	h.countEdit()
	respond(c, http.StatusOK, record)
}
