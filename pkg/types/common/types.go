package common

import (
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID returns a freshly generated ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Metadata is an open-ended key-value bag.
type Metadata map[string]interface{}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total,omitempty"`
}

// SortOrder defines the direction of sorting.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success   bool         `json:"success"`
	Data      T            `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id"`
	Timestamp time.Time    `json:"timestamp"`
}

// BaseEvent carries the envelope fields shared by every domain event.
type BaseEvent struct {
	EventID     ID        `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBaseEvent constructs a BaseEvent for the given aggregate identifier.
func NewBaseEvent(aggregateID string) BaseEvent {
	return BaseEvent{
		EventID:     NewID(),
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
	}
}

// ID returns the event identifier as a string.
func (e BaseEvent) ID() string { return string(e.EventID) }

// Aggregate returns the identifier of the aggregate the event concerns.
func (e BaseEvent) Aggregate() string { return e.AggregateID }

// Occurred returns the event timestamp.
func (e BaseEvent) Occurred() time.Time { return e.OccurredAt }

// HealthStatus indicates the health of a component or service.
type HealthStatus string

const (
	HealthUp       HealthStatus = "up"
	HealthDown     HealthStatus = "down"
	HealthDegraded HealthStatus = "degraded"
)
