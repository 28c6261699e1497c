// Package kafka carries FilingDesk's event-bus adapters: the producer used
// by the domain services, the consumer the worker runs, and the topic
// registry with the envelope format shared by both.
package kafka

import (
	"encoding/json"
	"time"

	appfiling "github.com/turtacn/FilingDesk/internal/application/filing"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/errors"
	"github.com/turtacn/FilingDesk/pkg/types/common"
)

// Topic names.  The domain defines its own constants so it stays
// broker-agnostic; this registry re-exports them for wiring and validation.
const (
	TopicFilingCreated     = filing.TopicFilingCreated
	TopicFilingUpdated     = filing.TopicFilingUpdated
	TopicFeesRecomputed    = filing.TopicFeesRecomputed
	TopicDocumentGenerated = appfiling.TopicDocumentGenerated
)

// AllTopics lists every topic the platform produces, for consumer
// subscription and topic provisioning.
var AllTopics = []string{
	TopicFilingCreated,
	TopicFilingUpdated,
	TopicFeesRecomputed,
	TopicDocumentGenerated,
}

// IsKnownTopic reports whether a topic belongs to the registry.
func IsKnownTopic(topic string) bool {
	for _, t := range AllTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// EventEnvelope is the wire format for every published event: routing
// metadata around an opaque JSON payload.
type EventEnvelope struct {
	EventID     string          `json:"event_id"`
	Topic       string          `json:"topic"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// envelopeEvent is the subset of event types that carry BaseEvent metadata.
type envelopeEvent interface {
	Aggregate() string
	ID() string
	Occurred() time.Time
}

// WrapEvent serializes an event into its envelope.  Events embedding
// common.BaseEvent contribute their own identifiers; anything else gets a
// fresh envelope identity.
func WrapEvent(topic string, event interface{}) (*EventEnvelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "marshalling event payload")
	}

	env := &EventEnvelope{
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if be, ok := event.(envelopeEvent); ok {
		env.EventID = be.ID()
		env.AggregateID = be.Aggregate()
		env.OccurredAt = be.Occurred()
	} else {
		env.EventID = string(common.NewID())
	}
	return env, nil
}

// UnwrapEnvelope decodes an envelope from its wire form.
func UnwrapEnvelope(data []byte) (*EventEnvelope, error) {
	env := &EventEnvelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "unmarshalling event envelope")
	}
	return env, nil
}
