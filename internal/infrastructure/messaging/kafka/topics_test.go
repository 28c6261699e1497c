package kafka

import (
	"context"
	"encoding/json"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
)

func TestIsKnownTopic(t *testing.T) {
	for _, topic := range AllTopics {
		assert.True(t, IsKnownTopic(topic), topic)
	}
	assert.False(t, IsKnownTopic("filing.deleted"))
	assert.False(t, IsKnownTopic(""))
}

func TestWrapEventCarriesBaseEventIdentity(t *testing.T) {
	r := filing.NewApplicationRecord("D-40")
	event := filing.NewFilingCreatedEvent(r)

	env, err := WrapEvent(TopicFilingCreated, event)
	require.NoError(t, err)

	assert.Equal(t, string(event.EventID), env.EventID)
	assert.Equal(t, "D-40", env.AggregateID)
	assert.Equal(t, event.OccurredAt, env.OccurredAt)

	var decoded filing.FilingCreatedEvent
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, "D-40", decoded.DocketNumber)
}

func TestWrapEventArbitraryPayload(t *testing.T) {
	env, err := WrapEvent(TopicFilingUpdated, map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Empty(t, env.AggregateID)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	r := filing.NewApplicationRecord("D-41")
	env, err := WrapEvent(TopicFeesRecomputed, filing.NewFeesRecomputedEvent(r))
	require.NoError(t, err)

	wire, err := json.Marshal(env)
	require.NoError(t, err)

	back, err := UnwrapEnvelope(wire)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, back.EventID)
	assert.Equal(t, env.AggregateID, back.AggregateID)
	assert.JSONEq(t, string(env.Payload), string(back.Payload))
}

func TestUnwrapEnvelopeMalformed(t *testing.T) {
	_, err := UnwrapEnvelope([]byte("{not json"))
	assert.Error(t, err)
}

type fakeWriter struct {
	messages []kafkago.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestProducerPublish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducerWithWriter(w, logging.NewNopLogger())
	r := filing.NewApplicationRecord("D-42")

	err := p.Publish(context.Background(), TopicFilingCreated, filing.NewFilingCreatedEvent(r))
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, TopicFilingCreated, msg.Topic)
	assert.Equal(t, "D-42", string(msg.Key), "events are keyed by docket for per-filing ordering")

	env, err := UnwrapEnvelope(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, "D-42", env.AggregateID)
}

func TestProducerRejectsUnknownTopic(t *testing.T) {
	p := newProducerWithWriter(&fakeWriter{}, logging.NewNopLogger())
	err := p.Publish(context.Background(), "made.up", struct{}{})
	assert.Error(t, err)
}

func TestProducerClosed(t *testing.T) {
	p := newProducerWithWriter(&fakeWriter{}, logging.NewNopLogger())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "double close is a no-op")

	err := p.Publish(context.Background(), TopicFilingCreated, struct{}{})
	assert.Error(t, err)
}
