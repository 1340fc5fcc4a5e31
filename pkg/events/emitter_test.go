package events

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/Gobusters/ectologger"
	appctx "github.com/Ramsey-B/rose/pkg/context"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(ectologger.EctoLogMessage) {})
}

func TestEmitter_LoveAnalysisCreated(t *testing.T) {
	writer := &fakeWriter{}
	emitter := NewEmitter(NewKafkaPublisher(writer, "coaching-events", testLogger()), testLogger())

	ctx := appctx.SetRequestID(context.Background(), "req-9")
	emitter.LoveAnalysisCreated(ctx, &models.LoveAnalysis{ID: 4, TargetID: 2, Convo: "hi", Content: "warm"})

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "2", string(msg.Key))

	var event Event
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, LoveAnalysisCreated, event.Type)
	assert.Equal(t, SchemaVersion, event.SchemaVersion)
	assert.Equal(t, int64(2), event.TargetID)
	assert.Equal(t, int64(4), event.EntityID)
	assert.Equal(t, "req-9", event.RequestID)
	assert.NotEmpty(t, event.ID)

	var payload models.LoveAnalysis
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	assert.Equal(t, "warm", payload.Content)

	var eventType string
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			eventType = string(h.Value)
		}
	}
	assert.Equal(t, string(LoveAnalysisCreated), eventType)
}

func TestEmitter_PublishFailureIsSwallowed(t *testing.T) {
	writer := &fakeWriter{err: stderrors.New("broker down")}
	emitter := NewEmitter(NewKafkaPublisher(writer, "coaching-events", testLogger()), testLogger())

	assert.NotPanics(t, func() {
		emitter.TargetCreated(context.Background(), &models.Target{ID: 1, Name: "Alex"})
	})
	assert.Empty(t, writer.messages)
}

func TestEmitter_NilPublisherIsNoop(t *testing.T) {
	emitter := NewEmitter(nil, testLogger())
	assert.NotPanics(t, func() {
		emitter.ReplyOptionsCreated(context.Background(), &models.ReplyOptionsFlow{ID: 1, TargetID: 1})
	})
}

func TestNewKafkaWriter_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewKafkaWriter(KafkaConfig{Topic: "coaching-events"})
	assert.Error(t, err)

	_, err = NewKafkaWriter(KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	w, err := NewKafkaWriter(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "coaching-events", Compression: "snappy"})
	require.NoError(t, err)
	assert.Equal(t, "coaching-events", w.Topic)
}
