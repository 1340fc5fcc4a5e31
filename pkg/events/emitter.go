package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	appctx "github.com/Ramsey-B/rose/pkg/context"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/google/uuid"
)

// Emitter turns persisted rows into events. Publish failures are logged and swallowed:
// the row is already committed and the caller's response must not depend on the broker.
type Emitter struct {
	publisher Publisher
	logger    ectologger.Logger
	now       func() time.Time
}

func NewEmitter(publisher Publisher, logger ectologger.Logger) *Emitter {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &Emitter{
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (e *Emitter) TargetCreated(ctx context.Context, target *models.Target) {
	e.emit(ctx, TargetCreated, target.ID, target.ID, target)
}

func (e *Emitter) TargetUpdated(ctx context.Context, target *models.Target) {
	e.emit(ctx, TargetUpdated, target.ID, target.ID, target)
}

func (e *Emitter) LoveAnalysisCreated(ctx context.Context, analysis *models.LoveAnalysis) {
	e.emit(ctx, LoveAnalysisCreated, analysis.TargetID, analysis.ID, analysis)
}

func (e *Emitter) ChatStrategyCreated(ctx context.Context, strategy *models.ChatStrategy) {
	e.emit(ctx, ChatStrategyCreated, strategy.TargetID, strategy.ID, strategy)
}

func (e *Emitter) ReplyOptionsCreated(ctx context.Context, flow *models.ReplyOptionsFlow) {
	e.emit(ctx, ReplyOptionsCreated, flow.TargetID, flow.ID, flow)
}

func (e *Emitter) emit(ctx context.Context, eventType EventType, targetID, entityID int64, payload any) {
	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type": eventType,
		"target_id":  targetID,
		"entity_id":  entityID,
	})

	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("Failed to serialize event payload")
		return
	}

	event := Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		SchemaVersion: SchemaVersion,
		TargetID:      targetID,
		EntityID:      entityID,
		RequestID:     appctx.GetRequestID(ctx),
		OccurredAt:    e.now(),
		Data:          data,
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warnf("Failed to emit %s event", eventType)
		return
	}

	log.Debugf("Emitted %s event", eventType)
}
