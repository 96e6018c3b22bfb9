package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-hrcore/internal/bootstrap"
	"go-hrcore/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const fetchErrorBackoff = time.Second

// MessageReader is the slice of kafka.Reader the consumer drives.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeRequestDecisions reads approve/reject events and writes one audit
// entry per decision. Undecodable messages are committed and skipped so a
// bad payload cannot wedge the group; fetch errors back off before retrying.
func ConsumeRequestDecisions(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_decisions")
	log.Info("request decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request decision consumer stopped")
				return
			}
			log.Error("fetch request decision message failed", zap.Error(err))
			select {
			case <-ctx.Done():
				log.Info("request decision consumer stopped")
				return
			case <-time.After(fetchErrorBackoff):
			}
			continue
		}

		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "REQUEST_DECIDED",
			Message: "request reached a terminal decision",
			Meta: map[string]any{
				"request_kind": event.RequestKind,
				"request_id":   event.RequestID,
				"requester_id": event.RequesterID,
				"approver_id":  event.ApproverID,
				"status":       event.Status,
				"occurred_at":  event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request decision message failed", zap.Error(err))
		}
	}
}
