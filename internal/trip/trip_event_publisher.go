package trip

import (
	"context"
	"encoding/json"
	"strconv"

	"go-hrcore/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishRequestDecided(ctx context.Context, event events.RequestDecidedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishRequestDecided(context.Context, events.RequestDecidedEvent) error {
	return nil
}

func NoopEventPublisher() EventPublisher { return noopEventPublisher{} }

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishRequestDecided(
	ctx context.Context,
	event events.RequestDecidedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.RequestDecidedTopic,
		Key:   []byte(strconv.FormatInt(event.RequestID, 10)),
		Value: payload,
	})
}

func (s *service) publishDecided(ctx context.Context, t *Trip) {
	event := events.RequestDecidedEvent{
		EventType:   "request.decided",
		RequestKind: "TRIP",
		RequestID:   t.ID,
		RequesterID: t.RequesterID,
		Status:      t.Status,
		OccurredAt:  s.clock.Now(),
	}
	if t.ApproverID != nil {
		event.ApproverID = *t.ApproverID
	}
	if err := s.publisher.PublishRequestDecided(ctx, event); err != nil {
		s.logger.Warn("publish trip decision failed",
			zap.Int64("trip_id", t.ID),
			zap.Error(err),
		)
	}
}
