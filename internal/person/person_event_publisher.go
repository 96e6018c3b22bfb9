package person

import (
	"context"
	"encoding/json"

	"go-hrcore/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishPersonRegistered(ctx context.Context, event events.PersonRegisteredEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishPersonRegistered(context.Context, events.PersonRegisteredEvent) error {
	return nil
}

// NoopEventPublisher is the default when no broker is configured.
func NoopEventPublisher() EventPublisher { return noopEventPublisher{} }

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishPersonRegistered(
	ctx context.Context,
	event events.PersonRegisteredEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.PersonRegisteredTopic,
		Key:   []byte(event.Email),
		Value: payload,
	})
}

// publishRegistered emits the lifecycle event; publish failures are logged
// and never fail the registration itself.
func (s *service) publishRegistered(ctx context.Context, p *Person) {
	event := events.PersonRegisteredEvent{
		EventType:  "person.registered",
		PersonID:   p.ID,
		Email:      p.Email,
		Role:       string(p.Role),
		OccurredAt: s.clock.Now(),
	}
	if err := s.publisher.PublishPersonRegistered(ctx, event); err != nil {
		s.logger.Warn("publish person registered failed",
			zap.Int64("person_id", p.ID),
			zap.Error(err),
		)
	}
}
