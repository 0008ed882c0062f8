package events

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-directory/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher emits review events keyed by restaurant id, so events of
// one restaurant stay ordered within a partition. A nil writer disables
// publishing.
type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	if writer == nil {
		return &KafkaPublisher{}
	}
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishReview(ctx context.Context, event domain.ReviewEvent) error {
	if p == nil || p.Writer == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode review event: %w", err)
	}
	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID),
		Value: payload,
	}); err != nil {
		return domain.Upstream("publish "+event.Type, err)
	}
	return nil
}
