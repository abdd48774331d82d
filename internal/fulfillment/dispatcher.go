package fulfillment

import (
	"context"
	"strconv"
	"time"

	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/google/uuid"
)

// Dispatcher hands a committed order over for fulfillment.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) error
}

type Handler interface {
	Fulfill(ctx context.Context, req Request) error
}

// SyncDispatcher fulfills inside the request that created the order.
type SyncDispatcher struct {
	handler Handler
}

func NewSyncDispatcher(handler Handler) *SyncDispatcher {
	return &SyncDispatcher{handler: handler}
}

func (d *SyncDispatcher) Dispatch(ctx context.Context, req Request) error {
	return d.handler.Fulfill(ctx, req)
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// KafkaDispatcher defers fulfillment to the worker through the notifications topic.
type KafkaDispatcher struct {
	publisher Publisher
	topic     string
	now       func() time.Time
}

func NewKafkaDispatcher(publisher Publisher, topic string) *KafkaDispatcher {
	return &KafkaDispatcher{publisher: publisher, topic: topic, now: time.Now}
}

func (d *KafkaDispatcher) Dispatch(ctx context.Context, req Request) error {
	event := kafka.OrderCreatedEvent{
		Type:      kafka.EventOrderCreated,
		EventID:   uuid.NewString(),
		OrderID:   req.OrderID,
		Recipient: req.Recipient,
		Lines:     req.Lines,
		CreatedAt: d.now().UTC(),
	}
	return d.publisher.Publish(ctx, d.topic, strconv.FormatInt(req.OrderID, 10), event)
}

func RequestFromEvent(event kafka.OrderCreatedEvent) Request {
	return Request{OrderID: event.OrderID, Recipient: event.Recipient, Lines: event.Lines}
}

var (
	_ Dispatcher = (*SyncDispatcher)(nil)
	_ Dispatcher = (*KafkaDispatcher)(nil)
	_ Handler    = (*Fulfiller)(nil)
)
