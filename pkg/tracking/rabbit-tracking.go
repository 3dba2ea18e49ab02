package tracking

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-storefront/pkg/messaging"
)

// RabbitTracking publishes events on the tracking topic.
type RabbitTracking struct {
	connection *amqp.Connection
	prefix     string
}

func NewRabbitTracking(conn *amqp.Connection, prefix string) (*RabbitTracking, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, prefix, messaging.TrackingTopic); err != nil {
		return nil, err
	}
	return &RabbitTracking{
		connection: conn,
		prefix:     prefix,
	}, nil
}

func (t *RabbitTracking) send(ctx context.Context, data any) error {
	return messaging.SendChange(ctx, t.connection, t.prefix, messaging.TrackingTopic, data)
}

func (t *RabbitTracking) TrackBrowse(ctx context.Context, event BrowseEvent) error {
	stamp(&event.BaseEvent, EventBrowse)
	return t.send(ctx, event)
}

func (t *RabbitTracking) TrackQuote(ctx context.Context, event QuoteEvent) error {
	stamp(&event.BaseEvent, EventQuote)
	return t.send(ctx, event)
}
