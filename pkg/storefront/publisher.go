package storefront

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-storefront/pkg/messaging"
)

// AmqpQuotePublisher sends quotes on the cart_quoted topic.
type AmqpQuotePublisher struct {
	Conn   *amqp.Connection
	Prefix string
}

func NewAmqpQuotePublisher(conn *amqp.Connection, prefix string) (*AmqpQuotePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, prefix, messaging.CartQuotedTopic); err != nil {
		return nil, err
	}
	return &AmqpQuotePublisher{Conn: conn, Prefix: prefix}, nil
}

func (p *AmqpQuotePublisher) Publish(ctx context.Context, quote *Quote) error {
	return messaging.SendChange(ctx, p.Conn, p.Prefix, messaging.CartQuotedTopic, quote)
}
