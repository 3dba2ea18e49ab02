package messaging

import (
	"log"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	err = ch.QueueBind(q.Name, name, name, false, nil)
	if err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic acks every delivery fn accepts. A failing delivery is
// rejected without requeue and the listener keeps going.
func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, fn func(amqp.Delivery) error) error {
	fc, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			if err := fn(d); err != nil {
				log.Printf("Error processing %s message: %v", topic, err)
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
		log.Printf("Listener for %s stopped", topic)
	}(fc)
	return nil
}

// ListenForSnapshots decodes catalog snapshots and hands them to fn.
func ListenForSnapshots(ch *amqp.Channel, prefix string, fn func(CatalogSnapshot) error) error {
	return ListenToTopic(ch, prefix, CatalogSnapshotTopic, func(d amqp.Delivery) error {
		var snapshot CatalogSnapshot
		if err := sonic.Unmarshal(d.Body, &snapshot); err != nil {
			return err
		}
		return fn(snapshot)
	})
}
