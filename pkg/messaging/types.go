package messaging

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-storefront/pkg/types"
)

type RabbitConfig struct {
	Url    string
	VHost  string
	Prefix string
}

// CatalogSnapshot replaces the whole catalog on every listener.
type CatalogSnapshot struct {
	Version  string                `json:"version"`
	Products []types.ProductRecord `json:"products"`
}

func Connect(config RabbitConfig) (*amqp.Connection, error) {
	return amqp.DialConfig(config.Url, amqp.Config{
		Vhost:      config.VHost,
		Properties: amqp.NewConnectionProperties(),
	})
}
