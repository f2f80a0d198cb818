package queues

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KaushikKC/VeilPay/src/utilities"
)

// EventPublisher is what domain services see; the rabbitmq publisher and
// the no-op publisher (queues disabled, tests) both satisfy it.
type EventPublisher interface {
	Publish(routingKey string, body utilities.Serializable) error
}

type RabbitPublisher struct {
	Channel  *amqp.Channel
	Exchange string
}

func NewRabbitPublisher(ch *amqp.Channel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{Channel: ch, Exchange: exchange}
}

func (rp *RabbitPublisher) Publish(routingKey string, body utilities.Serializable) error {
	payload, err := body.Serialize()
	if err != nil {
		return err
	}

	return rp.Channel.Publish(
		rp.Exchange,
		routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)
}

// NoopPublisher drops events; used when queues are disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, utilities.Serializable) error { return nil }
