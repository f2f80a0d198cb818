package queues

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KaushikKC/VeilPay/src/logger"
)

type RabbitConsumer struct {
	Channel   *amqp.Channel
	QueueName string
}

func NewRabbitConsumer(conn *amqp.Connection, queueName string) (*RabbitConsumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return &RabbitConsumer{Channel: ch, QueueName: queueName}, nil
}

func (c *RabbitConsumer) StartConsume(handler func(amqp.Delivery)) error {
	msgs, err := c.Channel.Consume(c.QueueName, "", true, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Default().Errorf(nil, "[%s] Recovered from consumer panic: %v", c.QueueName, r)
			}
		}()
		for d := range msgs {
			handler(d)
		}
	}()
	return nil
}
