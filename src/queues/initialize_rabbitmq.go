package queues

import (
	"math"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KaushikKC/VeilPay/src/logger"
)

const (
	PayrollExchange = "veilpay"

	QueuePayrollCommitted   = "payroll.committed"
	QueueCredentialVerified = "credential.verified"
	QueueProofRequested     = "proof.requested"
	QueueProofGenerated     = "proof.generated"
)

// ConnectToRabbitmq dials with exponential backoff; brokers routinely
// come up after the service in compose environments.
func ConnectToRabbitmq(amqpURL string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	maxRetries := 7
	waitTime := 1 * time.Second

	for i := 0; i < maxRetries; i++ {
		conn, err = amqp.Dial(amqpURL)
		if err == nil {
			return conn, nil
		}

		logger.Default().Warnf("Attempt %d failed: %v. Retrying in %v...", i+1, err, waitTime)
		time.Sleep(waitTime)

		waitTime = time.Duration(math.Pow(2, float64(i+1))) * time.Second
	}

	return nil, err
}

// SetupPayrollQueues declares the exchange, the event queues and the
// proof worker queues, and binds each queue to its routing key.
func SetupPayrollQueues(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(PayrollExchange, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	for _, queue := range []string{
		QueuePayrollCommitted,
		QueueCredentialVerified,
		QueueProofRequested,
		QueueProofGenerated,
	} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(queue, queue, PayrollExchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}
