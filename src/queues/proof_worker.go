package queues

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KaushikKC/VeilPay/src/commitment"
	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/proofstore"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

// ProofWorker consumes proof.requested jobs so HTTP callers never block
// on the seconds-long Groth16 prove. Results land in the proof registry
// and a proof.generated event carries the opaque id back out.
type ProofWorker struct {
	secrets   commitment.Repository
	proofs    *zkp.Service
	registry  proofstore.Store
	publisher EventPublisher
	consumer  *RabbitConsumer
}

func NewProofWorker(
	secrets commitment.Repository,
	proofs *zkp.Service,
	registry proofstore.Store,
	publisher EventPublisher,
	consumer *RabbitConsumer,
) *ProofWorker {
	return &ProofWorker{
		secrets:   secrets,
		proofs:    proofs,
		registry:  registry,
		publisher: publisher,
		consumer:  consumer,
	}
}

func (w *ProofWorker) StartService() error {
	return w.consumer.StartConsume(w.handleDelivery)
}

func (w *ProofWorker) handleDelivery(d amqp.Delivery) {
	workerLogger := logger.Default()

	var msg ProofRequestedMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		workerLogger.Errorf(err, "Failed to unmarshal proof request")
		return
	}

	proofId, err := w.process(msg)
	if err != nil {
		workerLogger.Errorf(err, "Proof request failed for %s", msg.Subject)
		failure := ProofFailedEvent{
			Subject:    msg.Subject,
			Threshold:  msg.Threshold,
			Error:      err.Error(),
			ReasonCode: string(reasoncodes.CodeOf(err)),
		}
		if pubErr := w.publisher.Publish(QueueProofGenerated, failure); pubErr != nil {
			workerLogger.Errorf(pubErr, "Can't publish proof failure")
		}
		return
	}

	event := ProofGeneratedEvent{
		Subject:   msg.Subject,
		Threshold: msg.Threshold,
		ProofId:   proofId,
	}
	if err := w.publisher.Publish(QueueProofGenerated, event); err != nil {
		workerLogger.Errorf(err, "Can't publish proof result")
		return
	}
	workerLogger.Infof("Generated proof %s for subject %s", proofId, msg.Subject)
}

func (w *ProofWorker) process(msg ProofRequestedMessage) (string, error) {
	secret, err := w.secrets.GetBySubject(msg.Subject)
	if err != nil {
		return "", err
	}

	artifact, err := w.proofs.GenerateProof(zkp.GenerateRequest{
		Salary:          secret.Salary,
		Nonce:           secret.Nonce,
		EmployeeAddress: secret.Subject,
		Threshold:       msg.Threshold,
		Commitment:      secret.Commitment,
	})
	if err != nil {
		return "", err
	}

	return w.registry.Store(proofstore.StoredProof{
		Artifact:        *artifact,
		Threshold:       msg.Threshold,
		EmployeeAddress: secret.Subject,
	})
}
