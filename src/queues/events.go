package queues

import (
	"github.com/KaushikKC/VeilPay/src/utilities"
)

type PayrollCommittedEvent struct {
	Employer   string `json:"employer"`
	Subject    string `json:"subject"`
	Commitment string `json:"commitment"`
	Timestamp  int64  `json:"timestamp"`
}

func (e PayrollCommittedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type CredentialVerifiedEvent struct {
	Subject    string `json:"subject"`
	Threshold  string `json:"threshold"`
	Commitment string `json:"commitment"`
	Timestamp  int64  `json:"timestamp"`
}

func (e CredentialVerifiedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

// ProofRequestedMessage is the async proof-generation job: the worker
// looks up the subject's stored witness material itself so the salary
// and nonce never ride on the queue.
type ProofRequestedMessage struct {
	Subject   string `json:"subject"`
	Threshold string `json:"threshold"`
}

func (e ProofRequestedMessage) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type ProofGeneratedEvent struct {
	Subject   string `json:"subject"`
	Threshold string `json:"threshold"`
	ProofId   string `json:"proof_id"`
}

func (e ProofGeneratedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type ProofFailedEvent struct {
	Subject    string `json:"subject"`
	Threshold  string `json:"threshold"`
	Error      string `json:"error"`
	ReasonCode string `json:"reason_code"`
}

func (e ProofFailedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}
