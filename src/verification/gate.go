package verification

import (
	"bytes"
	"math/big"
	"strconv"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"

	"github.com/KaushikKC/VeilPay/src/commitment"
	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/queues"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/utilities"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

var oneBig = big.NewInt(1)

// Gate is the verification of record: it accepts or rejects income
// proofs and persists a VerificationRecord for each accepted one.
type Gate struct {
	verifier  zkp.Verifier
	repo      Repository
	publisher queues.EventPublisher
}

func NewGate(verifier zkp.Verifier, repo Repository, publisher queues.EventPublisher) *Gate {
	return &Gate{verifier: verifier, repo: repo, publisher: publisher}
}

// VerifyIncomeProof checks the proof against the fixed-order public
// signals [validFlag, threshold, commitmentValue] and records the
// credential. A cryptographically broken proof is InvalidProof; a sound
// proof whose valid flag is 0 is ProofOutputInvalid and nothing is
// persisted. Resubmitting an already-recorded triple is accepted
// without inserting a duplicate.
func (g *Gate) VerifyIncomeProof(subject string, proofBytes []byte, signals []string) error {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return err
	}

	ok, err := g.verifier.Verify(proofBytes, signals)
	if err != nil {
		return err
	}
	if !ok {
		return reasoncodes.NewError(reasoncodes.ErrInvalidProof, "proof does not verify against the public signals")
	}

	valid, threshold, commitmentValue, err := zkp.ParseSignals(signals)
	if err != nil {
		return err
	}
	if valid.Cmp(oneBig) != 0 {
		return reasoncodes.NewError(reasoncodes.ErrProofOutputInvalid, "proof attests income below the threshold")
	}
	if !threshold.IsUint64() {
		return reasoncodes.NewError(reasoncodes.ErrInvalidInput, "threshold exceeds 64 bits")
	}

	commitmentHex := commitment.ToBytes32Hex(commitmentValue)
	thresholdValue := threshold.Uint64()

	exists, err := g.repo.Exists(subject, thresholdValue, commitmentHex)
	if err != nil {
		return err
	}
	if exists {
		logger.Default().Infof("Credential for %s at threshold %d already recorded", subject, thresholdValue)
		return nil
	}

	record := &VerificationRecord{
		Subject:    subject,
		Threshold:  thresholdValue,
		Commitment: commitmentHex,
		Timestamp:  time.Now().Unix(),
		Valid:      true,
	}
	if err := g.repo.Save(record); err != nil {
		return err
	}
	logger.Default().Infof("Credential recorded for %s at threshold %d", subject, thresholdValue)

	event := queues.CredentialVerifiedEvent{
		Subject:    subject,
		Threshold:  strconv.FormatUint(thresholdValue, 10),
		Commitment: commitmentHex,
		Timestamp:  record.Timestamp,
	}
	if err := g.publisher.Publish(queues.QueueCredentialVerified, event); err != nil {
		logger.Default().Errorf(err, "Can't publish credential.verified")
	}
	return nil
}

// VerifyEncoded accepts the hex borsh envelope produced at proof
// generation time, recovers the public signals from the serialized
// witness and runs the standard gate check.
func (g *Gate) VerifyEncoded(subject, ledgerEncoding string) error {
	proofBytes, publicWitnessBytes, err := zkp.DecodeLedgerCall(ledgerEncoding)
	if err != nil {
		return reasoncodes.NewErrorf(reasoncodes.ErrInvalidProof, "decode envelope: %v", err)
	}
	signals, err := signalsFromWitness(publicWitnessBytes)
	if err != nil {
		return err
	}
	return g.VerifyIncomeProof(subject, proofBytes, signals)
}

// CheckIncomeCredential reports whether the subject holds a credential
// for at least the requested threshold. A credential at 80k satisfies a
// check at 50k.
func (g *Gate) CheckIncomeCredential(subject string, threshold uint64) (bool, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return false, err
	}
	return g.repo.HasAtLeast(subject, threshold)
}

func (g *Gate) GetCredentials(subject string) ([]VerificationRecord, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}
	return g.repo.FindBySubject(subject)
}

func (g *Gate) GetCredentialCount(subject string) (int64, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return 0, err
	}
	return g.repo.CountBySubject(subject)
}

func signalsFromWitness(publicWitnessBytes []byte) ([]string, error) {
	w, err := witness.New(zkp.CurveID.ScalarField())
	if err != nil {
		return nil, err
	}
	if _, err := w.ReadFrom(bytes.NewReader(publicWitnessBytes)); err != nil {
		return nil, reasoncodes.NewErrorf(reasoncodes.ErrInvalidProof, "decode public witness: %v", err)
	}
	vector, ok := w.Vector().(fr.Vector)
	if !ok {
		return nil, reasoncodes.NewError(reasoncodes.ErrInvalidProof, "public witness is not a bn254 vector")
	}
	signals := make([]string, len(vector))
	for i := range vector {
		signals[i] = vector[i].String()
	}
	return signals, nil
}
