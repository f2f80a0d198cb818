package zkp

import (
	"bytes"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/KaushikKC/VeilPay/src/circuit"
	"github.com/KaushikKC/VeilPay/src/commitment"
	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/utilities"
)

// GenerateRequest carries the witness material for one proof. All values
// are decimal strings except EmployeeAddress, which may be 0x-hex.
type GenerateRequest struct {
	Salary          string `json:"salary" binding:"required"`
	Nonce           string `json:"nonce" binding:"required"`
	EmployeeAddress string `json:"employeeAddress" binding:"required"`
	Threshold       string `json:"threshold" binding:"required"`
	Commitment      string `json:"commitment" binding:"required"`
}

type Service struct {
	prover Prover
}

func NewService(prover Prover) *Service {
	return &Service{prover: prover}
}

// GenerateProof assembles the witness and produces a proof artifact.
// The (salary, nonce) pair is checked against the supplied commitment
// before proving; a mismatch can never bind to the on-ledger value, so
// it is rejected as WitnessInvalid without touching the prover.
//
// Proving always succeeds for a consistent witness: a salary below the
// threshold yields a valid proof whose first public signal is 0.
func (s *Service) GenerateProof(req GenerateRequest) (*ProofArtifact, error) {
	salary, err := parseUint(req.Salary, "salary")
	if err != nil {
		return nil, err
	}
	threshold, err := parseUint(req.Threshold, "threshold")
	if err != nil {
		return nil, err
	}
	nonce, err := parseField(req.Nonce, "nonce")
	if err != nil {
		return nil, err
	}
	commitmentValue, err := parseField(req.Commitment, "commitment")
	if err != nil {
		return nil, err
	}
	subject, err := parseSubject(req.EmployeeAddress)
	if err != nil {
		return nil, err
	}

	expected, err := commitment.CommitField(subject, salary, nonce)
	if err != nil {
		return nil, err
	}
	if expected.Cmp(commitmentValue) != 0 {
		return nil, reasoncodes.NewError(reasoncodes.ErrWitnessInvalid,
			"salary and nonce do not reproduce the supplied commitment")
	}

	validFlag := int64(0)
	if salary >= threshold {
		validFlag = 1
	}

	assignment := &circuit.IncomeCircuit{
		Valid:      validFlag,
		Threshold:  threshold,
		Commitment: commitmentValue,
		Salary:     salary,
		Nonce:      nonce,
		Subject:    subject,
	}

	start := time.Now()
	proofBytes, points, err := s.prover.Prove(assignment)
	if err != nil {
		return nil, err
	}
	logger.Default().Infof("Proof generated in %dms", time.Since(start).Milliseconds())

	signals := []string{
		strconv.FormatInt(validFlag, 10),
		strconv.FormatUint(threshold, 10),
		commitmentValue.String(),
	}

	publicWitness, err := PublicWitnessFromSignals(signals)
	if err != nil {
		return nil, err
	}
	var pwBuf bytes.Buffer
	if _, err := publicWitness.WriteTo(&pwBuf); err != nil {
		return nil, err
	}

	encoding, err := EncodeLedgerCall(proofBytes, pwBuf.Bytes())
	if err != nil {
		return nil, err
	}

	return &ProofArtifact{
		Proof:          points,
		ProofBytes:     proofBytes,
		PublicSignals:  signals,
		LedgerEncoding: encoding,
	}, nil
}

func parseUint(raw, name string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, reasoncodes.NewErrorf(reasoncodes.ErrInvalidInput, "%s must be a decimal integer", name)
	}
	return v, nil
}

func parseField(raw, name string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok || n.Sign() < 0 || n.Cmp(fr.Modulus()) >= 0 {
		return nil, reasoncodes.NewErrorf(reasoncodes.ErrInvalidInput, "%s is not a decimal field element", name)
	}
	return n, nil
}

// parseSubject accepts a 0x address or its decimal field encoding.
func parseSubject(raw string) (*big.Int, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		addr, err := utilities.NormalizeAddress(raw)
		if err != nil {
			return nil, err
		}
		n := new(big.Int)
		n.SetString(utilities.AddressToDecimal(addr), 10)
		return n, nil
	}
	return parseField(raw, "employeeAddress")
}
