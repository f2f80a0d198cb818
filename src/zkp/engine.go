package zkp

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/KaushikKC/VeilPay/src/circuit"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

// Prover is the narrow proving capability injected into the proof
// service. Implementations must be safe for concurrent use.
type Prover interface {
	Prove(assignment *circuit.IncomeCircuit) (proofBytes []byte, points ProofPoints, err error)
	Ready() bool
}

// Verifier is the narrow verification capability injected into the
// verification gate.
type Verifier interface {
	Verify(proofBytes []byte, signals []string) (bool, error)
}

// Groth16Engine compiles the income circuit and runs trusted setup once,
// then serves concurrent prove/verify calls. Setup takes seconds; call
// WarmUp at boot so the first request doesn't pay for it.
type Groth16Engine struct {
	once     sync.Once
	ccs      constraint.ConstraintSystem
	pk       groth16.ProvingKey
	vk       groth16.VerifyingKey
	setupErr error
}

func NewGroth16Engine() *Groth16Engine {
	return &Groth16Engine{}
}

func (e *Groth16Engine) setup() {
	e.once.Do(func() {
		var c circuit.IncomeCircuit
		ccs, err := frontend.Compile(CurveID.ScalarField(), r1cs.NewBuilder, &c)
		if err != nil {
			e.setupErr = err
			return
		}
		pk, vk, err := groth16.Setup(ccs)
		if err != nil {
			e.setupErr = err
			return
		}
		e.ccs = ccs
		e.pk = pk
		e.vk = vk
	})
}

// WarmUp forces circuit compilation and setup.
func (e *Groth16Engine) WarmUp() error {
	e.setup()
	if e.setupErr != nil {
		return reasoncodes.NewErrorf(reasoncodes.ErrProverUnavailable, "circuit setup failed: %v", e.setupErr)
	}
	return nil
}

func (e *Groth16Engine) Ready() bool {
	e.setup()
	return e.setupErr == nil
}

func (e *Groth16Engine) Prove(assignment *circuit.IncomeCircuit) ([]byte, ProofPoints, error) {
	e.setup()
	if e.setupErr != nil {
		return nil, ProofPoints{}, reasoncodes.NewErrorf(reasoncodes.ErrProverUnavailable, "circuit setup failed: %v", e.setupErr)
	}

	fullWitness, err := frontend.NewWitness(assignment, CurveID.ScalarField())
	if err != nil {
		return nil, ProofPoints{}, reasoncodes.NewErrorf(reasoncodes.ErrWitnessInvalid, "build witness: %v", err)
	}

	proof, err := groth16.Prove(e.ccs, e.pk, fullWitness)
	if err != nil {
		return nil, ProofPoints{}, reasoncodes.NewErrorf(reasoncodes.ErrWitnessInvalid, "groth16 prove: %v", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, ProofPoints{}, err
	}

	points, err := pointsFromProof(proof)
	if err != nil {
		return nil, ProofPoints{}, err
	}
	return buf.Bytes(), points, nil
}

// Verify checks a gnark-serialized proof against the fixed-order public
// signals [validFlag, threshold, commitmentValue]. A false return with a
// nil error means the proof is well formed but does not verify.
func (e *Groth16Engine) Verify(proofBytes []byte, signals []string) (bool, error) {
	e.setup()
	if e.setupErr != nil {
		return false, reasoncodes.NewErrorf(reasoncodes.ErrProverUnavailable, "circuit setup failed: %v", e.setupErr)
	}

	proof := groth16.NewProof(CurveID)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, reasoncodes.NewErrorf(reasoncodes.ErrInvalidProof, "decode proof: %v", err)
	}

	publicWitness, err := PublicWitnessFromSignals(signals)
	if err != nil {
		return false, err
	}

	if err := groth16.Verify(proof, e.vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

// PublicWitnessFromSignals rebuilds the public witness the verifier
// needs from the decimal signal triplet.
func PublicWitnessFromSignals(signals []string) (witness.Witness, error) {
	valid, threshold, commitmentValue, err := ParseSignals(signals)
	if err != nil {
		return nil, err
	}
	assignment := &circuit.IncomeCircuit{
		Valid:      valid,
		Threshold:  threshold,
		Commitment: commitmentValue,
		Salary:     0,
		Nonce:      0,
		Subject:    0,
	}
	return frontend.NewWitness(assignment, CurveID.ScalarField(), frontend.PublicOnly())
}

// ParseSignals validates and parses the decimal triplet.
func ParseSignals(signals []string) (valid, threshold, commitmentValue *big.Int, err error) {
	if len(signals) != 3 {
		return nil, nil, nil, reasoncodes.NewErrorf(reasoncodes.ErrInvalidInput, "expected 3 public signals, got %d", len(signals))
	}
	parsed := make([]*big.Int, 3)
	for i, s := range signals {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok || n.Sign() < 0 {
			return nil, nil, nil, reasoncodes.NewErrorf(reasoncodes.ErrInvalidInput, "public signal %d is not a decimal field element", i)
		}
		parsed[i] = n
	}
	return parsed[0], parsed[1], parsed[2], nil
}
