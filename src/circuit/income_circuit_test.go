package circuit

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/KaushikKC/VeilPay/src/commitment"
)

const testSubject = "0x1111111111111111111111111111111111111111"

func compileCircuit(t *testing.T) constraint.ConstraintSystem {
	t.Helper()
	var c IncomeCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &c)
	if err != nil {
		t.Fatalf("failed to compile circuit: %v", err)
	}
	return ccs
}

func assignment(t *testing.T, salary, threshold uint64, valid int64) *IncomeCircuit {
	t.Helper()
	nonce := big.NewInt(1337)
	value, err := commitment.Commit(testSubject, salary, nonce)
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	subject := new(big.Int)
	subject.SetString(testSubject[2:], 16)
	return &IncomeCircuit{
		Valid:      valid,
		Threshold:  threshold,
		Commitment: value,
		Salary:     salary,
		Nonce:      nonce,
		Subject:    subject,
	}
}

func solve(t *testing.T, ccs constraint.ConstraintSystem, a *IncomeCircuit) error {
	t.Helper()
	w, err := frontend.NewWitness(a, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("failed to build witness: %v", err)
	}
	return ccs.IsSolved(w)
}

func TestIncomeCircuitSolvesHonestAssignments(t *testing.T) {
	ccs := compileCircuit(t)

	if err := solve(t, ccs, assignment(t, 75000, 50000, 1)); err != nil {
		t.Errorf("above-threshold assignment should solve: %v", err)
	}
	if err := solve(t, ccs, assignment(t, 75000, 75000, 1)); err != nil {
		t.Errorf("salary == threshold should solve with flag 1: %v", err)
	}
	if err := solve(t, ccs, assignment(t, 75000, 100000, 0)); err != nil {
		t.Errorf("below-threshold assignment should solve with flag 0: %v", err)
	}
}

func TestIncomeCircuitRejectsDishonestFlag(t *testing.T) {
	ccs := compileCircuit(t)

	if err := solve(t, ccs, assignment(t, 75000, 100000, 1)); err == nil {
		t.Error("claiming flag 1 below the threshold must not solve")
	}
	if err := solve(t, ccs, assignment(t, 75000, 50000, 0)); err == nil {
		t.Error("claiming flag 0 above the threshold must not solve")
	}
}

func TestIncomeCircuitRejectsWrongCommitment(t *testing.T) {
	ccs := compileCircuit(t)

	a := assignment(t, 75000, 50000, 1)
	a.Commitment = big.NewInt(12345)
	if err := solve(t, ccs, a); err == nil {
		t.Error("a commitment that does not match the witness must not solve")
	}
}

func TestIncomeCircuitRejectsWrongSalary(t *testing.T) {
	ccs := compileCircuit(t)

	// Commitment binds the salary; swapping in a different salary while
	// keeping the commitment must fail even though the flag is honest.
	a := assignment(t, 75000, 50000, 1)
	a.Salary = uint64(80000)
	if err := solve(t, ccs, a); err == nil {
		t.Error("a salary that does not match the commitment must not solve")
	}
}
