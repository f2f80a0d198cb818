package zkp

import (
	"math/big"
	"testing"

	"github.com/KaushikKC/VeilPay/src/commitment"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

// One engine for the whole package; circuit compilation and trusted
// setup take seconds and every test can share the same keys.
var testEngine = NewGroth16Engine()

const (
	testSubject = "0x1111111111111111111111111111111111111111"
	testSalary  = uint64(75000)
)

var testNonce = big.NewInt(987654321)

func testRequest(t *testing.T, threshold string) GenerateRequest {
	t.Helper()
	value, err := commitment.Commit(testSubject, testSalary, testNonce)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return GenerateRequest{
		Salary:          "75000",
		Nonce:           testNonce.String(),
		EmployeeAddress: testSubject,
		Threshold:       threshold,
		Commitment:      value.String(),
	}
}

func TestGenerateProofAboveThreshold(t *testing.T) {
	service := NewService(testEngine)

	artifact, err := service.GenerateProof(testRequest(t, "50000"))
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	if len(artifact.PublicSignals) != 3 {
		t.Fatalf("Expected 3 public signals, got %d", len(artifact.PublicSignals))
	}
	if artifact.PublicSignals[SignalValid] != "1" {
		t.Errorf("Expected valid flag 1, got %s", artifact.PublicSignals[SignalValid])
	}
	if artifact.PublicSignals[SignalThreshold] != "50000" {
		t.Errorf("Expected threshold 50000, got %s", artifact.PublicSignals[SignalThreshold])
	}

	ok, err := testEngine.Verify(artifact.ProofBytes, artifact.PublicSignals)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("Expected the proof to verify")
	}
}

func TestGenerateProofBelowThresholdCarriesZeroFlag(t *testing.T) {
	service := NewService(testEngine)

	artifact, err := service.GenerateProof(testRequest(t, "100000"))
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	if artifact.PublicSignals[SignalValid] != "0" {
		t.Errorf("Expected valid flag 0, got %s", artifact.PublicSignals[SignalValid])
	}

	// The proof itself is sound; it just attests the negative outcome.
	ok, err := testEngine.Verify(artifact.ProofBytes, artifact.PublicSignals)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("Expected a below-threshold proof to verify")
	}
}

func TestGenerateProofExactlyAtThreshold(t *testing.T) {
	service := NewService(testEngine)

	artifact, err := service.GenerateProof(testRequest(t, "75000"))
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}
	if artifact.PublicSignals[SignalValid] != "1" {
		t.Errorf("Expected salary == threshold to satisfy, got flag %s", artifact.PublicSignals[SignalValid])
	}
}

func TestVerifyRejectsTamperedSignals(t *testing.T) {
	service := NewService(testEngine)

	artifact, err := service.GenerateProof(testRequest(t, "100000"))
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	// Claim the flag was 1 even though the salary is below the threshold.
	tampered := []string{"1", artifact.PublicSignals[SignalThreshold], artifact.PublicSignals[SignalCommitment]}
	ok, err := testEngine.Verify(artifact.ProofBytes, tampered)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Expected verification to fail for tampered signals")
	}
}

func TestVerifyRejectsGarbageProof(t *testing.T) {
	req := testRequest(t, "50000")
	_, err := testEngine.Verify([]byte{0xde, 0xad, 0xbe, 0xef}, []string{"1", "50000", req.Commitment})
	if reasoncodes.CodeOf(err) != reasoncodes.ErrInvalidProof {
		t.Errorf("Expected InvalidProof, got %v", err)
	}
}

func TestGenerateProofRejectsMismatchedWitness(t *testing.T) {
	service := NewService(testEngine)

	req := testRequest(t, "50000")
	req.Nonce = "42" // does not reproduce the commitment

	_, err := service.GenerateProof(req)
	if reasoncodes.CodeOf(err) != reasoncodes.ErrWitnessInvalid {
		t.Errorf("Expected WitnessInvalid, got %v", err)
	}
}

func TestGenerateProofRejectsMalformedInputs(t *testing.T) {
	service := NewService(testEngine)

	tests := []struct {
		name   string
		mutate func(*GenerateRequest)
	}{
		{"salary not decimal", func(r *GenerateRequest) { r.Salary = "lots" }},
		{"negative threshold", func(r *GenerateRequest) { r.Threshold = "-1" }},
		{"nonce not decimal", func(r *GenerateRequest) { r.Nonce = "0xff" }},
		{"commitment not decimal", func(r *GenerateRequest) { r.Commitment = "zzz" }},
		{"malformed address", func(r *GenerateRequest) { r.EmployeeAddress = "0x123" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(t, "50000")
			tt.mutate(&req)
			_, err := service.GenerateProof(req)
			if reasoncodes.CodeOf(err) != reasoncodes.ErrInvalidInput {
				t.Errorf("Expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestParseSignals(t *testing.T) {
	_, _, _, err := ParseSignals([]string{"1", "50000"})
	if reasoncodes.CodeOf(err) != reasoncodes.ErrInvalidInput {
		t.Errorf("Expected InvalidInput for a short signal list, got %v", err)
	}

	valid, threshold, value, err := ParseSignals([]string{"1", "50000", "12345"})
	if err != nil {
		t.Fatalf("ParseSignals failed: %v", err)
	}
	if valid.Int64() != 1 || threshold.Int64() != 50000 || value.Int64() != 12345 {
		t.Error("Parsed signal values do not match the inputs")
	}
}
