package zkp

import (
	"bytes"
	"strings"
	"testing"
)

func TestLedgerCallRoundTrip(t *testing.T) {
	proofBytes := []byte{1, 2, 3, 4}
	witnessBytes := []byte{9, 8, 7}

	encoded, err := EncodeLedgerCall(proofBytes, witnessBytes)
	if err != nil {
		t.Fatalf("EncodeLedgerCall failed: %v", err)
	}
	if !strings.HasPrefix(encoded, "0x") {
		t.Errorf("Expected a 0x prefix, got %s", encoded)
	}

	gotProof, gotWitness, err := DecodeLedgerCall(encoded)
	if err != nil {
		t.Fatalf("DecodeLedgerCall failed: %v", err)
	}
	if !bytes.Equal(gotProof, proofBytes) || !bytes.Equal(gotWitness, witnessBytes) {
		t.Error("Round trip did not reproduce the envelope contents")
	}
}

func TestDecodeLedgerCallRejectsBadEncodings(t *testing.T) {
	if _, _, err := DecodeLedgerCall("abcdef"); err == nil {
		t.Error("Expected an error for a missing 0x prefix")
	}
	if _, _, err := DecodeLedgerCall("0xzz"); err == nil {
		t.Error("Expected an error for non-hex content")
	}
	if _, _, err := DecodeLedgerCall("0x0102"); err == nil {
		t.Error("Expected an error for a truncated envelope")
	}
}

func TestArtifactLedgerEncodingDecodes(t *testing.T) {
	service := NewService(testEngine)

	artifact, err := service.GenerateProof(testRequest(t, "50000"))
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	gotProof, gotWitness, err := DecodeLedgerCall(artifact.LedgerEncoding)
	if err != nil {
		t.Fatalf("DecodeLedgerCall failed: %v", err)
	}
	if !bytes.Equal(gotProof, artifact.ProofBytes) {
		t.Error("Envelope proof bytes do not match the artifact")
	}
	if len(gotWitness) == 0 {
		t.Error("Envelope is missing the public witness")
	}
}
