package proofstore

import (
	"testing"
	"time"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

func sampleProof(subject string) StoredProof {
	return StoredProof{
		Artifact: zkp.ProofArtifact{
			ProofBytes:     []byte{1, 2, 3},
			PublicSignals:  []string{"1", "50000", "12345"},
			LedgerEncoding: "0x0102",
		},
		Threshold:       "50000",
		EmployeeAddress: subject,
	}
}

func TestStoreAndRetrieve(t *testing.T) {
	store := NewInMemoryStore()

	id, err := store.Store(sampleProof("0x1111111111111111111111111111111111111111"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a non-empty proof id")
	}

	// Retrieval is idempotent; the record stays put.
	for i := 0; i < 3; i++ {
		record, err := store.Retrieve(id)
		if err != nil {
			t.Fatalf("Retrieve %d failed: %v", i, err)
		}
		if record.EmployeeAddress != "0x1111111111111111111111111111111111111111" {
			t.Errorf("Unexpected subject %s", record.EmployeeAddress)
		}
	}
}

func TestStoreGeneratesDistinctIds(t *testing.T) {
	store := NewInMemoryStore()

	first, _ := store.Store(sampleProof("0x1111111111111111111111111111111111111111"))
	second, _ := store.Store(sampleProof("0x1111111111111111111111111111111111111111"))
	if first == second {
		t.Error("Identical records must still get distinct ids")
	}
}

func TestRetrieveUnknownId(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Retrieve("7b4720f2-8e58-4b2c-8f6a-111111111111")
	if reasoncodes.CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestSweepRemovesExpiredRecords(t *testing.T) {
	store := NewInMemoryStore()

	old := sampleProof("0x1111111111111111111111111111111111111111")
	old.StoredAt = time.Now().Add(-2 * time.Hour)
	oldId, _ := store.Store(old)

	freshId, _ := store.Store(sampleProof("0x2222222222222222222222222222222222222222"))

	removed := store.Sweep(time.Now().Add(-1 * time.Hour))
	if removed != 1 {
		t.Errorf("Expected 1 removal, got %d", removed)
	}

	if _, err := store.Retrieve(oldId); reasoncodes.CodeOf(err) != reasoncodes.ErrNotFound {
		t.Error("Expected the expired record to report NotFound")
	}
	if _, err := store.Retrieve(freshId); err != nil {
		t.Errorf("Fresh record should survive the sweep: %v", err)
	}
}
