package proofstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

// StoredProof is one registry record: the artifact plus the handoff
// context a verifier needs.
type StoredProof struct {
	Artifact        zkp.ProofArtifact `json:"artifact"`
	Threshold       string            `json:"threshold"`
	EmployeeAddress string            `json:"employeeAddress"`
	StoredAt        time.Time         `json:"storedAt"`
}

// Store is the registry abstraction. Ids are generated independently of
// content so knowing a subject or threshold never lets a third party
// enumerate proofs. Writes are single-assignment per id.
type Store interface {
	Store(record StoredProof) (string, error)
	Retrieve(id string) (StoredProof, error)
	Sweep(olderThan time.Time) int
}

// InMemoryStore keeps records in a mutex-guarded map.
type InMemoryStore struct {
	mu sync.RWMutex
	m  map[string]StoredProof
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{m: make(map[string]StoredProof)}
}

func (s *InMemoryStore) Store(record StoredProof) (string, error) {
	if record.StoredAt.IsZero() {
		record.StoredAt = time.Now()
	}
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = record
	return id, nil
}

func (s *InMemoryStore) Retrieve(id string) (StoredProof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.m[id]
	if !ok {
		return StoredProof{}, reasoncodes.NewError(reasoncodes.ErrNotFound, "proof not found or expired")
	}
	return record, nil
}

// Sweep removes records stored before the cutoff and reports how many.
func (s *InMemoryStore) Sweep(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, record := range s.m {
		if record.StoredAt.Before(olderThan) {
			delete(s.m, id)
			removed++
		}
	}
	return removed
}
