package commitment

import (
	"strconv"
	"time"

	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/utilities"
)

type CreatedCommitment struct {
	Commitment        string `json:"commitment"`
	CommitmentDecimal string `json:"commitmentDecimal"`
	Nonce             string `json:"nonce"`
	EmployeeAddress   string `json:"employeeAddress"`
	Salary            uint64 `json:"salary"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateCommitment draws a fresh nonce, commits to the salary and stores
// the secret triple for later proof generation.
func (s *Service) CreateCommitment(subject string, salary uint64) (*CreatedCommitment, error) {
	addr, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}

	nonce, err := NewNonce()
	if err != nil {
		return nil, err
	}

	value, err := Commit(addr, salary, nonce)
	if err != nil {
		return nil, err
	}

	secret := &EmployeeSecret{
		Subject:       addr,
		Salary:        strconv.FormatUint(salary, 10),
		Nonce:         nonce.String(),
		Commitment:    value.String(),
		CommitmentHex: ToBytes32Hex(value),
		Timestamp:     time.Now().UnixMilli(),
	}
	if err := s.repo.Save(secret); err != nil {
		return nil, err
	}

	logger.Default().Infof("Commitment created for %s", addr)

	return &CreatedCommitment{
		Commitment:        secret.CommitmentHex,
		CommitmentDecimal: secret.Commitment,
		Nonce:             secret.Nonce,
		EmployeeAddress:   addr,
		Salary:            salary,
	}, nil
}

func (s *Service) GetEmployee(subject string) (*EmployeeSecret, error) {
	addr, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBySubject(addr)
}

func (s *Service) GetAll() ([]EmployeeSecret, error) {
	return s.repo.GetAll()
}
