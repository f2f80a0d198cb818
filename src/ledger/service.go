package ledger

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/queues"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/utilities"
)

var commitmentPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Service is the commitment ledger state machine. Every call is a
// single serialized state transition; callers are identified by
// explicit addresses, the on-ledger msg.sender equivalent.
type Service struct {
	repo      Repository
	owner     string
	publisher queues.EventPublisher
}

func NewService(repo Repository, owner string, publisher queues.EventPublisher) *Service {
	return &Service{repo: repo, owner: owner, publisher: publisher}
}

func (s *Service) RegisterEmployee(employer, subject string) error {
	employer, subject, err := normalizePair(employer, subject)
	if err != nil {
		return err
	}

	exists, err := s.repo.HasRegistration(employer, subject)
	if err != nil {
		return err
	}
	if exists {
		return reasoncodes.NewErrorf(reasoncodes.ErrAlreadyRegistered, "%s already registered by %s", subject, employer)
	}

	if err := s.repo.CreateRegistration(&Registration{Employer: employer, Subject: subject}); err != nil {
		return err
	}
	logger.Default().Infof("Employee %s registered by %s", subject, employer)
	return nil
}

func (s *Service) RemoveEmployee(employer, subject string) error {
	employer, subject, err := normalizePair(employer, subject)
	if err != nil {
		return err
	}

	removed, err := s.repo.DeleteRegistration(employer, subject)
	if err != nil {
		return err
	}
	if !removed {
		return reasoncodes.NewErrorf(reasoncodes.ErrNotRegistered, "%s is not registered by %s", subject, employer)
	}
	return nil
}

func (s *Service) IsEmployeeOf(employer, subject string) (bool, error) {
	employer, subject, err := normalizePair(employer, subject)
	if err != nil {
		return false, err
	}
	return s.repo.HasRegistration(employer, subject)
}

// AppendCommitment appends a LedgerEntry. The caller must be the
// employer itself or an authorized writer, and the employer must hold a
// current registration for the subject.
func (s *Service) AppendCommitment(caller, employer, subject, commitmentHex string) error {
	return s.appendCommitment(s.repo, caller, employer, subject, commitmentHex)
}

// AppendCommitmentTx is AppendCommitment inside an existing transaction;
// the settlement executor uses it so payment and append commit or roll
// back as one unit.
func (s *Service) AppendCommitmentTx(tx *gorm.DB, caller, employer, subject, commitmentHex string) error {
	return s.appendCommitment(s.repo.WithTx(tx), caller, employer, subject, commitmentHex)
}

func (s *Service) appendCommitment(repo Repository, caller, employer, subject, commitmentHex string) error {
	employer, subject, err := normalizePair(employer, subject)
	if err != nil {
		return err
	}
	caller, err = utilities.NormalizeAddress(caller)
	if err != nil {
		return err
	}
	if !commitmentPattern.MatchString(commitmentHex) {
		return reasoncodes.NewError(reasoncodes.ErrInvalidInput, "commitment must be a 0x-prefixed 32-byte hex value")
	}

	if caller != employer {
		authorized, err := repo.IsWriter(caller)
		if err != nil {
			return err
		}
		if !authorized {
			return reasoncodes.NewErrorf(reasoncodes.ErrUnauthorized, "%s may not write for %s", caller, employer)
		}
	}

	registered, err := repo.HasRegistration(employer, subject)
	if err != nil {
		return err
	}
	if !registered {
		return reasoncodes.NewErrorf(reasoncodes.ErrNotEmployer, "%s has not registered %s", employer, subject)
	}

	entry := &LedgerEntry{
		Subject:    subject,
		Employer:   employer,
		Commitment: strings.ToLower(commitmentHex),
		Timestamp:  time.Now().Unix(),
	}
	if err := repo.AppendEntry(entry); err != nil {
		return err
	}

	event := queues.PayrollCommittedEvent{
		Employer:   employer,
		Subject:    subject,
		Commitment: entry.Commitment,
		Timestamp:  entry.Timestamp,
	}
	if err := s.publisher.Publish(queues.QueuePayrollCommitted, event); err != nil {
		logger.Default().Errorf(err, "Can't publish payroll.committed")
	}
	return nil
}

func (s *Service) Latest(subject string) (*LedgerEntry, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}
	return s.repo.LatestEntry(subject)
}

func (s *Service) Count(subject string) (int64, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return 0, err
	}
	return s.repo.CountEntries(subject)
}

func (s *Service) All(subject string) ([]LedgerEntry, error) {
	subject, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}
	return s.repo.EntriesOf(subject)
}

func (s *Service) GetEmployees(employer string) ([]string, error) {
	employer, err := utilities.NormalizeAddress(employer)
	if err != nil {
		return nil, err
	}
	return s.repo.EmployeesOf(employer)
}

// SetAuthorizedWriter toggles write access for an address. Owner-only.
func (s *Service) SetAuthorizedWriter(caller, address string, enabled bool) error {
	caller, err := utilities.NormalizeAddress(caller)
	if err != nil {
		return err
	}
	if caller != s.owner {
		return reasoncodes.NewError(reasoncodes.ErrUnauthorized, "only the owner may authorize writers")
	}
	address, err = utilities.NormalizeAddress(address)
	if err != nil {
		return err
	}
	return s.repo.SetWriter(address, enabled)
}

func (s *Service) IsAuthorizedWriter(address string) (bool, error) {
	address, err := utilities.NormalizeAddress(address)
	if err != nil {
		return false, err
	}
	return s.repo.IsWriter(address)
}

func normalizePair(employer, subject string) (string, string, error) {
	e, err := utilities.NormalizeAddress(employer)
	if err != nil {
		return "", "", err
	}
	sNorm, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return "", "", err
	}
	if utilities.IsZeroAddress(sNorm) {
		return "", "", reasoncodes.NewError(reasoncodes.ErrZeroAddress, "subject is the zero address")
	}
	return e, sNorm, nil
}
