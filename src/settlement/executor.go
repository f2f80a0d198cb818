package settlement

import (
	"gorm.io/gorm"

	"github.com/KaushikKC/VeilPay/src/ledger"
	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/utilities"
)

// Executor settles payroll: it transfers stablecoin and appends the
// salary commitment to the ledger as one atomic unit. It acts under its
// own address, which must be an authorized writer on the ledger.
type Executor struct {
	db      *gorm.DB
	repo    Repository
	ledger  *ledger.Service
	owner   string
	address string
}

func NewExecutor(db *gorm.DB, repo Repository, ledgerService *ledger.Service, owner, address string) *Executor {
	return &Executor{
		db:      db,
		repo:    repo,
		ledger:  ledgerService,
		owner:   owner,
		address: address,
	}
}

// Address is the identity the executor writes to the ledger with.
func (e *Executor) Address() string {
	return e.address
}

// Pay transfers amount from the employer to the subject and appends the
// commitment. Any failure rolls back both effects.
func (e *Executor) Pay(employer, subject string, amount uint64, commitmentHex string) error {
	employer, subject, err := validatePayment(employer, subject, amount)
	if err != nil {
		return err
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		return e.settleOne(tx, employer, subject, amount, commitmentHex)
	})
	if err != nil {
		return err
	}

	logger.Default().Infof("Payment of %d settled from %s to %s", amount, employer, subject)
	return nil
}

// BatchPay settles a whole payroll run. A failure on any tuple aborts
// the entire batch; partial payroll runs are operationally dangerous.
func (e *Executor) BatchPay(employer string, subjects []string, amounts []uint64, commitments []string) error {
	if len(subjects) != len(amounts) || len(subjects) != len(commitments) {
		return reasoncodes.NewError(reasoncodes.ErrArrayLengthMismatch, "subjects, amounts and commitments must align")
	}

	type tuple struct {
		subject string
		amount  uint64
	}
	validated := make([]tuple, len(subjects))
	for i := range subjects {
		emp, subj, err := validatePayment(employer, subjects[i], amounts[i])
		if err != nil {
			return err
		}
		employer = emp
		validated[i] = tuple{subject: subj, amount: amounts[i]}
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		for i, v := range validated {
			if err := e.settleOne(tx, employer, v.subject, v.amount, commitments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Default().Infof("Batch of %d payments settled for %s", len(subjects), employer)
	return nil
}

func (e *Executor) settleOne(tx *gorm.DB, employer, subject string, amount uint64, commitmentHex string) error {
	repo := e.repo.WithTx(tx)

	token, err := repo.ActiveToken()
	if err != nil {
		return err
	}
	if err := repo.Debit(token, employer, amount); err != nil {
		return err
	}
	if err := repo.Credit(token, subject, amount); err != nil {
		return err
	}
	return e.ledger.AppendCommitmentTx(tx, e.address, employer, subject, commitmentHex)
}

// SetStablecoin selects the settlement token. Owner-only.
func (e *Executor) SetStablecoin(caller, token string) error {
	caller, err := utilities.NormalizeAddress(caller)
	if err != nil {
		return err
	}
	if caller != e.owner {
		return reasoncodes.NewError(reasoncodes.ErrUnauthorized, "only the owner may update the stablecoin")
	}
	if token == "" {
		return reasoncodes.NewError(reasoncodes.ErrInvalidInput, "token must not be empty")
	}
	return e.repo.SetActiveToken(token)
}

// Mint funds an address on the active token; the settlement asset is a
// mock faucet coin.
func (e *Executor) Mint(address string, amount uint64) error {
	address, err := utilities.NormalizeAddress(address)
	if err != nil {
		return err
	}
	if amount == 0 {
		return reasoncodes.NewError(reasoncodes.ErrZeroAmount, "amount must be positive")
	}
	token, err := e.repo.ActiveToken()
	if err != nil {
		return err
	}
	return e.repo.Credit(token, address, amount)
}

func (e *Executor) BalanceOf(address string) (uint64, error) {
	address, err := utilities.NormalizeAddress(address)
	if err != nil {
		return 0, err
	}
	token, err := e.repo.ActiveToken()
	if err != nil {
		return 0, err
	}
	return e.repo.BalanceOf(token, address)
}

func validatePayment(employer, subject string, amount uint64) (string, string, error) {
	employer, err := utilities.NormalizeAddress(employer)
	if err != nil {
		return "", "", err
	}
	subject, err = utilities.NormalizeAddress(subject)
	if err != nil {
		return "", "", err
	}
	if utilities.IsZeroAddress(subject) {
		return "", "", reasoncodes.NewError(reasoncodes.ErrZeroAddress, "subject is the zero address")
	}
	if amount == 0 {
		return "", "", reasoncodes.NewError(reasoncodes.ErrZeroAmount, "amount must be positive")
	}
	return employer, subject, nil
}
