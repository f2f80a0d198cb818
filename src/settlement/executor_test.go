package settlement

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushikKC/VeilPay/src/database"
	"github.com/KaushikKC/VeilPay/src/ledger"
	"github.com/KaushikKC/VeilPay/src/queues"
	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

const (
	testOwner        = "0x0000000000000000000000000000000000000001"
	testExecutorAddr = "0x0000000000000000000000000000000000000002"
	testEmployer     = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testSubjectOne   = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testSubjectTwo   = "0xdddddddddddddddddddddddddddddddddddddddd"
)

func testCommitment(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

type fixture struct {
	executor *Executor
	ledger   *ledger.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.ConnectToDatabase("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db,
		&ledger.LedgerEntry{}, &ledger.Registration{}, &ledger.AuthorizedWriter{},
		&Balance{}, &StablecoinConfig{},
	))

	ledgerService := ledger.NewService(ledger.NewRepository(db), testOwner, queues.NoopPublisher{})
	require.NoError(t, ledgerService.SetAuthorizedWriter(testOwner, testExecutorAddr, true))
	require.NoError(t, ledgerService.RegisterEmployee(testEmployer, testSubjectOne))
	require.NoError(t, ledgerService.RegisterEmployee(testEmployer, testSubjectTwo))

	executor := NewExecutor(db, NewRepository(db), ledgerService, testOwner, testExecutorAddr)
	return fixture{executor: executor, ledger: ledgerService}
}

func TestPayTransfersAndAppends(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.executor.Mint(testEmployer, 10000))

	require.NoError(t, f.executor.Pay(testEmployer, testSubjectOne, 3000, testCommitment(1)))

	employerBalance, err := f.executor.BalanceOf(testEmployer)
	require.NoError(t, err)
	assert.EqualValues(t, 7000, employerBalance)

	subjectBalance, err := f.executor.BalanceOf(testSubjectOne)
	require.NoError(t, err)
	assert.EqualValues(t, 3000, subjectBalance)

	latest, err := f.ledger.Latest(testSubjectOne)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, testCommitment(1), latest.Commitment)
	assert.Equal(t, testEmployer, latest.Employer)
}

func TestPayInsufficientFundsRollsBack(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.executor.Mint(testEmployer, 100))

	err := f.executor.Pay(testEmployer, testSubjectOne, 3000, testCommitment(1))
	assert.Equal(t, reasoncodes.ErrInsufficientFunds, reasoncodes.CodeOf(err))

	// Nothing moved and nothing was appended.
	subjectBalance, err := f.executor.BalanceOf(testSubjectOne)
	require.NoError(t, err)
	assert.EqualValues(t, 0, subjectBalance)

	count, err := f.ledger.Count(testSubjectOne)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestPayValidation(t *testing.T) {
	f := newFixture(t)

	err := f.executor.Pay(testEmployer, "0x0000000000000000000000000000000000000000", 100, testCommitment(1))
	assert.Equal(t, reasoncodes.ErrZeroAddress, reasoncodes.CodeOf(err))

	err = f.executor.Pay(testEmployer, testSubjectOne, 0, testCommitment(1))
	assert.Equal(t, reasoncodes.ErrZeroAmount, reasoncodes.CodeOf(err))
}

func TestPayUnregisteredSubject(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.executor.Mint(testEmployer, 10000))

	err := f.executor.Pay(testEmployer, "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", 100, testCommitment(1))
	assert.Equal(t, reasoncodes.ErrNotEmployer, reasoncodes.CodeOf(err))

	balance, err := f.executor.BalanceOf(testEmployer)
	require.NoError(t, err)
	assert.EqualValues(t, 10000, balance)
}

func TestBatchPay(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.executor.Mint(testEmployer, 10000))

	err := f.executor.BatchPay(testEmployer,
		[]string{testSubjectOne, testSubjectTwo},
		[]uint64{3000, 4000},
		[]string{testCommitment(1), testCommitment(2)},
	)
	require.NoError(t, err)

	employerBalance, err := f.executor.BalanceOf(testEmployer)
	require.NoError(t, err)
	assert.EqualValues(t, 3000, employerBalance)

	for i, subject := range []string{testSubjectOne, testSubjectTwo} {
		latest, err := f.ledger.Latest(subject)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, testCommitment(i+1), latest.Commitment)
	}
}

func TestBatchPayLengthMismatch(t *testing.T) {
	f := newFixture(t)

	err := f.executor.BatchPay(testEmployer,
		[]string{testSubjectOne, testSubjectTwo},
		[]uint64{3000},
		[]string{testCommitment(1), testCommitment(2)},
	)
	assert.Equal(t, reasoncodes.ErrArrayLengthMismatch, reasoncodes.CodeOf(err))
}

func TestBatchPayAbortsWholeBatch(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.executor.Mint(testEmployer, 5000))

	// The second payment overdraws; the first must roll back with it.
	err := f.executor.BatchPay(testEmployer,
		[]string{testSubjectOne, testSubjectTwo},
		[]uint64{3000, 4000},
		[]string{testCommitment(1), testCommitment(2)},
	)
	assert.Equal(t, reasoncodes.ErrInsufficientFunds, reasoncodes.CodeOf(err))

	employerBalance, err := f.executor.BalanceOf(testEmployer)
	require.NoError(t, err)
	assert.EqualValues(t, 5000, employerBalance)

	for _, subject := range []string{testSubjectOne, testSubjectTwo} {
		balance, err := f.executor.BalanceOf(subject)
		require.NoError(t, err)
		assert.EqualValues(t, 0, balance)

		count, err := f.ledger.Count(subject)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	}
}

func TestSetStablecoin(t *testing.T) {
	f := newFixture(t)

	err := f.executor.SetStablecoin(testEmployer, "musdt")
	assert.Equal(t, reasoncodes.ErrUnauthorized, reasoncodes.CodeOf(err))

	require.NoError(t, f.executor.SetStablecoin(testOwner, "musdt"))

	// Balances are tracked per token; the old token's funds stay behind.
	require.NoError(t, f.executor.Mint(testEmployer, 500))
	balance, err := f.executor.BalanceOf(testEmployer)
	require.NoError(t, err)
	assert.EqualValues(t, 500, balance)
}

func TestSetStablecoinRejectsEmptyToken(t *testing.T) {
	f := newFixture(t)

	err := f.executor.SetStablecoin(testOwner, "")
	assert.Equal(t, reasoncodes.ErrInvalidInput, reasoncodes.CodeOf(err))
}
