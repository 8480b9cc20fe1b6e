package commerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamdv/gamestore/internal/config"
	"github.com/phamdv/gamestore/internal/infra/pgtestutil"
	"github.com/phamdv/gamestore/internal/repos/transactions"
	pgtransactions "github.com/phamdv/gamestore/internal/repos/transactions/postgres"
)

func TestDeposit(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	seedUser(t, db, 1, "minh", 100000, false)

	newBalance, err := svc.Deposit(t.Context(), 1, 50000)
	require.NoError(t, err)
	assert.EqualValues(t, 150000, newBalance)
	assert.EqualValues(t, 150000, walletBalance(t, db, 1))

	rows, err := svc.History(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, transactions.TypeDeposit, rows[0].Type)
	assert.EqualValues(t, 50000, rows[0].Amount)
	assert.Nil(t, rows[0].GameID)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	seedUser(t, db, 1, "minh", 100000, false)

	for _, amount := range []int64{0, -1, -50000} {
		_, err := svc.Deposit(t.Context(), 1, amount)
		require.ErrorIs(t, err, ErrInvalidAmount)
	}

	assert.EqualValues(t, 100000, walletBalance(t, db, 1))
	assert.EqualValues(t, 0, countRows(t, db, `SELECT count(*) FROM transactions WHERE user_id = $1`, 1))
}

func TestDeposit_WalletCap(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	t.Cleanup(cleanup)

	svc := New(db, config.CommerceConfig{
		RefundWindow:     48 * time.Hour,
		WalletMaxBalance: 1000000,
	})

	seedUser(t, db, 1, "minh", 900000, false)

	_, err := svc.Deposit(t.Context(), 1, 200000)
	require.ErrorIs(t, err, ErrDepositLimitExceeded)
	assert.EqualValues(t, 900000, walletBalance(t, db, 1))

	// Exactly reaching the cap is allowed.
	newBalance, err := svc.Deposit(t.Context(), 1, 100000)
	require.NoError(t, err)
	assert.EqualValues(t, 1000000, newBalance)
}

func TestDeposit_AdminRejected(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	seedUser(t, db, 1, "admin", 0, true)

	_, err := svc.Deposit(t.Context(), 1, 50000)
	require.ErrorIs(t, err, ErrAdminNotAllowed)
}

// After any mix of operations the cached balance must equal a replay
// of the ledger.
func TestWallet_LedgerReconciles(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 0, false)
	seedGame(t, db, 10, "Starfall", 120000)
	seedGame(t, db, 11, "Drift Kings", 90000)

	_, err := svc.Deposit(t.Context(), 1, 400000)
	require.NoError(t, err)

	seedCartRow(t, db, 1, 10)
	seedCartRow(t, db, 1, 11)
	_, err = svc.Checkout(t.Context(), 1)
	require.NoError(t, err)

	_, err = svc.Refund(t.Context(), 1, 11)
	require.NoError(t, err)

	net, err := pgtransactions.New(db).NetBalance(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, walletBalance(t, db, 1), net)
	assert.EqualValues(t, 400000-120000, net)
}
