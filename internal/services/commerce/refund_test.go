package commerce

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamdv/gamestore/internal/repos/games"
	"github.com/phamdv/gamestore/internal/repos/transactions"
)

// buyGame runs a real checkout of a single game so refund tests start
// from genuine purchase state.
func buyGame(t *testing.T, svc *Service, db *sql.DB, userID, gameID int64) {
	t.Helper()

	seedCartRow(t, db, userID, gameID)
	_, err := svc.Checkout(t.Context(), userID)
	require.NoError(t, err)
}

func TestRefund(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	buyGame(t, svc, db, 1, 10)

	newBalance, err := svc.Refund(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 500000, newBalance)
	assert.EqualValues(t, 500000, walletBalance(t, db, 1))

	assert.EqualValues(t, 0, countRows(t, db, `SELECT count(*) FROM library WHERE user_id = $1`, 1))
	assert.EqualValues(t, 0, salesCount(t, db, 10))

	rows, err := svc.History(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, transactions.TypeRefund, rows[0].Type)
	assert.EqualValues(t, 120000, rows[0].Amount)

	// A refund is one-shot: the entry is gone.
	_, err = svc.Refund(t.Context(), 1, 10)
	require.ErrorIs(t, err, ErrNotOwned)
}

func TestRefund_WindowEdges(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	seedGame(t, db, 11, "Drift Kings", 90000)
	buyGame(t, svc, db, 1, 10)
	buyGame(t, svc, db, 1, 11)

	backdatePurchase(t, db, 1, 10, 47*time.Hour)
	backdatePurchase(t, db, 1, 11, 49*time.Hour)

	_, err := svc.Refund(t.Context(), 1, 10)
	require.NoError(t, err)

	_, err = svc.Refund(t.Context(), 1, 11)
	require.ErrorIs(t, err, ErrRefundWindowExpired)

	// The expired attempt changed nothing.
	assert.EqualValues(t, 1, countRows(t, db, `SELECT count(*) FROM library WHERE user_id = $1`, 1))
	assert.EqualValues(t, 500000-90000, walletBalance(t, db, 1))
}

func TestRefund_ReturnsPricePaid(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	buyGame(t, svc, db, 1, 10)

	// Catalog price changes after purchase; the refund still returns
	// what was actually paid.
	_, err := db.Exec(`UPDATE games SET price = 200000 WHERE id = 10`)
	require.NoError(t, err)

	newBalance, err := svc.Refund(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 500000, newBalance)
}

func TestRefund_NotOwned(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)

	_, err := svc.Refund(t.Context(), 1, 10)
	require.ErrorIs(t, err, ErrNotOwned)

	_, err = svc.Refund(t.Context(), 1, 999)
	require.ErrorIs(t, err, games.ErrGameNotFound)
}

func TestRefund_ClampsSalesCounter(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	buyGame(t, svc, db, 1, 10)

	// Force counter drift.
	_, err := db.Exec(`UPDATE games SET sales_count = 0 WHERE id = 10`)
	require.NoError(t, err)

	// The refund still goes through; the counter stays at zero instead
	// of violating its constraint.
	_, err = svc.Refund(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, salesCount(t, db, 10))
	assert.EqualValues(t, 500000, walletBalance(t, db, 1))
}
