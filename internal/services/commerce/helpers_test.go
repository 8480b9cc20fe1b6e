package commerce

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phamdv/gamestore/internal/config"
	"github.com/phamdv/gamestore/internal/infra/pgtestutil"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	db, cleanup := pgtestutil.NewTestDB(t)
	t.Cleanup(cleanup)

	svc := New(db, config.CommerceConfig{RefundWindow: 48 * time.Hour})

	return svc, db
}

func seedUser(t *testing.T, db *sql.DB, id int64, username string, balance int64, isAdmin bool) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO users (id, username, wallet_balance, is_admin) VALUES ($1, $2, $3, $4)`,
		id, username, balance, isAdmin)
	require.NoError(t, err)
}

func seedGame(t *testing.T, db *sql.DB, id int64, name string, price int64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO games (id, name, category, price) VALUES ($1, $2, 'Action', $3)`,
		id, name, price)
	require.NoError(t, err)
}

func seedCartRow(t *testing.T, db *sql.DB, userID, gameID int64) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO cart (user_id, game_id) VALUES ($1, $2)`, userID, gameID)
	require.NoError(t, err)
}

func walletBalance(t *testing.T, db *sql.DB, userID int64) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(`SELECT wallet_balance FROM users WHERE id = $1`, userID).Scan(&n)
	require.NoError(t, err)

	return n
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(query, args...).Scan(&n)
	require.NoError(t, err)

	return n
}

func salesCount(t *testing.T, db *sql.DB, gameID int64) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(`SELECT sales_count FROM games WHERE id = $1`, gameID).Scan(&n)
	require.NoError(t, err)

	return n
}

// backdatePurchase shifts a library entry's purchase time into the
// past without going through the service.
func backdatePurchase(t *testing.T, db *sql.DB, userID, gameID int64, age time.Duration) {
	t.Helper()

	res, err := db.Exec(
		`UPDATE library SET purchased_at = now() - make_interval(secs => $3) WHERE user_id = $1 AND game_id = $2`,
		userID, gameID, age.Seconds())
	require.NoError(t, err)

	n, err := res.RowsAffected()
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}
