package commerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryView(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	seedGame(t, db, 11, "Drift Kings", 90000)
	buyGame(t, svc, db, 1, 10)
	buyGame(t, svc, db, 1, 11)

	// One purchase inside the window, one well past it.
	backdatePurchase(t, db, 1, 11, 72*time.Hour)

	owned, err := svc.Library(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, owned, 2)

	byID := map[int64]OwnedGame{}
	for _, o := range owned {
		byID[o.GameID] = o
	}

	assert.True(t, byID[10].CanRefund)
	assert.False(t, byID[11].CanRefund)
	assert.EqualValues(t, 120000, byID[10].PricePaid)
}

func TestOwns(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)

	owns, err := svc.Owns(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.False(t, owns)

	buyGame(t, svc, db, 1, 10)

	owns, err = svc.Owns(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.True(t, owns)
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	seedUser(t, db, 1, "minh", 500000, false)
	seedUser(t, db, 2, "lan", 500000, false)
	seedGame(t, db, 10, "Starfall", 120000)
	seedGame(t, db, 11, "Drift Kings", 90000)

	buyGame(t, svc, db, 1, 10)
	buyGame(t, svc, db, 2, 10)
	buyGame(t, svc, db, 2, 11)

	report, err := svc.Statistics(t.Context())
	require.NoError(t, err)
	require.Len(t, report.Games, 2)

	// Sorted by total sales, best seller first.
	assert.EqualValues(t, 10, report.Games[0].Game.ID)
	assert.EqualValues(t, 2, report.Games[0].TotalSales)
	assert.EqualValues(t, 240000, report.Games[0].Revenue)

	assert.EqualValues(t, 3, report.Summary.TotalSales)
	assert.EqualValues(t, 330000, report.Summary.TotalRevenue)
	assert.EqualValues(t, 2, report.Summary.TotalGames)

	// A refund leaves the report counting live ownership only.
	_, err = svc.Refund(t.Context(), 2, 10)
	require.NoError(t, err)

	report, err = svc.Statistics(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 2, report.Summary.TotalSales)
	assert.EqualValues(t, 210000, report.Summary.TotalRevenue)
}
