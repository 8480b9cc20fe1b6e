package games

import (
	"context"
	"database/sql"
	"errors"
)

var ErrGameNotFound = errors.New("game not found")

type Game struct {
	ID         int64
	Name       string
	Category   string
	Price      int64
	Publisher  string
	SalesCount int64
}

// SalesStat is one row of the admin sales report. TotalSales is counted
// live from library rows, not read from the cached counter, so the
// report doubles as a reconciliation view.
type SalesStat struct {
	Game       Game
	TotalSales int64
	Revenue    int64
}

type Games interface {
	// Get is the catalog lookup: current identity and price by id.
	Get(ctx context.Context, gameID int64) (Game, error)

	// Lock acquires a FOR UPDATE lock on the game row. Callers locking
	// several games must do so in ascending id order.
	Lock(tx *sql.Tx, gameID int64) error

	IncrementSales(tx *sql.Tx, gameID int64) error

	// DecrementSales lowers the sales counter by one, clamped at zero.
	// It reports whether the clamp fired (counter was already zero).
	DecrementSales(tx *sql.Tx, gameID int64) (clamped bool, err error)

	Statistics(ctx context.Context) ([]SalesStat, error)
}
