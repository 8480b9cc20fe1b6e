package library

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrAlreadyOwned  = errors.New("game already owned")
	ErrEntryNotFound = errors.New("library entry not found")
)

// Entry is an ownership row. PricePaid is frozen at purchase time and
// never tracks later catalog price changes.
type Entry struct {
	UserID      int64
	GameID      int64
	PricePaid   int64
	PurchasedAt time.Time
}

// OwnedGame is an Entry joined with catalog data for the library view.
type OwnedGame struct {
	Entry
	Name      string
	Category  string
	Publisher string
	Price     int64
}

type Libraries interface {
	// Insert records ownership. A concurrent purchase of the same game
	// surfaces as ErrAlreadyOwned via the unique key.
	Insert(tx *sql.Tx, e Entry) error

	// LockAndGet loads the entry FOR UPDATE, ErrEntryNotFound if absent.
	// Refund reads through here so a second refund of the same purchase
	// cannot observe the row.
	LockAndGet(tx *sql.Tx, userID, gameID int64) (Entry, error)

	Delete(tx *sql.Tx, userID, gameID int64) error

	Exists(tx *sql.Tx, userID, gameID int64) (bool, error)

	Owns(ctx context.Context, userID, gameID int64) (bool, error)

	// List returns owned games, newest purchase first.
	List(ctx context.Context, userID int64) ([]OwnedGame, error)

	// CountByGame counts live entries referencing the game; used to
	// reconcile the cached sales counter.
	CountByGame(ctx context.Context, gameID int64) (int64, error)
}
