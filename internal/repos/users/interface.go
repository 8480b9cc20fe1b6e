package users

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type User struct {
	ID            int64
	Username      string
	DisplayName   string
	WalletBalance int64
	IsAdmin       bool
}

// CanTransact reports whether the user may hold a cart, buy, refund or
// deposit. Admin accounts manage the catalog and never own games.
func (u User) CanTransact() bool {
	return !u.IsAdmin
}

type Users interface {
	// Get is an unlocked read for request-scoped lookups.
	Get(ctx context.Context, userID int64) (User, error)

	// LockAndGet acquires a FOR UPDATE lock on the user row and returns
	// it. Every wallet mutation starts here so that concurrent
	// operations on the same user serialize.
	LockAndGet(tx *sql.Tx, userID int64) (User, error)

	IncreaseBalance(tx *sql.Tx, userID int64, amount int64) error
	DecreaseBalance(tx *sql.Tx, userID int64, amount int64) error
}
