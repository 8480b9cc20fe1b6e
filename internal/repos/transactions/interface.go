package transactions

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDeposit  Type = "deposit"
	TypePurchase Type = "purchase"
	TypeRefund   Type = "refund"
)

// Record is one ledger line to append. Amount is a positive magnitude;
// direction is implied by Type. GameID is nil for deposits. BatchID
// groups the purchase lines of a single checkout.
type Record struct {
	UserID      int64
	Type        Type
	Amount      int64
	GameID      *int64
	BatchID     *uuid.UUID
	Description string
}

// Row is a persisted ledger line joined with the game name when the
// game still exists.
type Row struct {
	ID          int64
	UserID      int64
	Type        Type
	Amount      int64
	GameID      *int64
	GameName    *string
	BatchID     *uuid.UUID
	Description string
	CreatedAt   time.Time
}

// Ledgers is the append-only transaction log. There is deliberately no
// update or delete operation; corrections happen by appending refunds.
type Ledgers interface {
	Append(tx *sql.Tx, rec Record) error

	// History returns the user's ledger, newest first.
	History(ctx context.Context, userID int64) ([]Row, error)

	// NetBalance replays the ledger: deposits plus refunds minus
	// purchases. At rest it must equal the cached wallet balance.
	NetBalance(ctx context.Context, userID int64) (int64, error)
}
