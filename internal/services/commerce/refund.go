package commerce

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/library"
	"github.com/phamdv/gamestore/internal/repos/transactions"
)

// Refund reverses a purchase inside the refund window. The amount
// returned is the price recorded at purchase time, not the current
// catalog price. Deleting the library entry under lock makes the
// operation one-shot: a second refund of the same purchase reports
// ErrNotOwned.
func (s *Service) Refund(ctx context.Context, userID, gameID int64) (int64, error) {
	// Catalog read up front; never inside the critical section.
	g, err := s.games.Get(ctx, gameID)
	if err != nil {
		return 0, fmt.Errorf("catalog lookup: %w", err)
	}

	var newBalance int64

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		u, err := s.users.LockAndGet(tx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		if !u.CanTransact() {
			return ErrAdminNotAllowed
		}

		entry, err := s.library.LockAndGet(tx, userID, gameID)
		if err != nil {
			if errors.Is(err, library.ErrEntryNotFound) {
				return ErrNotOwned
			}

			return fmt.Errorf("lock library entry: %w", err)
		}

		if s.now().Sub(entry.PurchasedAt) > s.cfg.RefundWindow {
			return ErrRefundWindowExpired
		}

		err = s.library.Delete(tx, userID, gameID)
		if err != nil {
			return fmt.Errorf("delete library entry: %w", err)
		}

		err = s.users.IncreaseBalance(tx, userID, entry.PricePaid)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		clamped, err := s.games.DecrementSales(tx, gameID)
		if err != nil {
			return fmt.Errorf("decrement sales: %w", err)
		}

		if clamped {
			// Counter and library rows disagree; keep it at zero and
			// leave a trace for reconciliation.
			slog.Warn("sales counter already zero on refund",
				"game_id", gameID, "user_id", userID)
		}

		err = s.ledger.Append(tx, transactions.Record{
			UserID:      userID,
			Type:        transactions.TypeRefund,
			Amount:      entry.PricePaid,
			GameID:      &gameID,
			Description: "Refund: " + g.Name,
		})
		if err != nil {
			return fmt.Errorf("append refund: %w", err)
		}

		newBalance = u.WalletBalance + entry.PricePaid

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("refund: %w", err)
	}

	return newBalance, nil
}
