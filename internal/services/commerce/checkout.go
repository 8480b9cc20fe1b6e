package commerce

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/library"
	"github.com/phamdv/gamestore/internal/repos/transactions"
)

// Checkout converts the user's entire cart into purchases in one
// database transaction:
//
//  1. Lock the user row, reject admins.
//  2. Read the cart joined with current prices; reject if empty.
//  3. Lock affected game rows in ascending id order.
//  4. Reject if the locked balance does not cover the total.
//  5. Debit the wallet, insert library entries with the prices read in
//     step 2, bump sales counters, append one purchase ledger line per
//     game (sharing a batch id), clear the cart.
//
// Either every effect of step 5 commits or none does. Returns the new
// balance.
func (s *Service) Checkout(ctx context.Context, userID int64) (int64, error) {
	var newBalance int64

	batchID := uuid.New()

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		u, err := s.users.LockAndGet(tx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		if !u.CanTransact() {
			return ErrAdminNotAllowed
		}

		items, err := s.carts.ItemsTx(tx, userID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}

		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Lock game rows in ascending id order so two checkouts
		// touching the same games cannot deadlock.
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.GameID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			err = s.games.Lock(tx, id)
			if err != nil {
				return fmt.Errorf("lock game %d: %w", id, err)
			}
		}

		var total int64
		for _, it := range items {
			total += it.Price
		}

		if u.WalletBalance < total {
			return ErrInsufficientFunds
		}

		err = s.users.DecreaseBalance(tx, userID, total)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		purchasedAt := s.now().UTC()

		for _, it := range items {
			err = s.library.Insert(tx, library.Entry{
				UserID:      userID,
				GameID:      it.GameID,
				PricePaid:   it.Price,
				PurchasedAt: purchasedAt,
			})
			if err != nil {
				// ErrAlreadyOwned here means a concurrent checkout won
				// the same game; the whole unit rolls back untouched.
				return fmt.Errorf("insert library entry: %w", err)
			}

			err = s.games.IncrementSales(tx, it.GameID)
			if err != nil {
				return fmt.Errorf("increment sales: %w", err)
			}

			gameID := it.GameID

			err = s.ledger.Append(tx, transactions.Record{
				UserID:      userID,
				Type:        transactions.TypePurchase,
				Amount:      it.Price,
				GameID:      &gameID,
				BatchID:     &batchID,
				Description: "Purchase: " + it.Name,
			})
			if err != nil {
				return fmt.Errorf("append purchase: %w", err)
			}
		}

		err = s.carts.Clear(tx, userID)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		newBalance = u.WalletBalance - total

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("checkout: %w", err)
	}

	return newBalance, nil
}
