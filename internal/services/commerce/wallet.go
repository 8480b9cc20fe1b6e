package commerce

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/transactions"
)

// Deposit credits the wallet and appends a deposit ledger line in one
// transaction. Amount must be positive; a configured wallet cap
// (WalletMaxBalance > 0) rejects deposits that would exceed it.
func (s *Service) Deposit(ctx context.Context, userID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		u, err := s.users.LockAndGet(tx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		if !u.CanTransact() {
			return ErrAdminNotAllowed
		}

		if s.cfg.WalletMaxBalance > 0 && u.WalletBalance > s.cfg.WalletMaxBalance-amount {
			return ErrDepositLimitExceeded
		}

		err = s.users.IncreaseBalance(tx, userID, amount)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		err = s.ledger.Append(tx, transactions.Record{
			UserID:      userID,
			Type:        transactions.TypeDeposit,
			Amount:      amount,
			Description: "Wallet deposit",
		})
		if err != nil {
			return fmt.Errorf("append deposit: %w", err)
		}

		newBalance = u.WalletBalance + amount

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deposit: %w", err)
	}

	return newBalance, nil
}

// Balance returns the user's cached wallet balance (no locks).
func (s *Service) Balance(ctx context.Context, userID int64) (int64, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return u.WalletBalance, nil
}

// History returns the user's ledger, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]transactions.Row, error) {
	rows, err := s.ledger.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger history: %w", err)
	}

	return rows, nil
}
