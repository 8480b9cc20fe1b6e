package users

import (
	"database/sql"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/users"
)

func (r *usersRepo) DecreaseBalance(tx *sql.Tx, userID int64, amount int64) error {
	res, err := tx.Exec(`
		UPDATE users
		SET wallet_balance = wallet_balance - $2
		WHERE id = $1
		  AND wallet_balance >= $2
	`, userID, amount)
	if err != nil {
		return fmt.Errorf("decrease balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return users.ErrInsufficientFunds
	}

	return nil
}
