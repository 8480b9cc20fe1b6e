package transactions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/transactions"
)

func (r *ledgerRepo) Append(tx *sql.Tx, rec transactions.Record) error {
	_, err := tx.Exec(`
		INSERT INTO transactions (user_id, type, amount, game_id, batch_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.UserID, rec.Type, rec.Amount, rec.GameID, rec.BatchID, rec.Description)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}

	return nil
}

func (r *ledgerRepo) History(ctx context.Context, userID int64) ([]transactions.Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.user_id, t.type, t.amount, t.game_id, g.name,
		       t.batch_id, t.description, t.created_at
		FROM transactions t
		LEFT JOIN games g ON g.id = t.game_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var history []transactions.Row

	for rows.Next() {
		var row transactions.Row

		err = rows.Scan(
			&row.ID, &row.UserID, &row.Type, &row.Amount, &row.GameID,
			&row.GameName, &row.BatchID, &row.Description, &row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}

		history = append(history, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return history, nil
}

func (r *ledgerRepo) NetBalance(ctx context.Context, userID int64) (int64, error) {
	var net int64

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(
			CASE type
				WHEN 'purchase' THEN -amount
				ELSE amount
			END
		), 0)
		FROM transactions
		WHERE user_id = $1
	`, userID).Scan(&net)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}

	return net, nil
}
