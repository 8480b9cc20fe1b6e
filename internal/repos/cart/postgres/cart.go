package cart

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/cart"
)

const itemsQuery = `
	SELECT c.game_id, g.name, g.category, g.price
	FROM cart c
	JOIN games g ON g.id = c.game_id
	WHERE c.user_id = $1
	ORDER BY c.added_at, c.id
`

func (r *cartRepo) Insert(tx *sql.Tx, userID, gameID int64) error {
	_, err := tx.Exec(`
		INSERT INTO cart (user_id, game_id)
		VALUES ($1, $2)
	`, userID, gameID)
	if err != nil {
		if pgutils.IsUniqueViolation(err) {
			return cart.ErrAlreadyInCart
		}

		return fmt.Errorf("insert cart entry: %w", err)
	}

	return nil
}

func (r *cartRepo) Delete(ctx context.Context, userID, gameID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart
		WHERE user_id = $1 AND game_id = $2
	`, userID, gameID)
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	return nil
}

func (r *cartRepo) Items(ctx context.Context, userID int64) ([]cart.Item, error) {
	rows, err := r.db.QueryContext(ctx, itemsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}

	return scanItems(rows)
}

func (r *cartRepo) ItemsTx(tx *sql.Tx, userID int64) ([]cart.Item, error) {
	rows, err := tx.Query(itemsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}

	return scanItems(rows)
}

func (r *cartRepo) Clear(tx *sql.Tx, userID int64) error {
	_, err := tx.Exec(`
		DELETE FROM cart
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

func scanItems(rows *sql.Rows) ([]cart.Item, error) {
	defer rows.Close()

	var items []cart.Item

	for rows.Next() {
		var it cart.Item

		err := rows.Scan(&it.GameID, &it.Name, &it.Category, &it.Price)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}

		items = append(items, it)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	return items, nil
}
