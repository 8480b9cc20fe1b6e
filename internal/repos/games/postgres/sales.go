package games

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/games"
)

func (r *gamesRepo) Lock(tx *sql.Tx, gameID int64) error {
	var id int64

	err := tx.QueryRow(`
		SELECT id
		FROM games
		WHERE id = $1
		FOR UPDATE
	`, gameID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return games.ErrGameNotFound
		}

		return fmt.Errorf("lock game: %w", err)
	}

	return nil
}

func (r *gamesRepo) IncrementSales(tx *sql.Tx, gameID int64) error {
	_, err := tx.Exec(`
		UPDATE games
		SET sales_count = sales_count + 1
		WHERE id = $1
	`, gameID)
	if err != nil {
		return fmt.Errorf("increment sales: %w", err)
	}

	return nil
}

func (r *gamesRepo) DecrementSales(tx *sql.Tx, gameID int64) (bool, error) {
	res, err := tx.Exec(`
		UPDATE games
		SET sales_count = sales_count - 1
		WHERE id = $1
		  AND sales_count > 0
	`, gameID)
	if err != nil {
		return false, fmt.Errorf("decrement sales: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if affected > 0 {
		return false, nil
	}

	// Either the game is gone or the counter was already at zero.
	var exists bool

	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM games WHERE id = $1)
	`, gameID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check game exists: %w", err)
	}

	if !exists {
		return false, games.ErrGameNotFound
	}

	return true, nil
}
