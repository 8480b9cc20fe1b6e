package library

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/library"
)

func (r *libraryRepo) Insert(tx *sql.Tx, e library.Entry) error {
	_, err := tx.Exec(`
		INSERT INTO library (user_id, game_id, price_paid, purchased_at)
		VALUES ($1, $2, $3, $4)
	`, e.UserID, e.GameID, e.PricePaid, e.PurchasedAt)
	if err != nil {
		if pgutils.IsUniqueViolation(err) {
			return library.ErrAlreadyOwned
		}

		return fmt.Errorf("insert library entry: %w", err)
	}

	return nil
}

func (r *libraryRepo) LockAndGet(tx *sql.Tx, userID, gameID int64) (library.Entry, error) {
	e := library.Entry{UserID: userID, GameID: gameID}

	err := tx.QueryRow(`
		SELECT price_paid, purchased_at
		FROM library
		WHERE user_id = $1 AND game_id = $2
		FOR UPDATE
	`, userID, gameID).Scan(&e.PricePaid, &e.PurchasedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return library.Entry{}, library.ErrEntryNotFound
		}

		return library.Entry{}, fmt.Errorf("lock/get library entry: %w", err)
	}

	return e, nil
}

func (r *libraryRepo) Delete(tx *sql.Tx, userID, gameID int64) error {
	res, err := tx.Exec(`
		DELETE FROM library
		WHERE user_id = $1 AND game_id = $2
	`, userID, gameID)
	if err != nil {
		return fmt.Errorf("delete library entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return library.ErrEntryNotFound
	}

	return nil
}

func (r *libraryRepo) Exists(tx *sql.Tx, userID, gameID int64) (bool, error) {
	var exists bool

	err := tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM library WHERE user_id = $1 AND game_id = $2)
	`, userID, gameID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check library entry: %w", err)
	}

	return exists, nil
}
