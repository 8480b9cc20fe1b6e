package cart

import (
	"context"
	"database/sql"
	"errors"
)

var ErrAlreadyInCart = errors.New("game already in cart")

// Item is a cart row joined with the game's current catalog data.
type Item struct {
	GameID   int64
	Name     string
	Category string
	Price    int64
}

type Carts interface {
	// Insert adds a row; the (user_id, game_id) unique key turns a
	// concurrent double-add into ErrAlreadyInCart.
	Insert(tx *sql.Tx, userID, gameID int64) error

	// Delete removes one entry. Absence of the row is not an error.
	Delete(ctx context.Context, userID, gameID int64) error

	// Items reads the cart joined with current prices.
	Items(ctx context.Context, userID int64) ([]Item, error)

	// ItemsTx is Items inside an open transaction, used by checkout so
	// the prices read are the ones charged.
	ItemsTx(tx *sql.Tx, userID int64) ([]Item, error)

	// Clear drops every entry for the user.
	Clear(tx *sql.Tx, userID int64) error
}
