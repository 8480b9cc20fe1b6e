package commerce

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamdv/gamestore/internal/infra/pgutils"
	"github.com/phamdv/gamestore/internal/repos/cart"
	"github.com/phamdv/gamestore/internal/repos/library"
)

type CartView struct {
	Items []cart.Item
	Total int64
}

// AddToCart puts a game into the user's cart after checking that the
// game exists in the catalog, is not already owned and not already in
// the cart. The ownership check and the insert share one transaction so
// the (user, game) unique keys settle any race.
func (s *Service) AddToCart(ctx context.Context, userID, gameID int64) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if !u.CanTransact() {
		return ErrAdminNotAllowed
	}

	_, err = s.games.Get(ctx, gameID)
	if err != nil {
		return fmt.Errorf("catalog lookup: %w", err)
	}

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		owned, err := s.library.Exists(tx, userID, gameID)
		if err != nil {
			return fmt.Errorf("check ownership: %w", err)
		}

		if owned {
			return library.ErrAlreadyOwned
		}

		err = s.carts.Insert(tx, userID, gameID)
		if err != nil {
			return fmt.Errorf("insert cart entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	return nil
}

// RemoveFromCart deletes one cart entry. Removing an absent entry is
// not an error.
func (s *Service) RemoveFromCart(ctx context.Context, userID, gameID int64) error {
	err := s.carts.Delete(ctx, userID, gameID)
	if err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}

	return nil
}

// Cart returns the user's cart joined with current catalog prices.
// Admins always see an empty cart.
func (s *Service) Cart(ctx context.Context, userID int64) (CartView, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return CartView{}, fmt.Errorf("get user: %w", err)
	}

	if !u.CanTransact() {
		return CartView{}, nil
	}

	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return CartView{}, fmt.Errorf("list cart: %w", err)
	}

	view := CartView{Items: items}
	for _, it := range items {
		view.Total += it.Price
	}

	return view, nil
}
