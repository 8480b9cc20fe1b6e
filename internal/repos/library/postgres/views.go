package library

import (
	"context"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/library"
)

func (r *libraryRepo) Owns(ctx context.Context, userID, gameID int64) (bool, error) {
	var owns bool

	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM library WHERE user_id = $1 AND game_id = $2)
	`, userID, gameID).Scan(&owns)
	if err != nil {
		return false, fmt.Errorf("check ownership: %w", err)
	}

	return owns, nil
}

func (r *libraryRepo) List(ctx context.Context, userID int64) ([]library.OwnedGame, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.user_id, l.game_id, l.price_paid, l.purchased_at,
		       g.name, g.category, g.publisher, g.price
		FROM library l
		JOIN games g ON g.id = l.game_id
		WHERE l.user_id = $1
		ORDER BY l.purchased_at DESC, l.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	defer rows.Close()

	var owned []library.OwnedGame

	for rows.Next() {
		var g library.OwnedGame

		err = rows.Scan(
			&g.UserID, &g.GameID, &g.PricePaid, &g.PurchasedAt,
			&g.Name, &g.Category, &g.Publisher, &g.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan library row: %w", err)
		}

		owned = append(owned, g)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate library: %w", err)
	}

	return owned, nil
}

func (r *libraryRepo) CountByGame(ctx context.Context, gameID int64) (int64, error) {
	var n int64

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM library WHERE game_id = $1
	`, gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count library entries: %w", err)
	}

	return n, nil
}
