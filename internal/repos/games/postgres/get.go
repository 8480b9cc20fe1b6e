package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/games"
)

func (r *gamesRepo) Get(ctx context.Context, gameID int64) (games.Game, error) {
	var g games.Game

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, price, publisher, sales_count
		FROM games
		WHERE id = $1
	`, gameID).Scan(&g.ID, &g.Name, &g.Category, &g.Price, &g.Publisher, &g.SalesCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return games.Game{}, games.ErrGameNotFound
		}

		return games.Game{}, fmt.Errorf("get game: %w", err)
	}

	return g, nil
}
