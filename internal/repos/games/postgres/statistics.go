package games

import (
	"context"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/games"
)

func (r *gamesRepo) Statistics(ctx context.Context) ([]games.SalesStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.category, g.price, g.publisher, g.sales_count,
		       COUNT(l.id) AS total_sales
		FROM games g
		LEFT JOIN library l ON l.game_id = g.id
		GROUP BY g.id
		ORDER BY total_sales DESC, g.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}
	defer rows.Close()

	var stats []games.SalesStat

	for rows.Next() {
		var s games.SalesStat

		err = rows.Scan(
			&s.Game.ID, &s.Game.Name, &s.Game.Category, &s.Game.Price,
			&s.Game.Publisher, &s.Game.SalesCount, &s.TotalSales,
		)
		if err != nil {
			return nil, fmt.Errorf("scan statistics row: %w", err)
		}

		s.Revenue = s.TotalSales * s.Game.Price
		stats = append(stats, s)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate statistics: %w", err)
	}

	return stats, nil
}
