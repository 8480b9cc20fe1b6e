package commerce

import (
	"context"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/games"
)

// StatsSummary aggregates the per-game sales report.
type StatsSummary struct {
	TotalRevenue int64
	TotalSales   int64
	TotalGames   int64
}

type StatsReport struct {
	Games   []games.SalesStat
	Summary StatsSummary
}

// Statistics builds the admin sales report. Sales are counted from live
// library rows rather than the cached counters, so the report also
// exposes counter drift.
func (s *Service) Statistics(ctx context.Context) (StatsReport, error) {
	stats, err := s.games.Statistics(ctx)
	if err != nil {
		return StatsReport{}, fmt.Errorf("statistics: %w", err)
	}

	report := StatsReport{Games: stats}
	for _, st := range stats {
		report.Summary.TotalRevenue += st.Revenue
		report.Summary.TotalSales += st.TotalSales
		report.Summary.TotalGames++
	}

	return report, nil
}
