package commerce

import (
	"context"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/library"
)

// OwnedGame is a library entry annotated with refund eligibility at
// read time.
type OwnedGame struct {
	library.OwnedGame
	CanRefund bool
}

// Library returns the user's owned games, newest purchase first.
func (s *Service) Library(ctx context.Context, userID int64) ([]OwnedGame, error) {
	entries, err := s.library.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}

	now := s.now()

	owned := make([]OwnedGame, 0, len(entries))
	for _, e := range entries {
		owned = append(owned, OwnedGame{
			OwnedGame: e,
			CanRefund: now.Sub(e.PurchasedAt) <= s.cfg.RefundWindow,
		})
	}

	return owned, nil
}

// Owns reports whether the user currently owns the game.
func (s *Service) Owns(ctx context.Context, userID, gameID int64) (bool, error) {
	owns, err := s.library.Owns(ctx, userID, gameID)
	if err != nil {
		return false, fmt.Errorf("check ownership: %w", err)
	}

	return owns, nil
}
