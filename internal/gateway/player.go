package gateway

import (
	"context"
	"errors"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
)

// Player returns a player's hiscores.
func (s *Service) Player(ctx context.Context, username string) (*models.PlayerStats, error) {
	stats, err := s.stats.Stats(ctx, username)
	if err != nil {
		if errors.Is(err, osrs.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return stats, nil
}
