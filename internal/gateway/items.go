package gateway

import (
	"context"

	"github.com/bobbot/osrs-api/internal/lookup"
	"github.com/bobbot/osrs-api/internal/models"
	"go.uber.org/zap"
)

// Item resolves query to a single item and attaches its latest prices.
func (s *Service) Item(ctx context.Context, query string) (*models.PriceQuote, error) {
	resolved := lookup.ResolveAlias(query)
	if resolved != query {
		s.logger.Debug("resolved item alias", zap.String("alias", query), zap.String("name", resolved))
	}

	mapping, err := s.prices.Mapping(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := lookup.FindItem(mapping, resolved)
	if !ok {
		return nil, ErrItemNotFound
	}

	prices, err := s.prices.Latest(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	return &models.PriceQuote{
		ID:     item.ID,
		Name:   item.Name,
		Prices: prices,
	}, nil
}

// SearchItems returns up to limit items whose name contains query, shortest first.
func (s *Service) SearchItems(ctx context.Context, query string, limit int) ([]models.ItemMapping, error) {
	mapping, err := s.prices.Mapping(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.SearchItems(mapping, query, limit), nil
}
