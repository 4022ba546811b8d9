package osrs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/tidwall/gjson"
)

// Mapping fetches the full item mapping. It is not cached.
func (c *Client) Mapping(ctx context.Context) ([]models.ItemMapping, error) {
	body, err := c.get(ctx, upstreamPrices, c.pricesURL+"/mapping")
	if err != nil {
		return nil, err
	}

	var mapping []models.ItemMapping
	if err := json.Unmarshal(body, &mapping); err != nil {
		return nil, fmt.Errorf("prices: failed to decode mapping: %w", err)
	}
	return mapping, nil
}

// Latest fetches the latest prices for one item.
// A nil result means the API has no price data for the id.
func (c *Client) Latest(ctx context.Context, id int) (*models.Prices, error) {
	key := strconv.Itoa(id)
	body, err := c.get(ctx, upstreamPrices, c.pricesURL+"/latest?id="+key)
	if err != nil {
		return nil, err
	}

	data := gjson.GetBytes(body, "data."+key)
	if !data.Exists() || data.Type == gjson.Null {
		return nil, nil
	}

	var prices models.Prices
	if err := json.Unmarshal([]byte(data.Raw), &prices); err != nil {
		return nil, fmt.Errorf("prices: failed to decode latest price: %w", err)
	}
	return &prices, nil
}
