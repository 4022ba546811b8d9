// Package client is a Go client for the gateway's REST API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bobbot/osrs-api/internal/models"
)

// DefaultBaseURL is where the gateway listens by default
const DefaultBaseURL = "http://localhost:3000"

// APIError is a non-2xx answer from the gateway
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned status %d", e.Status)
	}
	return fmt.Sprintf("gateway returned status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the gateway.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Health is the body of GET /health
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client calls a running gateway
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the gateway at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Player fetches hiscore stats for username.
func (c *Client) Player(ctx context.Context, username string) (*models.PlayerStats, error) {
	var stats models.PlayerStats
	if err := c.get(ctx, "/api/player/"+url.PathEscape(username), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Price fetches the latest price of the item best matching query.
func (c *Client) Price(ctx context.Context, query string) (*models.PriceQuote, error) {
	var quote models.PriceQuote
	if err := c.get(ctx, "/api/item/"+url.PathEscape(query), &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// SearchItems lists up to limit items whose name contains query.
// A limit below 1 leaves the gateway default in place.
func (c *Client) SearchItems(ctx context.Context, query string, limit int) ([]models.ItemMapping, error) {
	path := "/api/items/search/" + url.PathEscape(query)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var items []models.ItemMapping
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Wiki fetches the intro summary of a wiki page.
func (c *Client) Wiki(ctx context.Context, title string) (*models.WikiSummary, error) {
	var summary models.WikiSummary
	if err := c.get(ctx, "/api/wiki/"+url.PathEscape(title), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SearchWiki returns the summary of the best wiki hit for query.
func (c *Client) SearchWiki(ctx context.Context, query string) (*models.WikiSummary, error) {
	var summary models.WikiSummary
	if err := c.get(ctx, "/api/wiki/search/"+url.PathEscape(query), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Guide fetches the quick guide for title, or the page itself.
func (c *Client) Guide(ctx context.Context, title string) (*models.WikiGuide, error) {
	var guide models.WikiGuide
	if err := c.get(ctx, "/api/wiki/guide/"+url.PathEscape(title), &guide); err != nil {
		return nil, err
	}
	return &guide, nil
}

// Quest fetches quest details by name.
func (c *Client) Quest(ctx context.Context, name string) (*models.Quest, error) {
	var quest models.Quest
	if err := c.get(ctx, "/api/quests/"+url.PathEscape(name), &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

// SlayerMasters lists the masters the gateway knows.
func (c *Client) SlayerMasters(ctx context.Context) ([]string, error) {
	var masters []string
	if err := c.get(ctx, "/api/slayer", &masters); err != nil {
		return nil, err
	}
	return masters, nil
}

// SlayerTasks fetches a master's task table.
func (c *Client) SlayerTasks(ctx context.Context, master string) ([]models.SlayerTask, error) {
	var tasks []models.SlayerTask
	if err := c.get(ctx, "/api/slayer/"+url.PathEscape(master), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Health checks that the gateway is up.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
