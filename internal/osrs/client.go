// Package osrs talks to the third-party Old School RuneScape APIs: the
// official hiscores, the OSRS Wiki MediaWiki API and the wiki's real-time
// prices API.
package osrs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobbot/osrs-api/internal/metrics"
	"go.uber.org/zap"
)

const (
	DefaultUserAgent   = "BobBot OSRS API - @yourdiscord"
	DefaultHiscoresURL = "https://secure.runescape.com/m=hiscore_oldschool"
	DefaultWikiAPIURL  = "https://oldschool.runescape.wiki/api.php"
	DefaultPricesURL   = "https://prices.runescape.wiki/api/v1/osrs"
)

// Upstream names used in errors and metrics
const (
	upstreamHiscores = "hiscores"
	upstreamWiki     = "wiki"
	upstreamPrices   = "prices"
)

// ErrPlayerNotFound is returned when the hiscores have no entry for a name.
var ErrPlayerNotFound = errors.New("player not found")

// StatusError is a non-2xx response from an upstream API.
type StatusError struct {
	Upstream   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: request failed with status code %d", e.Upstream, e.StatusCode)
}

// Config configures the upstream client
type Config struct {
	HiscoresURL string
	WikiAPIURL  string
	PricesURL   string
	UserAgent   string
	Timeout     time.Duration
}

// Client issues requests to every upstream the gateway depends on
type Client struct {
	httpClient  *http.Client
	hiscoresURL string
	wikiAPIURL  string
	pricesURL   string
	userAgent   string
	logger      *zap.Logger
}

// NewClient creates a client, filling unset fields with the public endpoints.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.HiscoresURL == "" {
		cfg.HiscoresURL = DefaultHiscoresURL
	}
	if cfg.WikiAPIURL == "" {
		cfg.WikiAPIURL = DefaultWikiAPIURL
	}
	if cfg.PricesURL == "" {
		cfg.PricesURL = DefaultPricesURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		hiscoresURL: strings.TrimSuffix(cfg.HiscoresURL, "/"),
		wikiAPIURL:  cfg.WikiAPIURL,
		pricesURL:   strings.TrimSuffix(cfg.PricesURL, "/"),
		userAgent:   cfg.UserAgent,
		logger:      logger,
	}
}

// get performs a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, upstream, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", upstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(upstream, "error")
		return nil, fmt.Errorf("%s: request failed: %w", upstream, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream call",
		zap.String("upstream", upstream),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstream(upstream, "status_"+statusClass(resp.StatusCode))
		return nil, &StatusError{Upstream: upstream, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstream(upstream, "error")
		return nil, fmt.Errorf("%s: failed to read response: %w", upstream, err)
	}
	metrics.RecordUpstream(upstream, "ok")
	return body, nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
