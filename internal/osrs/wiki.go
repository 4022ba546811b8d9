package osrs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/tidwall/gjson"
)

// MissingPageID is the page id MediaWiki reports for pages that do not exist.
const MissingPageID = "-1"

// ExtractOptions controls an extracts query
type ExtractOptions struct {
	IntroOnly       bool // only the text before the first section heading
	FollowRedirects bool
}

// Extract fetches the plain-text extract of a single page. A nil page means
// the response carried no pages at all.
func (c *Client) Extract(ctx context.Context, title string, opts ExtractOptions) (*models.WikiPage, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("format", "json")
	params.Set("titles", title)
	if opts.IntroOnly {
		params.Set("exintro", "1")
	}
	if opts.FollowRedirects {
		params.Set("redirects", "1")
	}

	body, err := c.get(ctx, upstreamWiki, c.wikiAPIURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("wiki: invalid JSON response for %q", title)
	}

	var page *models.WikiPage
	gjson.GetBytes(body, "query.pages").ForEach(func(key, value gjson.Result) bool {
		page = &models.WikiPage{
			PageID:  key.String(),
			Title:   value.Get("title").String(),
			Extract: value.Get("extract").String(),
			Missing: value.Get("missing").Exists() || key.String() == MissingPageID,
		}
		return false
	})
	return page, nil
}

// Search returns the title of the best-ranked search hit for query.
// ok is false when the search has no results.
func (c *Client) Search(ctx context.Context, query string) (title string, ok bool, err error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "1")
	params.Set("format", "json")

	body, err := c.get(ctx, upstreamWiki, c.wikiAPIURL+"?"+params.Encode())
	if err != nil {
		return "", false, err
	}
	if !gjson.ValidBytes(body) {
		return "", false, fmt.Errorf("wiki: invalid JSON search response for %q", query)
	}

	first := gjson.GetBytes(body, "query.search.0.title")
	if !first.Exists() || first.String() == "" {
		return "", false, nil
	}
	return first.String(), true, nil
}
