// Package gateway implements the lookups behind each API route: which
// upstreams are called, in which order, and how their answers are reshaped.
// Calls within one lookup are always sequential.
package gateway

import (
	"context"
	"net/url"
	"strings"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
	"go.uber.org/zap"
)

// DefaultWikiPageURL prefixes page titles to build wiki links.
const DefaultWikiPageURL = "https://oldschool.runescape.wiki/w/"

// SlayerMasters are the only masters the gateway serves.
var SlayerMasters = []string{"duradel", "nieve", "konar"}

// StatsProvider looks up hiscores
type StatsProvider interface {
	Stats(ctx context.Context, username string) (*models.PlayerStats, error)
}

// PriceSource serves the item mapping and latest prices
type PriceSource interface {
	Mapping(ctx context.Context) ([]models.ItemMapping, error)
	Latest(ctx context.Context, id int) (*models.Prices, error)
}

// WikiSource serves page extracts and search
type WikiSource interface {
	Extract(ctx context.Context, title string, opts osrs.ExtractOptions) (*models.WikiPage, error)
	Search(ctx context.Context, query string) (string, bool, error)
}

// Dataset serves the bundled quest and slayer data
type Dataset interface {
	GetQuestByName(name string) (*models.Quest, error)
	GetQuestByFilename(filename string) (*models.Quest, error)
	ListQuestFilenames() ([]string, error)
	GetSlayerTasks(masterID string) ([]models.SlayerTask, error)
}

// Options configures a Service
type Options struct {
	WikiPageURL string
	Logger      *zap.Logger
}

// Service runs the gateway lookups
type Service struct {
	stats       StatsProvider
	prices      PriceSource
	wiki        WikiSource
	data        Dataset
	wikiPageURL string
	logger      *zap.Logger
}

// New creates a Service
func New(stats StatsProvider, prices PriceSource, wiki WikiSource, data Dataset, opts Options) *Service {
	if opts.WikiPageURL == "" {
		opts.WikiPageURL = DefaultWikiPageURL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Service{
		stats:       stats,
		prices:      prices,
		wiki:        wiki,
		data:        data,
		wikiPageURL: opts.WikiPageURL,
		logger:      opts.Logger,
	}
}

// wikiURL links to a page, writing spaces as underscores like the wiki does.
func (s *Service) wikiURL(title string) string {
	return s.wikiPageURL + strings.ReplaceAll(url.PathEscape(title), "%20", "_")
}

// firstLine returns the text before the first newline, or nil for an empty extract.
func firstLine(extract string) *string {
	if extract == "" {
		return nil
	}
	line, _, _ := strings.Cut(extract, "\n")
	return &line
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
