package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/bobbot/osrs-api/internal/dataset"
	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
	"github.com/bobbot/osrs-api/internal/storage"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	stats *models.PlayerStats
	err   error
}

func (f *fakeStats) Stats(ctx context.Context, username string) (*models.PlayerStats, error) {
	return f.stats, f.err
}

type fakePrices struct {
	mapping    []models.ItemMapping
	prices     map[int]*models.Prices
	mappingErr error
	calls      []string
}

func (f *fakePrices) Mapping(ctx context.Context) ([]models.ItemMapping, error) {
	f.calls = append(f.calls, "mapping")
	return f.mapping, f.mappingErr
}

func (f *fakePrices) Latest(ctx context.Context, id int) (*models.Prices, error) {
	f.calls = append(f.calls, "latest")
	return f.prices[id], nil
}

// fakeWiki serves pages by title; titles without an entry come back as
// missing pages with id -1
type fakeWiki struct {
	pages    map[string]string
	search   map[string]string
	err      error
	extracts []string
	opts     []osrs.ExtractOptions
}

func (f *fakeWiki) Extract(ctx context.Context, title string, opts osrs.ExtractOptions) (*models.WikiPage, error) {
	f.extracts = append(f.extracts, title)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return nil, f.err
	}
	extract, ok := f.pages[title]
	if !ok {
		return &models.WikiPage{PageID: osrs.MissingPageID, Title: title, Missing: true}, nil
	}
	return &models.WikiPage{PageID: "100", Title: title, Extract: extract}, nil
}

func (f *fakeWiki) Search(ctx context.Context, query string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	title, ok := f.search[query]
	return title, ok, nil
}

func newBundledStore(t *testing.T) *storage.Store {
	t.Helper()
	ds, err := dataset.Bundled()
	require.NoError(t, err)

	store, err := storage.New("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Seed(ds.Quests, ds.Masters))
	return store
}

func newTestService(t *testing.T, prices *fakePrices, wiki *fakeWiki) *Service {
	t.Helper()
	if prices == nil {
		prices = &fakePrices{}
	}
	if wiki == nil {
		wiki = &fakeWiki{}
	}
	return New(&fakeStats{}, prices, wiki, newBundledStore(t), Options{})
}

var errUpstream = errors.New("upstream exploded")
